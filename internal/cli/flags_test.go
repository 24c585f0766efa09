package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/config"
	"github.com/matzehuels/huegrid/pkg/errors"
)

// resolveArgs parses args against a command carrying the grid flags and
// returns what resolve makes of them.
func resolveArgs(t *testing.T, formatFlag string, args ...string) (config.File, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var (
		flags gridFlags
		got   config.File
		rerr  error
	)
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			got, _, rerr = flags.resolve(cmd)
			return nil
		},
	}
	flags.register(cmd, formatFlag)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	return got, rerr
}

func TestGridFlagsDefaults(t *testing.T) {
	got, err := resolveArgs(t, "format")
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if got != config.Default() {
		t.Errorf("resolve() = %+v, want defaults %+v", got, config.Default())
	}
}

func TestGridFlagsOverride(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		args       []string
		wantRows   int
		wantCols   int
		wantFormat color.Format
		wantLabels bool
	}{
		{"short flags", "format", []string{"-r", "4", "-c", "36"}, 4, 36, color.FormatHex, false},
		{"format alias", "format", []string{"--format", "hsl"}, 10, 10, color.FormatHSLA, false},
		{"color flag", "color", []string{"--color", "rgba", "--labels"}, 10, 10, color.FormatRGBA, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveArgs(t, tt.formatFlag, tt.args...)
			if err != nil {
				t.Fatalf("resolve() error: %v", err)
			}
			g := got.Grid
			if g.Rows != tt.wantRows || g.Cols != tt.wantCols || g.Format != tt.wantFormat || g.ShowLabel != tt.wantLabels {
				t.Errorf("grid = %+v", g)
			}
		})
	}
}

func TestGridFlagsOverSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	content := "[grid]\nrows = 5\ncols = 20\nformat = \"HSLA\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := resolveArgs(t, "format", "--config", path, "-r", "7")
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if got.Grid.Rows != 7 {
		t.Errorf("rows = %d, want flag value 7", got.Grid.Rows)
	}
	if got.Grid.Cols != 20 || got.Grid.Format != color.FormatHSLA {
		t.Errorf("grid = %+v, want cols and format from file", got.Grid)
	}
}

func TestGridFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"rows out of range", []string{"-r", "100"}, errors.ErrCodeInvalidInput},
		{"cols out of range", []string{"-c", "0"}, errors.ErrCodeInvalidInput},
		{"unknown format", []string{"--format", "cmyk"}, errors.ErrCodeInvalidFormat},
		{"missing file", []string{"--config", "/nonexistent/huegrid.toml"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveArgs(t, "format", tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("resolve() error = %v, want %s", err, tt.code)
			}
		})
	}
}
