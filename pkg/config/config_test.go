package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	want := grid.Config{Rows: 12, Cols: 24, ShowLabel: false, Format: color.FormatHSLA}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "config.toml", `
clipboard = "osc52"

[grid]
rows = 12
cols = 24
show_label = false
format = "hsla"

[server]
addr = ":9000"
`},
		{"yaml", "config.yaml", `
clipboard: osc52
grid:
  rows: 12
  cols: 24
  show_label: false
  format: HSL
server:
  addr: ":9000"
`},
		{"yml", "settings.yml", `
clipboard: osc52
grid: {rows: 12, cols: 24, show_label: false, format: hsla}
server: {addr: ":9000"}
`},
		{"json", "config.json", `{
  "clipboard": "osc52",
  "grid": {"rows": 12, "cols": 24, "show_label": false, "format": "HSLA"},
  "server": {"addr": ":9000"}
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if f.Grid != want {
				t.Errorf("Grid = %+v, want %+v", f.Grid, want)
			}
			if f.Clipboard != "osc52" {
				t.Errorf("Clipboard = %q, want osc52", f.Clipboard)
			}
			if f.Server.Addr != ":9000" {
				t.Errorf("Server.Addr = %q, want :9000", f.Server.Addr)
			}
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	f, err := Load(writeFile(t, "config.toml", "[grid]\nrows = 3\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if f.Grid.Rows != 3 || f.Grid.Cols != def.Grid.Cols || f.Grid.Format != def.Grid.Format || !f.Grid.ShowLabel {
		t.Errorf("Grid = %+v", f.Grid)
	}
	if f.Clipboard != "auto" || f.Server.Addr != def.Server.Addr {
		t.Errorf("defaults lost: %+v", f)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.Code
		wantMsg  string
	}{
		{"rows out of range", "c.toml", "[grid]\nrows = 100\n", errors.ErrCodeInvalidConfig, "rows"},
		{"cols out of range", "c.yaml", "grid:\n  cols: 0\n", errors.ErrCodeInvalidConfig, "cols"},
		{"bad format", "c.json", `{"grid": {"format": "cmyk"}}`, errors.ErrCodeInvalidConfig, "cmyk"},
		{"bad backend", "c.toml", `clipboard = "x11"`, errors.ErrCodeInvalidConfig, "x11"},
		{"bad addr", "c.toml", "[server]\naddr = \"localhost\"\n", errors.ErrCodeInvalidConfig, "port"},
		{"syntax", "c.toml", "[grid\nrows=", errors.ErrCodeInvalidConfig, "decode toml"},
		{"unknown json field", "c.json", `{"colour": "red"}`, errors.ErrCodeInvalidConfig, "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("Load() error = %v, want code %s", err, tt.wantCode)
			}
			if !strings.Contains(errors.UserMessage(err), tt.wantMsg) {
				t.Errorf("message %q does not mention %q", errors.UserMessage(err), tt.wantMsg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Missing default file falls back to defaults.
	f, path, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") error = %v", err)
	}
	if f != Default() {
		t.Errorf("Resolve(\"\") = %+v, want defaults", f)
	}
	if !strings.HasSuffix(path, filepath.Join("huegrid", "config.toml")) {
		t.Errorf("path = %q", path)
	}

	// Default file is picked up once it exists.
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	_ = os.WriteFile(path, []byte("[grid]\ncols = 7\n"), 0644)
	f, _, err = Resolve("")
	if err != nil || f.Grid.Cols != 7 {
		t.Errorf("Resolve(\"\") = %+v, %v", f.Grid, err)
	}

	// A missing explicit path is an error.
	if _, _, err := Resolve(filepath.Join(t.TempDir(), "x.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Resolve(missing) error = %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "huegrid", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := Default()
	in.Grid.Rows = 42
	in.Server.Redis = "localhost:6379"

	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[grid]") {
		t.Errorf("TOML lacks [grid] table:\n%s", buf.String())
	}

	out, err := Parse(buf.Bytes(), SyntaxTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestParseUnsupportedSyntax(t *testing.T) {
	if _, err := Parse(nil, "ini"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Parse(ini) error = %v", err)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[grid]\nrows = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloads := make(chan File, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(f File, err error) {
			if err == nil {
				reloads <- f
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[grid]\nrows = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-reloads:
		if f.Grid.Rows != 5 {
			t.Errorf("reloaded rows = %d, want 5", f.Grid.Rows)
		}
	case <-ctx.Done():
		t.Fatal("no reload before timeout")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Watch() returned %v, want context.Canceled", err)
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	_ = os.WriteFile(path, []byte(""), 0644)

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel()

	calls := make(chan struct{}, 4)
	go func() {
		_ = Watch(ctx, path, func(File, error) { calls <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	_ = os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0644)

	select {
	case <-calls:
		t.Error("Watch reacted to a sibling file")
	case <-ctx.Done():
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "config.toml")

	err := Watch(context.Background(), path, func(File, error) {
		t.Error("no callback expected")
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Watch() error = %v, want FILE_NOT_FOUND", err)
	}
}
