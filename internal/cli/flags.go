package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/config"
	"github.com/matzehuels/huegrid/pkg/errors"
)

// gridFlags are the grid settings every command accepts. Flags the user sets
// explicitly override the settings file.
type gridFlags struct {
	rows       int
	cols       int
	format     string
	labels     bool
	configPath string

	formatFlag string // name of the color type flag
}

// register adds the grid flags to cmd. The color type flag is named
// formatFlag, since `render` uses --format for the output files.
func (f *gridFlags) register(cmd *cobra.Command, formatFlag string) {
	f.formatFlag = formatFlag
	def := config.Default().Grid
	cmd.Flags().IntVarP(&f.rows, "rows", "r", def.Rows, "number of rows (1-99)")
	cmd.Flags().IntVarP(&f.cols, "cols", "c", def.Cols, "number of columns (1-360)")
	cmd.Flags().StringVar(&f.format, formatFlag, def.Format.String(), "color type: HEX, RGBA or HSLA")
	cmd.Flags().BoolVar(&f.labels, "labels", def.ShowLabel, "show the color value on each tile")
	cmd.Flags().StringVar(&f.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/huegrid/config.toml)")
}

// resolve loads the settings file and applies explicitly set flags on top.
// It returns the settings and the path of the file they came from.
func (f *gridFlags) resolve(cmd *cobra.Command) (config.File, string, error) {
	settings, path, err := config.Resolve(f.configPath)
	if err != nil {
		return config.File{}, path, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		settings.Grid.Rows = f.rows
	}
	if flags.Changed("cols") {
		settings.Grid.Cols = f.cols
	}
	if flags.Changed("labels") {
		settings.Grid.ShowLabel = f.labels
	}
	if flags.Changed(f.formatFlag) {
		format, err := color.ParseFormat(f.format)
		if err != nil {
			return config.File{}, path, err
		}
		settings.Grid.Format = format
	}

	if err := settings.Grid.Validate(); err != nil {
		return config.File{}, path, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid grid settings")
	}
	return settings, path, nil
}
