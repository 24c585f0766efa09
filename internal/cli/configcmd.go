package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/huegrid/pkg/config"
)

// configCommand creates the settings inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect huegrid settings",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

// configShowCommand prints the effective settings, flags applied, as TOML.
// The output is a valid settings file.
func (c *CLI) configShowCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as TOML",
		Example: `  huegrid config show > ~/.config/huegrid/config.toml
  huegrid config show --config grid.yaml -r 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, path, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("settings resolved", "path", path)
			return config.Encode(cmd.OutOrStdout(), settings)
		},
	}
	flags.register(cmd, "format")

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
