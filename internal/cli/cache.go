package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/huegrid/pkg/cache"
)

// cacheCommand groups the artifact cache subcommands. They act on the local
// file cache only; Redis entries expire through their TTL.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("locate cache: %w", err)
			}
			return clearCache(dir)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("locate cache: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		},
	})

	return cmd
}

func clearCache(dir string) error {
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	n, err := fc.Clear()
	if err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}
	if n == 0 {
		printInfo("Cache is empty")
		return nil
	}
	printSuccess("Removed %d cached artifact(s)", n)
	printDetail("%s", fc.Dir())
	return nil
}
