// Package cli implements the huegrid command-line interface.
//
// # Commands
//
//   - view (default): interactive color grid in the terminal
//   - render: export the grid as SVG, PNG, JSON or ANSI text
//   - serve: HTTP viewer with click-to-copy
//   - config show: print the effective settings as TOML
//   - cache: manage the artifact cache
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. The interactive view owns the terminal, so
// it logs to --log-file or nowhere.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/huegrid/pkg/buildinfo"
	"github.com/matzehuels/huegrid/pkg/cache"
)

const appName = "huegrid"

// Log levels for callers that do not import charmbracelet/log.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the logger shared by every command.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand opens the interactive view.
func (c *CLI) RootCommand() *cobra.Command {
	view := c.viewCommand()

	root := &cobra.Command{
		Use:          appName,
		Short:        "huegrid shows a grid of generated colors and copies them on click",
		Long:         `huegrid renders a grid of colors derived from each tile's position. Rows vary saturation and lightness, columns vary hue. Selecting a tile copies its color as HEX, RGBA or HSLA.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			installHooks(c.Logger)
			return nil
		},
		RunE: view.RunE,
	}
	root.Flags().AddFlagSet(view.Flags())

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(view)
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache returns the artifact cache for a command. A Redis address selects
// the shared backend; otherwise entries live under the XDG cache directory.
// Without a usable directory caching is silently disabled.
func newCache(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache {
		return cache.Disabled, nil
	}
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return nil, err
		}
		return cache.Observed(rc), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.Disabled, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Observed(fc), nil
}

// newKeyer scopes artifact keys by build so upgrades re-render.
func newKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir is $XDG_CACHE_HOME/huegrid, defaulting to ~/.cache/huegrid on
// every platform.
func cacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, appName), nil
}
