package cli

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/huegrid/pkg/clipboard"
	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/config"
	"github.com/matzehuels/huegrid/pkg/grid"
	"github.com/matzehuels/huegrid/pkg/notify"
)

// viewConverterSize holds the largest grid in one format plus its HEX
// backgrounds, so switching settings back and forth re-renders from cache.
const viewConverterSize = 2 * grid.MaxRows * grid.MaxCols

// viewOpts holds the command-line flags for the interactive view.
type viewOpts struct {
	gridFlags
	clipboard string // clipboard backend: auto, system, osc52
	watch     bool   // reload the settings file when it changes
	logFile   string // log destination while the terminal is in use
}

// viewCommand creates the interactive grid command.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the interactive color grid (default)",
		Long: `Show the color grid in the terminal.

Move with the arrow keys and press enter (or click a tile) to copy its color.
Tab selects a setting in the Config panel; + and - change it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, path, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("clipboard") {
				settings.Clipboard = opts.clipboard
			}
			return c.runView(cmd.Context(), settings, path, &opts)
		},
	}

	opts.register(cmd, "format")
	cmd.Flags().StringVar(&opts.clipboard, "clipboard", clipboard.BackendAuto, "clipboard backend: auto, system, osc52")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the settings file when it changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the view is open")

	return cmd
}

// runView wires clipboard, toasts, controller and the bubbletea program.
func (c *CLI) runView(ctx context.Context, settings config.File, path string, opts *viewOpts) error {
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, c.Logger.GetLevel())
	ctx = withLogger(ctx, logger)
	installHooks(logger)

	// bubbletea owns stdout; OSC 52 sequences go to the terminal via stderr.
	platform, err := clipboard.New(settings.Clipboard, os.Stderr)
	if err != nil {
		return err
	}
	logger.Info("Starting view", "clipboard", platform.Name(), "config", path)

	toasts := notify.NewStack()
	surface := grid.NewBuffer()
	renderer := grid.NewRenderer(surface, clipboard.NewCopier(platform, toasts),
		grid.WithConverter(color.NewConverter(viewConverterSize)))
	ctrl := grid.NewController(settings.Grid, renderer)
	ctrl.Mount(ctx)

	p := tea.NewProgram(newGridModel(ctx, ctrl, surface, toasts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if opts.watch && path != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := config.Watch(watchCtx, path, func(f config.File, err error) {
				p.Send(reloadMsg{cfg: f.Grid, err: err})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("settings watcher stopped", "path", path, "err", err)
				p.Send(watchFailedMsg{err: err})
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
