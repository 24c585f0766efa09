package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/huegrid/pkg/cache"
	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
	"github.com/matzehuels/huegrid/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	gridFlags
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: svg, png, json, txt
	noCache bool     // bypass the artifact cache
}

// renderCommand creates the export command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the color grid to SVG, PNG, JSON or text",
		Long: `Export the color grid.

With a single format, -o names the output file ("-" writes to stdout).
With several formats, -o is a base path and each file gets its extension.`,
		Example: `  huegrid render -r 12 -c 36 --color hsla -o wheel.svg
  huegrid render --format svg,png,json -o out/grid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			settings, _, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), settings.Grid, &opts)
		},
	}

	opts.register(cmd, "color")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&formatsStr, "format", "", "output format(s): svg (default), png, json, txt (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"]. Duplicates are dropped.
func parseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{render.OutputSVG}, nil
	}
	var formats []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		f, err := render.ParseOutput(part)
		if err != nil {
			return nil, err
		}
		if f == render.OutputHTML {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "html is only served by `huegrid serve`")
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// basePath derives the base output path. Without -o, files are named after
// the grid size. A known format extension on -o is stripped.
func basePath(output string, cfg grid.Config) string {
	if output == "" {
		return fmt.Sprintf("huegrid-%dx%d", cfg.Rows, cfg.Cols)
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseOutput(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where one format is written.
func outputPath(opts *renderOpts, cfg grid.Config, format string) string {
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return basePath(opts.output, cfg) + "." + format
}

type artifact struct {
	format string
	path   string
	data   []byte
	cached bool
}

// runRender renders every requested format concurrently and writes the
// results in flag order.
func runRender(ctx context.Context, cfg grid.Config, opts *renderOpts) error {
	done := startTimer(loggerFromContext(ctx))

	store, err := newCache(ctx, opts.noCache, "")
	if err != nil {
		return err
	}
	defer store.Close()
	keyer := newKeyer()

	toStdout := len(opts.formats) == 1 && opts.output == "-"
	var status io.Writer = os.Stderr
	if toStdout {
		status = io.Discard
	}
	spinner := newSpinner(ctx, status, fmt.Sprintf("Rendering %d×%d grid", cfg.Rows, cfg.Cols), len(opts.formats))
	spinner.Start()

	artifacts := make([]artifact, len(opts.formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.formats {
		g.Go(func() error {
			data, cached, err := renderCached(gctx, store, keyer, cfg, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			artifacts[i] = artifact{format: format, path: outputPath(opts, cfg, format), data: data, cached: cached}
			spinner.Step()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}

	if toStdout {
		spinner.Stop()
		_, err := os.Stdout.Write(artifacts[0].data)
		return err
	}

	for _, a := range artifacts {
		if err := writeArtifact(a); err != nil {
			spinner.StopWithError(errors.UserMessage(err))
			return err
		}
	}

	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d×%d %s grid", cfg.Rows, cfg.Cols, cfg.Format))
	for _, a := range artifacts {
		printFile(a.path, a.cached)
	}
	done("render finished", "files", len(artifacts))
	return nil
}

// renderCached returns the artifact from the cache or renders and stores it.
// Cache failures only cost a re-render.
func renderCached(ctx context.Context, store cache.Cache, keyer cache.Keyer, cfg grid.Config, format string) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)
	key := keyer.ArtifactKey(cache.ArtifactKeyOpts{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Format:    cfg.Format.String(),
		ShowLabel: cfg.ShowLabel,
		Output:    format,
	})

	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if ok {
		return data, true, nil
	}

	data, err := render.Export(ctx, cfg, format)
	if err != nil {
		return nil, false, err
	}
	if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	return data, false, nil
}

func writeArtifact(a artifact) error {
	if err := errors.ValidateOutputPath(a.path); err != nil {
		return err
	}
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(a.path, a.data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", a.path)
	}
	return nil
}
