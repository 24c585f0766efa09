package cli

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/huegrid/pkg/cache"
	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
	"github.com/matzehuels/huegrid/pkg/observability"
	"github.com/matzehuels/huegrid/pkg/render"
)

const (
	requestIDHeader   = "X-Request-Id"
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	gridFlags
	addr    string
	redis   string
	noCache bool
}

// serveCommand creates the HTTP viewer command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the color grid over HTTP",
		Long: `Serve an HTML page with the color grid and a settings panel.

Clicking a tile copies its color in the browser. Query parameters
(rows, cols, format, labels) override the configured grid per request.`,
		Example: `  huegrid serve --addr :8080
  huegrid serve --redis redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			addr := settings.Server.Addr
			if cmd.Flags().Changed("addr") {
				addr = opts.addr
			}
			if err := errors.ValidateListenAddr(addr); err != nil {
				return err
			}
			redisAddr := settings.Server.Redis
			if opts.redis != "" {
				redisAddr = opts.redis
			}
			return runServe(cmd.Context(), settings.Grid, addr, redisAddr, opts.noCache)
		},
	}

	opts.register(cmd, "format")
	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address or URL for the shared artifact cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func runServe(ctx context.Context, base grid.Config, addr, redisAddr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	store, err := newCache(ctx, noCache, redisAddr)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(base, store, newKeyer(), logger).routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "listen on %s", addr)
	}
	printSuccess("Serving %d×%d grid", base.Rows, base.Cols)
	printKeyValue("URL", "http://"+ln.Addr().String())
	printKeyValue("Cache", cacheKind(noCache, redisAddr))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		logger.Debug("shutting down", "addr", addr)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func cacheKind(noCache bool, redisAddr string) string {
	switch {
	case noCache:
		return "off"
	case redisAddr != "":
		return "redis"
	default:
		return "file"
	}
}

// =============================================================================
// Handlers
// =============================================================================

// server answers grid requests. Every response is built from base with the
// request's query parameters applied on top.
type server struct {
	base   grid.Config
	store  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

func newServer(base grid.Config, store cache.Cache, keyer cache.Keyer, logger *log.Logger) *server {
	return &server{base: base, store: store, keyer: keyer, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(observe)
	r.Use(middleware.Recoverer)

	r.Get("/", s.artifact(render.OutputHTML))
	r.Get("/grid.svg", s.artifact(render.OutputSVG))
	r.Get("/grid.png", s.artifact(render.OutputPNG))
	r.Get("/grid.json", s.artifact(render.OutputJSON))
	r.Get("/grid.txt", s.artifact(render.OutputText))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return r
}

func (s *server) artifact(output string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := configFromQuery(s.base, r)
		if err != nil {
			writeError(w, err)
			return
		}
		data, _, err := renderCached(withLogger(r.Context(), s.logger), s.store, s.keyer, cfg, output)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", render.ContentType(output))
		_, _ = w.Write(data)
	}
}

// configFromQuery applies rows, cols, format and labels query parameters to
// base. Numbers outside the grid limits are rejected rather than clamped.
func configFromQuery(base grid.Config, r *http.Request) (grid.Config, error) {
	cfg := base
	q := r.URL.Query()

	if v := q.Get("rows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.New(errors.ErrCodeInvalidInput, "rows: %q is not a number", v)
		}
		cfg.Rows = n
	}
	if v := q.Get("cols"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.New(errors.ErrCodeInvalidInput, "cols: %q is not a number", v)
		}
		cfg.Cols = n
	}
	if v := q.Get("format"); v != "" {
		f, err := color.ParseFormat(v)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}
	if v := q.Get("labels"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.New(errors.ErrCodeInvalidInput, "labels: %q is not a boolean", v)
		}
		cfg.ShowLabel = b
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps input errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case code.Input():
		status = http.StatusBadRequest
	case code == "":
		code = errors.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: errors.UserMessage(err)})
}

// =============================================================================
// Middleware
// =============================================================================

type requestIDKey struct{}

// requestID tags each request with a UUID, reusing a valid incoming header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestIDFromContext returns the request ID, or "" outside a request.
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// observe reports every request to the HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		start := time.Now()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}
