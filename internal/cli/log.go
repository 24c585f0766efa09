package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/huegrid/pkg/observability"
)

// newLogger returns a logger writing to w at level, stamped "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// startTimer returns a func that logs msg at info with the time elapsed
// since startTimer was called appended as "took".
func startTimer(l *log.Logger) func(msg string, keyvals ...any) {
	start := time.Now()
	return func(msg string, keyvals ...any) {
		l.Info(msg, append(keyvals, "took", time.Since(start).Round(time.Millisecond))...)
	}
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger stored by withLogger, or log.Default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// installHooks routes render, clipboard, cache and HTTP events to the
// logger. Everything except failed copies and server errors logs at debug.
func installHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetRenderHooks(h)
	observability.SetClipboardHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRenderStart(ctx context.Context, rows, cols int, format string) {
	h.logger.Debug("render", "rows", rows, "cols", cols, "format", format)
}

func (h *logHooks) OnRenderComplete(ctx context.Context, cells int, d time.Duration) {
	h.logger.Debug("rendered", "cells", cells, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCopy(ctx context.Context, backend, text string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("copy failed", "backend", backend, "text", text, "err", err)
		return
	}
	h.logger.Debug("copied", "backend", backend, "text", text, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(ctx context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h *logHooks) OnCacheMiss(ctx context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h *logHooks) OnCacheSet(ctx context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

func (h *logHooks) OnRequest(ctx context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path, "id", requestIDFromContext(ctx))
}

func (h *logHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.logger.Error("response", "method", method, "path", path, "status", status, "took", d, "id", requestIDFromContext(ctx))
		return
	}
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d, "id", requestIDFromContext(ctx))
}
