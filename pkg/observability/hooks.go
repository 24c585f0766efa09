// Package observability lets the binary attach logging or metrics to grid
// renders, clipboard copies, artifact cache lookups and HTTP requests
// without the library packages importing a backend.
//
// Each event family has an interface, a no-op implementation that is
// installed by default, and a Set function for startup registration:
//
//	observability.SetRenderHooks(myHooks)
//
// Library code fetches the current hooks on every event:
//
//	observability.Render().OnRenderStart(ctx, rows, cols, format)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// RenderHooks receives events from the grid renderer.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, rows, cols int, format string)
	OnRenderComplete(ctx context.Context, cells int, duration time.Duration)
}

// ClipboardHooks receives one event per copy request; err is nil on success.
type ClipboardHooks interface {
	OnCopy(ctx context.Context, backend, text string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache lookups and writes, keyed by cache key.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string, size int)
}

// HTTPHooks receives events from the HTTP viewer.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int, int, string)      {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, time.Duration) {}

type NoopClipboardHooks struct{}

func (NoopClipboardHooks) OnCopy(context.Context, string, string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// slot holds the registered hooks of one family. The zero slot reports
// its no-op default.
type slot[T any] struct {
	v    atomic.Pointer[T]
	noop T
}

func (s *slot[T]) load() T {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return s.noop
}

func (s *slot[T]) store(h T) { s.v.Store(&h) }

func (s *slot[T]) reset() { s.v.Store(nil) }

var (
	render    = slot[RenderHooks]{noop: NoopRenderHooks{}}
	clipboard = slot[ClipboardHooks]{noop: NoopClipboardHooks{}}
	cache     = slot[CacheHooks]{noop: NoopCacheHooks{}}
	httpSlot  = slot[HTTPHooks]{noop: NoopHTTPHooks{}}
)

// SetRenderHooks installs h. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		render.store(h)
	}
}

// SetClipboardHooks installs h. A nil h is ignored.
func SetClipboardHooks(h ClipboardHooks) {
	if h != nil {
		clipboard.store(h)
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cache.store(h)
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		httpSlot.store(h)
	}
}

func Render() RenderHooks       { return render.load() }
func Clipboard() ClipboardHooks { return clipboard.load() }
func Cache() CacheHooks         { return cache.load() }
func HTTP() HTTPHooks           { return httpSlot.load() }

// Reset reinstalls the no-op hooks everywhere. Tests call it on cleanup.
func Reset() {
	render.reset()
	clipboard.reset()
	cache.reset()
	httpSlot.reset()
}
