package cache

import (
	"context"
	"time"

	"github.com/matzehuels/huegrid/pkg/observability"
)

// Observed wraps c so that lookups and stores report through
// observability.Cache(). The hooks are resolved on every call, so hooks
// installed after wrapping still fire.
func Observed(c Cache) Cache {
	return &observed{inner: c}
}

type observed struct {
	inner Cache
}

func (o *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}
	return data, ok, err
}

func (o *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := o.inner.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return err
}

func (o *observed) Delete(ctx context.Context, key string) error {
	return o.inner.Delete(ctx, key)
}

func (o *observed) Close() error {
	return o.inner.Close()
}
