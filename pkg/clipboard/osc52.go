package clipboard

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 copies through the terminal with an OSC 52 escape sequence.
// It works over SSH as long as the terminal emulator honours the sequence;
// there is no way to observe whether it did.
type OSC52 struct {
	mu  sync.Mutex
	w   io.Writer
	env func(string) string
}

// NewOSC52 returns a backend writing sequences to w.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{w: w, env: os.Getenv}
}

func (o *OSC52) Name() string { return BackendOSC52 }

// QueryPermission reports granted when there is a terminal to write to.
func (o *OSC52) QueryPermission(ctx context.Context, name string) (Permission, error) {
	if o.w == nil {
		return PermissionDenied, nil
	}
	return PermissionGranted, nil
}

// WriteText emits the sequence, wrapped for tmux or screen when running inside one.
func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := o.sequence(text)

	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := seq.WriteTo(o.w)
	return err
}

func (o *OSC52) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case o.env("TMUX") != "":
		return seq.Tmux()
	case strings.HasPrefix(o.env("TERM"), "screen"):
		return seq.Screen()
	}
	return seq
}
