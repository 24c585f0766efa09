package clipboard

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/notify"
	"github.com/matzehuels/huegrid/pkg/observability"
)

// Copier writes text to a platform clipboard and reports the outcome to a notifier.
// It holds no per-copy state and is safe for concurrent use.
type Copier struct {
	platform Platform
	notifier notify.Notifier
}

// NewCopier returns a Copier. A nil notifier discards notifications.
func NewCopier(p Platform, n notify.Notifier) *Copier {
	if n == nil {
		n = notify.Discard
	}
	return &Copier{platform: p, notifier: n}
}

// Platform returns the backend the copier writes to.
func (c *Copier) Platform() Platform { return c.platform }

// Copy writes text and notifies success or failure. The error is returned
// for logging only; it has already been surfaced to the user.
func (c *Copier) Copy(ctx context.Context, text string) error {
	start := time.Now()
	err := Write(ctx, c.platform, text)
	observability.Clipboard().OnCopy(ctx, c.platform.Name(), text, time.Since(start), err)

	if err != nil {
		c.notifier.Notify(notify.KindError, fmt.Sprintf("Could not copy %s: %s", text, errors.UserMessage(err)))
		return err
	}
	c.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Selected color is %s", text))
	return nil
}
