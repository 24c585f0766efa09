package clipboard

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/matzehuels/huegrid/pkg/errors"
)

// System is the operating system clipboard.
type System struct{}

func (System) Name() string { return BackendSystem }

// QueryPermission reports granted when a clipboard utility is available.
// Without one it fails with CLIPBOARD_UNAVAILABLE.
func (System) QueryPermission(ctx context.Context, name string) (Permission, error) {
	if clipboard.Unsupported {
		return PermissionDenied, errors.New(errors.ErrCodeClipboardUnavailable,
			"no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return PermissionGranted, nil
}

// WriteText writes text with the platform clipboard utility.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}
