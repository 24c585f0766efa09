// Package clipboard copies tile colors to the user's clipboard.
//
// A [Platform] exposes the two operations every clipboard backend offers: a
// permission query and a text write. [Write] combines them with the
// permission rules of the viewer:
//
//   - granted: write the text
//   - prompt: attempt the write; a refusal is reported as "permission not granted"
//   - denied: fail without writing
//
// [Copier] wraps [Write] with user notifications and observability hooks and
// is what grid cells call when activated. Copies are independent: several may
// be in flight at once and each reports its own outcome.
//
// Backends:
//   - [System]: the OS clipboard through atotto/clipboard (pbcopy, xclip, xsel, wl-copy, Windows API)
//   - [OSC52]: an OSC 52 escape sequence written to the terminal, for SSH sessions
//   - [Memory]: an in-process clipboard for tests
//
// [New] selects a backend by name; "auto" prefers the system clipboard and
// falls back to OSC 52 when no clipboard utility is installed.
package clipboard

import (
	"context"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/matzehuels/huegrid/pkg/errors"
)

// PermissionWrite is the permission name queried before writing.
const PermissionWrite = "clipboard-write"

// Permission is the state of a clipboard permission.
type Permission int

const (
	PermissionGranted Permission = iota
	PermissionPrompt
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionPrompt:
		return "prompt"
	case PermissionDenied:
		return "denied"
	}
	return "unknown"
}

// Platform is a clipboard backend.
type Platform interface {
	// Name identifies the backend in logs.
	Name() string

	// QueryPermission reports the state of the named permission.
	QueryPermission(ctx context.Context, name string) (Permission, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(ctx context.Context, text string) error
}

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// New returns the backend with the given name. OSC 52 sequences are written to w.
func New(name string, w io.Writer) (Platform, error) {
	switch strings.ToLower(name) {
	case "", BackendAuto:
		if clipboard.Unsupported {
			return NewOSC52(w), nil
		}
		return System{}, nil
	case BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return NewOSC52(w), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown clipboard backend %q (must be auto, system or osc52)", name)
}

// Write queries the write permission on p and, unless it is denied, writes text.
// Errors carry one of the CLIPBOARD_* codes.
func Write(ctx context.Context, p Platform, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm, err := p.QueryPermission(ctx, PermissionWrite)
	if err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeClipboardUnavailable, err, "query clipboard permission")
	}

	switch perm {
	case PermissionDenied:
		return errors.New(errors.ErrCodeClipboardDenied, "clipboard permission denied")
	case PermissionPrompt:
		if err := p.WriteText(ctx, text); err != nil {
			return errors.Wrap(errors.ErrCodeClipboardDenied, err, "clipboard permission not granted")
		}
		return nil
	default:
		if err := p.WriteText(ctx, text); err != nil {
			return errors.Wrap(errors.ErrCodeClipboardWrite, err, "clipboard write failed")
		}
		return nil
	}
}
