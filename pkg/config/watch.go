package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/huegrid/pkg/errors"
)

// debounce coalesces the burst of events editors produce for one save.
const debounce = 100 * time.Millisecond

// Watch calls fn with the reloaded settings every time the file at path is
// written, created or replaced. Load errors are passed to fn as well so the
// caller can keep the previous settings and report the problem.
//
// The parent directory is watched rather than the file itself, because many
// editors save by renaming a temporary file over the original. Watch blocks
// until ctx is done. A directory that cannot be watched is reported as
// FILE_NOT_FOUND or INVALID_CONFIG before any event is delivered.
func Watch(ctx context.Context, path string, fn func(File, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "settings directory %s does not exist", dir)
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "watch %s", dir)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(File{}, err)

		case <-timer.C:
			fn(Load(abs))
		}
	}
}
