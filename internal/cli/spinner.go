package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner animates a status line while exports render. Finished steps are
// counted so a multi-format render shows "(2/3)". It stops on its own when
// the parent context is canceled.
type Spinner struct {
	w       io.Writer
	message string
	total   int
	done    atomic.Int32
	style   spinner.Spinner

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	started atomic.Bool
	stop    sync.Once
	mu      sync.Mutex // guards writes to w
	width   int        // widest line drawn, for clearing
}

// newSpinner creates a spinner for total steps drawing to w.
func newSpinner(ctx context.Context, w io.Writer, message string, total int) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		total:   total,
		style:   spinner.MiniDot,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.started.Store(true)
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(s.style.FPS)
		defer ticker.Stop()

		for i := 0; ; i++ {
			s.draw(s.style.Frames[i%len(s.style.Frames)])
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Step records one finished step. Safe for concurrent use.
func (s *Spinner) Step() {
	s.done.Add(1)
}

// Stop ends the animation and clears the line. Calling it again is a no-op.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		s.cancel()
		if s.started.Load() {
			<-s.stopped
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.width > 0 {
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		}
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

func (s *Spinner) line() string {
	if s.total <= 1 {
		return s.message
	}
	return fmt.Sprintf("%s (%d/%d)", s.message, s.done.Load(), s.total)
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.line()
	s.width = max(s.width, len(text)+4)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
}
