// Package notify implements transient user notifications ("toasts").
//
// A [Notifier] accepts a [Kind] and a message. [Stack] is the implementation
// used by the terminal UI: toasts stack newest-first, auto-dismiss after a TTL
// and the oldest entries fall off once the stack is full. Stack is safe for
// concurrent use because clipboard copies report from their own goroutines.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the severity of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notifier receives notifications.
type Notifier interface {
	Notify(kind Kind, message string)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(kind Kind, message string)

// Notify calls f(kind, message).
func (f NotifierFunc) Notify(kind Kind, message string) { f(kind, message) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Kind, string) {})

// Defaults for a new Stack.
const (
	DefaultTTL = 4 * time.Second
	DefaultMax = 5
)

// Toast is one visible notification.
type Toast struct {
	ID        uuid.UUID
	Kind      Kind
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Stack is an auto-dismissing list of toasts.
type Stack struct {
	mu     sync.Mutex
	toasts []Toast // newest first
	ttl    time.Duration
	max    int
	now    func() time.Time
}

// Option configures a Stack.
type Option func(*Stack)

// WithTTL sets how long a toast stays visible.
func WithTTL(d time.Duration) Option { return func(s *Stack) { s.ttl = d } }

// WithMax caps the number of visible toasts.
func WithMax(n int) Option { return func(s *Stack) { s.max = n } }

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(s *Stack) { s.now = now } }

// NewStack returns an empty stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{ttl: DefaultTTL, max: DefaultMax, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.max < 1 {
		s.max = DefaultMax
	}
	return s
}

// Notify implements Notifier.
func (s *Stack) Notify(kind Kind, message string) {
	s.Push(kind, message)
}

// Push adds a toast on top of the stack and returns it.
func (s *Stack) Push(kind Kind, message string) Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := Toast{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.toasts = append([]Toast{t}, s.toasts...)
	if len(s.toasts) > s.max {
		s.toasts = s.toasts[:s.max]
	}
	return t
}

// Visible drops expired toasts and returns the rest, newest first.
func (s *Stack) Visible() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Prune drops expired toasts and reports how many were removed.
func (s *Stack) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pruneLocked()
}

func (s *Stack) pruneLocked() int {
	now := s.now()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	removed := len(s.toasts) - len(kept)
	s.toasts = kept
	return removed
}

// Dismiss removes the toast with the given ID.
func (s *Stack) Dismiss(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of toasts, including expired ones not yet pruned.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.toasts)
}

// NextExpiry returns the time until the oldest toast expires.
// ok is false when the stack is empty.
func (s *Stack) NextExpiry() (d time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.toasts) == 0 {
		return 0, false
	}
	earliest := s.toasts[0].ExpiresAt
	for _, t := range s.toasts[1:] {
		if t.ExpiresAt.Before(earliest) {
			earliest = t.ExpiresAt
		}
	}
	d = earliest.Sub(s.now())
	if d < 0 {
		d = 0
	}
	return d, true
}
