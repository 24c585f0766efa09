package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process clipboard. Set Permission and Err to simulate
// platform refusals.
type Memory struct {
	mu         sync.Mutex
	text       string
	writes     int
	Permission Permission
	QueryErr   error
	Err        error
}

// NewMemory returns a clipboard that grants every write.
func NewMemory() *Memory {
	return &Memory{Permission: PermissionGranted}
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) QueryPermission(ctx context.Context, name string) (Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Permission, m.QueryErr
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	m.writes++
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
