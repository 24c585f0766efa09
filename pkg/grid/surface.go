package grid

import (
	"context"
	"sync"

	"github.com/matzehuels/huegrid/pkg/errors"
)

// Action is the activation handler attached to a placed cell.
type Action func(ctx context.Context) error

// Surface is a display that the Renderer repopulates.
//
// A render pass calls Clear once, Place once per cell in row-major order and
// Flush once at the end. Surfaces that can be observed concurrently should
// only publish the new frame at Flush.
type Surface interface {
	Clear()
	Place(c Cell, activate Action)
	Flush()
}

type placed struct {
	cell     Cell
	activate Action
}

// Buffer is a double-buffered in-memory Surface. Readers always see the last
// flushed frame, never one that is still being built. It is safe for
// concurrent use.
type Buffer struct {
	mu     sync.RWMutex
	front  []placed
	back   []placed
	rows   int
	cols   int
	frames int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Clear empties the back buffer.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.back = nil
}

// Place appends a cell to the back buffer.
func (b *Buffer) Place(c Cell, activate Action) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.back = append(b.back, placed{cell: c, activate: activate})
}

// Flush publishes the back buffer.
func (b *Buffer) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.front, b.back = b.back, nil
	b.rows, b.cols = 0, 0
	for _, p := range b.front {
		b.rows = max(b.rows, p.cell.Row)
		b.cols = max(b.cols, p.cell.Col)
	}
	b.frames++
}

// Len returns the number of visible cells.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.front)
}

// Dimensions returns the row and column count of the visible frame.
func (b *Buffer) Dimensions() (rows, cols int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rows, b.cols
}

// Frames returns how many frames have been flushed.
func (b *Buffer) Frames() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frames
}

// Cells returns a copy of the visible cells in placement order.
func (b *Buffer) Cells() []Cell {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Cell, len(b.front))
	for i, p := range b.front {
		out[i] = p.cell
	}
	return out
}

// At returns the visible cell at (row, col), 1-indexed.
func (b *Buffer) At(row, col int) (Cell, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.lookup(row, col)
	return p.cell, ok
}

// Activate runs the handler of the cell at (row, col).
func (b *Buffer) Activate(ctx context.Context, row, col int) error {
	b.mu.RLock()
	p, ok := b.lookup(row, col)
	b.mu.RUnlock()

	if !ok {
		return errors.New(errors.ErrCodeNotFound, "no cell at row %d, column %d", row, col)
	}
	if p.activate == nil {
		return nil
	}
	return p.activate(ctx)
}

func (b *Buffer) lookup(row, col int) (placed, bool) {
	if row < 1 || col < 1 || row > b.rows || col > b.cols {
		return placed{}, false
	}
	// Frames from the Renderer are complete and row-major.
	if i := (row-1)*b.cols + (col - 1); i < len(b.front) {
		if p := b.front[i]; p.cell.Row == row && p.cell.Col == col {
			return p, true
		}
	}
	for _, p := range b.front {
		if p.cell.Row == row && p.cell.Col == col {
			return p, true
		}
	}
	return placed{}, false
}
