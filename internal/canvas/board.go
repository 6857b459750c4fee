// Package canvas holds the shapes produced by the drawing tools.
package canvas

import (
	"image"
	"sync"

	"github.com/google/uuid"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/shape"
)

// Entry is a shape on the board together with its identifier.
type Entry struct {
	ID    string
	Shape shape.Shape
}

// Board is an ordered list of shapes. Shapes are kept by reference so the
// tool that added one can keep reshaping it until its gesture ends.
type Board struct {
	mu       sync.RWMutex
	entries  []Entry
	onChange func()
}

// New returns an empty board.
func New() *Board { return &Board{} }

// OnChange registers fn to run after every AddShape or Clear. fn runs
// without the board lock held.
func (b *Board) OnChange(fn func()) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// AddShape appends s. It satisfies tool.Canvas.
func (b *Board) AddShape(s shape.Shape) {
	b.Add(s)
}

// Add appends s and returns its new identifier.
func (b *Board) Add(s shape.Shape) string {
	if s == nil {
		return ""
	}
	id := uuid.NewString()
	b.mu.Lock()
	b.entries = append(b.entries, Entry{ID: id, Shape: s})
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
	return id
}

// Shapes returns a snapshot of the entries in insertion order.
func (b *Board) Shapes() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Get returns the shape with the given identifier.
func (b *Board) Get(id string) (shape.Shape, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, e := range b.entries {
		if e.ID == id {
			return e.Shape, true
		}
	}
	return nil, false
}

// Len reports how many shapes are on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Clear removes every shape.
func (b *Board) Clear() {
	b.mu.Lock()
	b.entries = nil
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Bounds is the union of every shape's bounds, or the zero Rect when the
// board is empty.
func (b *Board) Bounds() geom.Rect {
	var r geom.Rect
	for _, e := range b.Shapes() {
		r = r.Union(e.Shape.Bounds())
	}
	return r
}

// Extent is the pixel area touched when the board is rendered.
func (b *Board) Extent() image.Rectangle {
	var r image.Rectangle
	for _, e := range b.Shapes() {
		r = r.Union(render.Extent(e.Shape))
	}
	return r
}

// Render draws every shape onto dst in insertion order, translating canvas
// coordinates by offset.
func (b *Board) Render(dst *image.RGBA, offset image.Point) error {
	entries := b.Shapes()
	for _, e := range entries {
		if err := render.Shape(dst, e.Shape, offset); err != nil {
			return err
		}
	}
	return nil
}
