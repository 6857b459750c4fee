// Package textentry provides the single-line entry field used to type text
// labels onto the canvas.
package textentry

import (
	"unicode"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

// Field is an editable line of text with a canvas position. It satisfies
// tool.TextWidget.
type Field struct {
	pos     geom.Point
	visible bool
	font    shape.Font
	buf     []rune
}

// New returns a hidden, empty field using font f.
func New(f shape.Font) *Field { return &Field{font: f} }

func (f *Field) Relocate(p geom.Point) { f.pos = p }
func (f *Field) SetVisible(v bool)     { f.visible = v }
func (f *Field) Visible() bool         { return f.visible }
func (f *Field) Position() geom.Point  { return f.pos }
func (f *Field) Font() shape.Font      { return f.font }
func (f *Field) Text() string          { return string(f.buf) }
func (f *Field) Clear()                { f.buf = f.buf[:0] }

// SetFont changes the font used for the next committed label.
func (f *Field) SetFont(font shape.Font) { f.font = font }

// SetText replaces the contents.
func (f *Field) SetText(s string) { f.buf = []rune(s) }

// Insert appends a printable rune. Control characters are ignored.
func (f *Field) Insert(r rune) bool {
	if r < 0 || !unicode.IsPrint(r) {
		return false
	}
	f.buf = append(f.buf, r)
	return true
}

// Backspace removes the last rune, reporting whether anything was removed.
func (f *Field) Backspace() bool {
	if len(f.buf) == 0 {
		return false
	}
	f.buf = f.buf[:len(f.buf)-1]
	return true
}

// Len returns the number of runes entered.
func (f *Field) Len() int { return len(f.buf) }
