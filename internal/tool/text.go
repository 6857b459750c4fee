package tool

import (
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

// TextWidget is the entry field the text tool positions and reads from.
type TextWidget interface {
	Relocate(p geom.Point)
	SetVisible(v bool)
	Visible() bool
	Position() geom.Point
	Font() shape.Font
	Text() string
	Clear()
}

// textSession ties the visible widget to the canvas the label will land on.
type textSession struct {
	canvas Canvas
}

// TextTool places a text label with a single click. A release opens a
// session at the pointer; Commit turns the widget contents into a label.
// A new release or End commits the open session first, so entered text is
// never dropped silently.
type TextTool struct {
	style   shape.Style
	widget  TextWidget
	pending *textSession
}

// NewTextTool returns a text tool. Bind must be called before use.
func NewTextTool(st shape.Style) *TextTool { return &TextTool{style: st} }

func (t *TextTool) SetStyle(st shape.Style) { t.style = st }

// Bind attaches the entry widget. Any session on a previous widget is
// committed first.
func (t *TextTool) Bind(w TextWidget) {
	t.End()
	t.widget = w
}

// Pending reports whether a text session is awaiting commit.
func (t *TextTool) Pending() bool { return t.pending != nil }

// Press does nothing; text placement happens on release.
func (t *TextTool) Press(geom.Point, Canvas) {}

// Drag does nothing.
func (t *TextTool) Drag(geom.Point, Canvas) {}

func (t *TextTool) Release(p geom.Point, c Canvas) {
	if t.widget == nil {
		return
	}
	t.End()
	t.widget.Relocate(p)
	t.widget.SetVisible(true)
	t.pending = &textSession{canvas: c}
}

// Commit adds a label with the widget's current text, even when empty, then
// clears and hides the widget. Without an open session it does nothing.
func (t *TextTool) Commit() {
	if t.widget == nil || t.pending == nil {
		return
	}
	sess := t.pending
	t.pending = nil
	sess.canvas.AddShape(&shape.Text{
		Position: t.widget.Position(),
		Font:     t.widget.Font(),
		Content:  t.widget.Text(),
		Style:    t.style,
	})
	t.widget.Clear()
	t.widget.SetVisible(false)
}

// Cancel closes the open session without adding a label.
func (t *TextTool) Cancel() {
	if t.widget == nil || t.pending == nil {
		return
	}
	t.pending = nil
	t.widget.Clear()
	t.widget.SetVisible(false)
}

// End commits the open session if the widget is still showing it.
func (t *TextTool) End() {
	if t.widget == nil || t.pending == nil {
		return
	}
	if !t.widget.Visible() {
		t.pending = nil
		return
	}
	t.Commit()
}
