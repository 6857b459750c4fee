package tool

import (
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

// LineTool draws a segment from the press point to the pointer.
type LineTool struct {
	style shape.Style
	line  *shape.Line
}

// NewLineTool returns an idle line tool.
func NewLineTool(st shape.Style) *LineTool { return &LineTool{style: st} }

func (t *LineTool) SetStyle(st shape.Style) { t.style = st }

// InProgress reports whether a segment is being drawn.
func (t *LineTool) InProgress() bool { return t.line != nil }

func (t *LineTool) Press(p geom.Point, c Canvas) {
	t.line = shape.NewLine(p, t.style)
	c.AddShape(t.line)
}

func (t *LineTool) Drag(p geom.Point, _ Canvas) {
	if t.line == nil {
		return
	}
	t.line.End = p
}

func (t *LineTool) Release(p geom.Point, c Canvas) {
	t.Drag(p, c)
	t.End()
}

func (t *LineTool) End() { t.line = nil }
