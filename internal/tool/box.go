package tool

import (
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

// RectTool draws an axis-aligned rectangle spanning the press point and the
// pointer, whichever direction the pointer moves.
type RectTool struct {
	style  shape.Style
	anchor geom.Point
	rect   *shape.Rectangle
}

// NewRectTool returns an idle rectangle tool.
func NewRectTool(st shape.Style) *RectTool { return &RectTool{style: st} }

func (t *RectTool) SetStyle(st shape.Style) { t.style = st }

// InProgress reports whether a rectangle is being drawn.
func (t *RectTool) InProgress() bool { return t.rect != nil }

func (t *RectTool) Press(p geom.Point, c Canvas) {
	t.anchor = p
	t.rect = shape.NewRectangle(p, t.style)
	c.AddShape(t.rect)
}

func (t *RectTool) Drag(p geom.Point, _ Canvas) {
	if t.rect == nil {
		return
	}
	t.rect.Rect = geom.Span(t.anchor, p)
}

func (t *RectTool) Release(p geom.Point, c Canvas) {
	t.Drag(p, c)
	t.End()
}

func (t *RectTool) End() { t.rect = nil }

// EllipseTool draws the ellipse inscribed in the box spanning the press
// point and the pointer.
type EllipseTool struct {
	style   shape.Style
	anchor  geom.Point
	ellipse *shape.Ellipse
}

// NewEllipseTool returns an idle ellipse tool.
func NewEllipseTool(st shape.Style) *EllipseTool { return &EllipseTool{style: st} }

func (t *EllipseTool) SetStyle(st shape.Style) { t.style = st }

// InProgress reports whether an ellipse is being drawn.
func (t *EllipseTool) InProgress() bool { return t.ellipse != nil }

func (t *EllipseTool) Press(p geom.Point, c Canvas) {
	t.anchor = p
	t.ellipse = shape.NewEllipse(p, t.style)
	c.AddShape(t.ellipse)
}

func (t *EllipseTool) Drag(p geom.Point, _ Canvas) {
	if t.ellipse == nil {
		return
	}
	t.ellipse.Center = geom.Midpoint(t.anchor, p)
	t.ellipse.RX = geom.Extent(p.X, t.anchor.X) / 2
	t.ellipse.RY = geom.Extent(p.Y, t.anchor.Y) / 2
}

func (t *EllipseTool) Release(p geom.Point, c Canvas) {
	t.Drag(p, c)
	t.End()
}

func (t *EllipseTool) End() { t.ellipse = nil }
