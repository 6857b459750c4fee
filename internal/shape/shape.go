// Package shape defines the renderable primitives produced by the drawing
// tools. Shapes are mutable: a tool keeps a pointer to the shape it is
// building and updates it in place while the gesture continues.
package shape

import (
	"fmt"
	"image/color"
	"math"

	"github.com/example/paintbox/internal/geom"
)

// Kind identifies a shape variant.
type Kind int

const (
	KindLine Kind = iota
	KindRectangle
	KindEllipse
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Style carries the stroke settings a shape is created with.
type Style struct {
	Color color.RGBA
	Width int
}

// DefaultStyle is a 2px black stroke.
func DefaultStyle() Style {
	return Style{Color: color.RGBA{0, 0, 0, 255}, Width: 2}
}

// Font describes how a text label is set.
type Font struct {
	Size float64 // points at 72 DPI
}

// Shape is implemented by *Line, *Rectangle, *Ellipse and *Text.
type Shape interface {
	Kind() Kind
	// Bounds returns the geometric extent, excluding stroke width.
	Bounds() geom.Rect
	// Stroke returns the style the shape was created with.
	Stroke() Style
}

// Line is a segment from Start to End.
type Line struct {
	Start, End geom.Point
	Style      Style
}

// NewLine returns a zero-length line anchored at p.
func NewLine(p geom.Point, st Style) *Line {
	return &Line{Start: p, End: p, Style: st}
}

func (l *Line) Kind() Kind        { return KindLine }
func (l *Line) Stroke() Style     { return l.Style }
func (l *Line) Bounds() geom.Rect { return geom.Span(l.Start, l.End) }

// Length returns the distance between the endpoints.
func (l *Line) Length() float64 {
	return math.Hypot(l.End.X-l.Start.X, l.End.Y-l.Start.Y)
}

// Rectangle is an axis-aligned rectangle with a non-negative size.
type Rectangle struct {
	geom.Rect
	Style Style
}

// NewRectangle returns a zero-size rectangle at p.
func NewRectangle(p geom.Point, st Style) *Rectangle {
	return &Rectangle{Rect: geom.Rect{X: p.X, Y: p.Y}, Style: st}
}

func (r *Rectangle) Kind() Kind        { return KindRectangle }
func (r *Rectangle) Stroke() Style     { return r.Style }
func (r *Rectangle) Bounds() geom.Rect { return r.Rect }

// Ellipse is an axis-aligned ellipse given by centre and radii.
type Ellipse struct {
	Center geom.Point
	RX, RY float64
	Style  Style
}

// NewEllipse returns a zero-radius ellipse centred on p.
func NewEllipse(p geom.Point, st Style) *Ellipse {
	return &Ellipse{Center: p, Style: st}
}

func (e *Ellipse) Kind() Kind    { return KindEllipse }
func (e *Ellipse) Stroke() Style { return e.Style }

// Bounds returns the box the ellipse is inscribed in.
func (e *Ellipse) Bounds() geom.Rect {
	return geom.Rect{X: e.Center.X - e.RX, Y: e.Center.Y - e.RY, W: 2 * e.RX, H: 2 * e.RY}
}

// Text is a single-line label. Position is the top-left corner of the line
// box; renderers place the baseline one ascent below it.
type Text struct {
	Position geom.Point
	Font     Font
	Content  string
	Style    Style
}

func (t *Text) Kind() Kind    { return KindText }
func (t *Text) Stroke() Style { return t.Style }

// Bounds approximates the label box from the font size since metrics depend
// on the renderer.
func (t *Text) Bounds() geom.Rect {
	w := float64(len([]rune(t.Content))) * t.Font.Size * 0.6
	return geom.Rect{X: t.Position.X, Y: t.Position.Y, W: w, H: t.Font.Size * 1.25}
}
