// Package geom holds the small amount of planar math the drawing tools need
// to turn two pointer samples into shape parameters.
package geom

import (
	"fmt"
	"image"
	"math"
)

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Image rounds p to the nearest pixel.
func (p Point) Image() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// FromImage converts a pixel position to a canvas point.
func FromImage(p image.Point) Point { return Point{float64(p.X), float64(p.Y)} }

// Mean returns the arithmetic midpoint of a and b.
func Mean(a, b float64) float64 { return (a + b) / 2 }

// Extent returns |a - b|.
func Extent(a, b float64) float64 { return math.Abs(a - b) }

// Origin returns min(a, b).
func Origin(a, b float64) float64 { return math.Min(a, b) }

// Midpoint returns the per-axis mean of a and b.
func Midpoint(a, b Point) Point {
	return Point{Mean(a.X, b.X), Mean(a.Y, b.Y)}
}

// Rect is an axis-aligned rectangle described by its top-left corner and a
// non-negative size.
type Rect struct {
	X, Y float64
	W, H float64
}

// Span normalises two opposite corners into a Rect. The result is the same
// whichever quadrant b lies in relative to a.
func Span(a, b Point) Rect {
	return Rect{
		X: Origin(a.X, b.X),
		Y: Origin(a.Y, b.Y),
		W: Extent(a.X, b.X),
		H: Extent(a.Y, b.Y),
	}
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Center returns the centre of r.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports whether r has zero area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing r and o. A zero Rect is
// treated as absent so it can seed an accumulation.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Inset shrinks r by d on every side; negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}

// Image returns the smallest pixel rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}
