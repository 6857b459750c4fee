// Package render rasterises shapes onto RGBA images.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

// DrawLine draws a Bresenham line between the two points with the given
// thickness.
func DrawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect outlines rect. The right and bottom edges sit on Max-1 so the
// outline stays inside rect, matching image.Rectangle's half-open bounds.
func DrawRect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	if rect.Dx() <= 1 && rect.Dy() <= 1 {
		setThickPixel(img, rect.Min.X, rect.Min.Y, thick, col)
		return
	}
	DrawLine(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	DrawLine(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	DrawLine(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	DrawLine(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}

// DrawEllipse outlines the axis-aligned ellipse centred at (cx, cy) as a
// closed polyline fine enough to look smooth at the given radii.
func DrawEllipse(img *image.RGBA, cx, cy, rx, ry int, col color.Color, thick int) {
	if rx == 0 && ry == 0 {
		setThickPixel(img, cx, cy, thick, col)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(math.Cos(angle)*float64(rx)))
		y := cy + int(math.Round(math.Sin(angle)*float64(ry)))
		if i > 0 {
			DrawLine(img, prevX, prevY, x, y, col, thick)
		} else {
			setThickPixel(img, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

// Shape draws s onto img. off is added to every canvas coordinate so
// callers can map canvas space onto an image whose origin differs.
func Shape(img *image.RGBA, s shape.Shape, off image.Point) error {
	st := s.Stroke()
	col := st.Color
	w := st.Width
	if w < 1 {
		w = 1
	}
	switch v := s.(type) {
	case *shape.Line:
		a := v.Start.Image().Add(off)
		b := v.End.Image().Add(off)
		DrawLine(img, a.X, a.Y, b.X, b.Y, col, w)
	case *shape.Rectangle:
		min := v.Min().Image().Add(off)
		max := v.Max().Image().Add(off)
		DrawRect(img, image.Rectangle{Min: min, Max: max.Add(image.Pt(1, 1))}, col, w)
	case *shape.Ellipse:
		c := v.Center.Image().Add(off)
		DrawEllipse(img, c.X, c.Y, int(math.Round(v.RX)), int(math.Round(v.RY)), col, w)
	case *shape.Text:
		p := v.Position.Image().Add(off)
		return DrawText(img, p.X, p.Y, v.Content, col, v.Font.Size)
	}
	return nil
}

// Shapes draws every shape in order, stopping at the first error.
func Shapes(img *image.RGBA, shapes []shape.Shape, off image.Point) error {
	for _, s := range shapes {
		if err := Shape(img, s, off); err != nil {
			return err
		}
	}
	return nil
}

// Extent returns the pixel rectangle s covers once drawn, including stroke
// width. Text is measured with the real font face.
func Extent(s shape.Shape) image.Rectangle {
	b := s.Bounds()
	if t, ok := s.(*shape.Text); ok {
		if w, h, _, err := MeasureText(t.Content, t.Font.Size); err == nil {
			b = geom.Rect{X: t.Position.X, Y: t.Position.Y, W: float64(w), H: float64(h)}
		}
		return b.Image()
	}
	pad := float64(s.Stroke().Width)/2 + 1
	return geom.Rect{X: b.X - pad, Y: b.Y - pad, W: b.W + 2*pad, H: b.H + 2*pad}.Image()
}
