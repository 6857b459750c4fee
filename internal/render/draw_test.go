package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

var red = color.RGBA{R: 255, A: 255}

func painted(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y).A != 0
}

func TestDrawLineEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawLine(img, 2, 3, 15, 11, red, 1)
	if !painted(img, 2, 3) || !painted(img, 15, 11) {
		t.Fatal("line endpoints not drawn")
	}
	if painted(img, 0, 19) {
		t.Fatal("unexpected pixel far from the line")
	}
}

func TestDrawLineClipsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	DrawLine(img, -10, 2, 10, 2, red, 3)
	for x := 0; x < 5; x++ {
		if !painted(img, x, 2) {
			t.Fatalf("pixel %d not drawn", x)
		}
	}
}

func TestShapeRectangleOutline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	r := &shape.Rectangle{Rect: geom.Rect{X: 10, Y: 10, W: 40, H: 20}, Style: shape.Style{Color: red, Width: 1}}
	if err := Shape(img, r, image.Point{}); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{10, 10}, {50, 10}, {10, 30}, {50, 30}, {30, 10}, {50, 20}} {
		if !painted(img, p.X, p.Y) {
			t.Errorf("outline missing at %v", p)
		}
	}
	if painted(img, 30, 20) {
		t.Error("rectangle interior should stay empty")
	}
}

func TestShapeEllipseTouchesExtremes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	e := &shape.Ellipse{Center: geom.Pt(30, 30), RX: 20, RY: 10, Style: shape.Style{Color: red, Width: 1}}
	if err := Shape(img, e, image.Point{}); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{50, 30}, {10, 30}, {30, 40}, {30, 20}} {
		if !painted(img, p.X, p.Y) {
			t.Errorf("ellipse missing extreme %v", p)
		}
	}
	if painted(img, 30, 30) {
		t.Error("ellipse centre should stay empty")
	}
}

func TestShapeZeroSizeDrawsDot(t *testing.T) {
	st := shape.Style{Color: red, Width: 3}
	for _, s := range []shape.Shape{
		&shape.Line{Start: geom.Pt(8, 8), End: geom.Pt(8, 8), Style: st},
		&shape.Rectangle{Rect: geom.Rect{X: 8, Y: 8}, Style: st},
		&shape.Ellipse{Center: geom.Pt(8, 8), Style: st},
	} {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		if err := Shape(img, s, image.Point{}); err != nil {
			t.Fatal(err)
		}
		if !painted(img, 8, 8) || !painted(img, 9, 9) {
			t.Errorf("%v: zero-size shape not drawn as a dot", s.Kind())
		}
	}
}

func TestShapeOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	l := &shape.Line{Start: geom.Pt(0, 0), End: geom.Pt(0, 0), Style: shape.Style{Color: red, Width: 1}}
	if err := Shape(img, l, image.Pt(5, 6)); err != nil {
		t.Fatal(err)
	}
	if !painted(img, 5, 6) || painted(img, 0, 0) {
		t.Fatal("offset not applied")
	}
}

func TestShapeTextDrawsBelowPosition(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	txt := &shape.Text{Position: geom.Pt(10, 10), Font: shape.Font{Size: 20}, Content: "Hi", Style: shape.Style{Color: red, Width: 1}}
	if err := Shape(img, txt, image.Point{}); err != nil {
		t.Fatal(err)
	}
	found := false
	for y := 0; y < 60 && !found; y++ {
		for x := 0; x < 120; x++ {
			if painted(img, x, y) {
				if y < 10 || x < 10 {
					t.Fatalf("glyph pixel above or left of position at (%d,%d)", x, y)
				}
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("text not drawn")
	}
}

func TestMeasureText(t *testing.T) {
	w, h, base, err := MeasureText("hello", 16)
	if err != nil {
		t.Fatal(err)
	}
	if w <= 0 || h <= 0 || base <= 0 || base > h {
		t.Fatalf("unexpected metrics w=%d h=%d base=%d", w, h, base)
	}
	w2, _, _, err := MeasureText("hello", 32)
	if err != nil {
		t.Fatal(err)
	}
	if w2 <= w {
		t.Fatalf("larger size should be wider: %d <= %d", w2, w)
	}
}

func TestExtentCoversStroke(t *testing.T) {
	r := &shape.Rectangle{Rect: geom.Rect{X: 10, Y: 10, W: 10, H: 10}, Style: shape.Style{Color: red, Width: 4}}
	ext := Extent(r)
	if !image.Rect(10, 10, 20, 20).In(ext) {
		t.Fatalf("extent %v does not cover shape", ext)
	}
	if ext.Min.X > 8 {
		t.Fatalf("extent %v misses stroke", ext)
	}
}
