package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyShadowExpandsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	subject := image.Pt(5, 5)
	img.Set(subject.X, subject.Y, color.RGBA{R: 255, A: 255})

	s := Shadow{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	out, shift := ApplyShadow(img, s)
	if out == nil {
		t.Fatal("expected output image")
	}
	want := image.Rect(0, 0, 22, 20)
	if !out.Bounds().Eq(want) {
		t.Fatalf("unexpected bounds %v, want %v", out.Bounds(), want)
	}
	if shift != (image.Point{}) {
		t.Fatalf("content moved by %v", shift)
	}
	p := subject.Add(s.Offset)
	if out.RGBAAt(p.X, p.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", p)
	}
	if got := out.RGBAAt(subject.X, subject.Y); got.R != 255 {
		t.Fatalf("subject pixel lost: %+v", got)
	}
}

func TestApplyShadowNegativeOffsetShiftsContent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	out, shift := ApplyShadow(img, Shadow{Radius: 1, Offset: image.Pt(-5, -3), Opacity: 1})
	if shift != image.Pt(6, 4) {
		t.Fatalf("shift = %v", shift)
	}
	if got := out.RGBAAt(shift.X, shift.Y); got.G != 255 {
		t.Fatalf("content not at shift: %+v", got)
	}
}

func TestApplyShadowDisabled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, fill)
		}
	}
	out, _ := ApplyShadow(img, Shadow{Radius: 12, Offset: image.Pt(20, 10)})
	if out != img {
		t.Fatal("disabled shadow should return the input")
	}
}

func TestApplyShadowBlurSpreads(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{A: 255})
	s := Shadow{Radius: 2, Offset: image.Pt(3, 0), Opacity: 1}

	out, shift := ApplyShadow(img, s)
	if out.Bounds().Dx() <= img.Bounds().Dx() {
		t.Fatal("expected wider output bounds")
	}
	base := shift.Add(s.Offset)
	if out.RGBAAt(base.X, base.Y).A == 0 {
		t.Fatal("expected alpha at base shadow location")
	}
	if out.RGBAAt(base.X+1, base.Y).A == 0 {
		t.Fatal("expected blurred alpha to reach neighbour")
	}
}
