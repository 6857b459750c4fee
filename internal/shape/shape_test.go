package shape

import (
	"testing"

	"github.com/example/paintbox/internal/geom"
)

func TestConstructorsAreDegenerate(t *testing.T) {
	p := geom.Pt(12, 34)
	st := DefaultStyle()

	l := NewLine(p, st)
	if l.Start != p || l.End != p || l.Length() != 0 {
		t.Fatalf("NewLine not degenerate: %+v", l)
	}
	r := NewRectangle(p, st)
	if r.X != p.X || r.Y != p.Y || r.W != 0 || r.H != 0 {
		t.Fatalf("NewRectangle not degenerate: %+v", r)
	}
	e := NewEllipse(p, st)
	if e.Center != p || e.RX != 0 || e.RY != 0 {
		t.Fatalf("NewEllipse not degenerate: %+v", e)
	}
}

func TestEllipseBoundsMatchesInscribingBox(t *testing.T) {
	e := &Ellipse{Center: geom.Pt(30, 70), RX: 20, RY: 20}
	want := geom.Rect{X: 10, Y: 50, W: 40, H: 40}
	if got := e.Bounds(); got != want {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{KindLine: "line", KindRectangle: "rect", KindEllipse: "ellipse", KindText: "text"}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(k), k.String(), want)
		}
	}
}
