package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/uuid"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
	"github.com/example/paintbox/internal/tool"
)

var _ tool.Canvas = (*Board)(nil)

func TestBoardAssignsUniqueIDs(t *testing.T) {
	b := New()
	id1 := b.Add(shape.NewLine(geom.Pt(0, 0), shape.DefaultStyle()))
	id2 := b.Add(shape.NewLine(geom.Pt(1, 1), shape.DefaultStyle()))
	if id1 == id2 {
		t.Fatalf("ids collide: %s", id1)
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Fatalf("id %q is not a uuid: %v", id1, err)
	}
	if s, ok := b.Get(id2); !ok || s.(*shape.Line).Start != geom.Pt(1, 1) {
		t.Fatalf("Get(%s) = %v, %v", id2, s, ok)
	}
	if b.Add(nil) != "" || b.Len() != 2 {
		t.Fatal("nil shape should be ignored")
	}
}

func TestBoardKeepsShapesByReference(t *testing.T) {
	b := New()
	l := shape.NewLine(geom.Pt(0, 0), shape.DefaultStyle())
	b.AddShape(l)
	l.End = geom.Pt(5, 5)
	got := b.Shapes()[0].Shape.(*shape.Line)
	if got.End != geom.Pt(5, 5) {
		t.Fatalf("mutation not visible: %v", got.End)
	}
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	b := New()
	b.AddShape(shape.NewLine(geom.Pt(0, 0), shape.DefaultStyle()))
	snap := b.Shapes()
	b.AddShape(shape.NewLine(geom.Pt(0, 0), shape.DefaultStyle()))
	if len(snap) != 1 {
		t.Fatalf("snapshot grew to %d", len(snap))
	}
}

func TestBoardOnChange(t *testing.T) {
	b := New()
	calls := 0
	b.OnChange(func() { calls++ })
	b.AddShape(shape.NewLine(geom.Pt(0, 0), shape.DefaultStyle()))
	b.Clear()
	if calls != 2 {
		t.Fatalf("OnChange called %d times, want 2", calls)
	}
	if b.Len() != 0 {
		t.Fatal("clear left shapes behind")
	}
}

func TestBoardBounds(t *testing.T) {
	b := New()
	if b.Bounds() != (geom.Rect{}) {
		t.Fatal("empty board should have zero bounds")
	}
	b.AddShape(&shape.Rectangle{Rect: geom.Rect{X: 10, Y: 10, W: 40, H: 20}})
	b.AddShape(&shape.Ellipse{Center: geom.Pt(100, 100), RX: 10, RY: 5})
	want := geom.Rect{X: 10, Y: 10, W: 100, H: 95}
	if got := b.Bounds(); got != want {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestBoardRenderOrder(t *testing.T) {
	b := New()
	blue := color.RGBA{B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	b.AddShape(&shape.Line{Start: geom.Pt(2, 2), End: geom.Pt(8, 2), Style: shape.Style{Color: blue, Width: 1}})
	b.AddShape(&shape.Line{Start: geom.Pt(5, 0), End: geom.Pt(5, 6), Style: shape.Style{Color: green, Width: 1}})
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := b.Render(img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(5, 2); got != green {
		t.Fatalf("later shape should paint over earlier: %+v", got)
	}
	if got := img.RGBAAt(3, 2); got != blue {
		t.Fatalf("first shape missing: %+v", got)
	}
}

func TestBoardWithToolbox(t *testing.T) {
	b := New()
	tb := tool.NewToolbox(b, shape.DefaultStyle())
	tb.Select(tool.KindRect)
	tb.Press(geom.Pt(50, 30))
	tb.Drag(geom.Pt(10, 10))
	tb.Release(geom.Pt(10, 10))
	entries := b.Shapes()
	if len(entries) != 1 {
		t.Fatalf("got %d shapes", len(entries))
	}
	r := entries[0].Shape.(*shape.Rectangle)
	if r.Rect != (geom.Rect{X: 10, Y: 10, W: 40, H: 20}) {
		t.Fatalf("rect = %+v", r.Rect)
	}
}
