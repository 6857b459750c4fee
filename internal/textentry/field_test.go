package textentry

import (
	"testing"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
	"github.com/example/paintbox/internal/tool"
)

var _ tool.TextWidget = (*Field)(nil)

func TestFieldEditing(t *testing.T) {
	f := New(shape.Font{Size: 20})
	for _, r := range "héllo" {
		if !f.Insert(r) {
			t.Fatalf("Insert(%q) rejected", r)
		}
	}
	if f.Insert('\n') || f.Insert(-1) {
		t.Fatal("control runes should be rejected")
	}
	if !f.Backspace() {
		t.Fatal("Backspace on non-empty field returned false")
	}
	if got := f.Text(); got != "héll" {
		t.Fatalf("Text() = %q", got)
	}
	f.Clear()
	if f.Backspace() || f.Len() != 0 {
		t.Fatal("field not empty after Clear")
	}
}

func TestFieldDrivesTextTool(t *testing.T) {
	f := New(shape.Font{Size: 24})
	var added []shape.Shape
	c := canvasFunc(func(s shape.Shape) { added = append(added, s) })

	tl := tool.NewTextTool(shape.DefaultStyle())
	tl.Bind(f)
	tl.Release(geom.Pt(5, 5), c)
	f.SetText("hi")
	tl.Commit()

	if len(added) != 1 {
		t.Fatalf("got %d shapes", len(added))
	}
	txt := added[0].(*shape.Text)
	if txt.Content != "hi" || txt.Position != geom.Pt(5, 5) || txt.Font.Size != 24 {
		t.Fatalf("text = %+v", txt)
	}
	if f.Visible() || f.Text() != "" {
		t.Fatalf("field not reset: visible=%v text=%q", f.Visible(), f.Text())
	}
}

type canvasFunc func(shape.Shape)

func (fn canvasFunc) AddShape(s shape.Shape) { fn(s) }
