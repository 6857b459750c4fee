package tool

import (
	"testing"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

type fakeWidget struct {
	pos     geom.Point
	visible bool
	font    shape.Font
	text    string
	clears  int
}

func (w *fakeWidget) Relocate(p geom.Point) { w.pos = p }
func (w *fakeWidget) SetVisible(v bool)     { w.visible = v }
func (w *fakeWidget) Visible() bool         { return w.visible }
func (w *fakeWidget) Position() geom.Point  { return w.pos }
func (w *fakeWidget) Font() shape.Font      { return w.font }
func (w *fakeWidget) Text() string          { return w.text }
func (w *fakeWidget) Clear()                { w.text = ""; w.clears++ }

func newBoundTextTool() (*TextTool, *fakeWidget) {
	w := &fakeWidget{font: shape.Font{Size: 16}}
	tl := NewTextTool(shape.DefaultStyle())
	tl.Bind(w)
	return tl, w
}

func TestTextScenario(t *testing.T) {
	c := &recordingCanvas{}
	tl, w := newBoundTextTool()
	tl.Release(geom.Pt(5, 5), c)
	if !w.visible || w.pos != geom.Pt(5, 5) || !tl.Pending() {
		t.Fatalf("release did not open a session: %+v pending=%v", w, tl.Pending())
	}
	if len(c.shapes) != 0 {
		t.Fatalf("release added %d shapes before commit", len(c.shapes))
	}
	w.text = "hi"
	tl.Commit()
	if len(c.shapes) != 1 {
		t.Fatalf("got %d shapes after commit", len(c.shapes))
	}
	txt := c.shapes[0].(*shape.Text)
	if txt.Content != "hi" || txt.Position != geom.Pt(5, 5) || txt.Font.Size != 16 {
		t.Fatalf("text = %+v", txt)
	}
	if w.visible || w.text != "" {
		t.Fatalf("widget not hidden and cleared: %+v", w)
	}
	if tl.Pending() {
		t.Fatal("session still pending after commit")
	}
}

func TestTextCommitFiresOncePerSession(t *testing.T) {
	c := &recordingCanvas{}
	tl, w := newBoundTextTool()
	tl.Release(geom.Pt(1, 1), c)
	w.text = "once"
	tl.Commit()
	tl.Commit()
	tl.End()
	if len(c.shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(c.shapes))
	}
}

func TestTextReleaseCommitsPreviousSession(t *testing.T) {
	c := &recordingCanvas{}
	tl, w := newBoundTextTool()
	tl.Release(geom.Pt(0, 0), c)
	w.text = "first"
	tl.Release(geom.Pt(40, 40), c)
	if len(c.shapes) != 1 {
		t.Fatalf("got %d shapes, want previous session committed", len(c.shapes))
	}
	first := c.shapes[0].(*shape.Text)
	if first.Content != "first" || first.Position != geom.Pt(0, 0) {
		t.Fatalf("first = %+v", first)
	}
	if !w.visible || w.pos != geom.Pt(40, 40) || w.text != "" {
		t.Fatalf("second session not started cleanly: %+v", w)
	}
}

func TestTextReleaseCommitsEmptySession(t *testing.T) {
	c := &recordingCanvas{}
	tl, _ := newBoundTextTool()
	tl.Release(geom.Pt(0, 0), c)
	tl.Release(geom.Pt(1, 1), c)
	if len(c.shapes) != 1 || c.shapes[0].(*shape.Text).Content != "" {
		t.Fatalf("empty session not committed: %+v", c.shapes)
	}
}

func TestTextEndCommitsAndIsIdempotent(t *testing.T) {
	c := &recordingCanvas{}
	tl, w := newBoundTextTool()
	tl.End()
	tl.Release(geom.Pt(3, 3), c)
	w.text = "bye"
	tl.End()
	tl.End()
	if len(c.shapes) != 1 || c.shapes[0].(*shape.Text).Content != "bye" {
		t.Fatalf("End did not commit exactly once: %+v", c.shapes)
	}
	if w.visible {
		t.Fatal("widget still visible after End")
	}
}

func TestTextCancelDropsSession(t *testing.T) {
	c := &recordingCanvas{}
	tl, w := newBoundTextTool()
	tl.Release(geom.Pt(3, 3), c)
	w.text = "nope"
	tl.Cancel()
	tl.End()
	if len(c.shapes) != 0 {
		t.Fatalf("cancel still produced %d shapes", len(c.shapes))
	}
	if w.visible || w.text != "" {
		t.Fatalf("widget not reset: %+v", w)
	}
}

func TestTextPressAndDragAreNoOps(t *testing.T) {
	c := &recordingCanvas{}
	tl, w := newBoundTextTool()
	tl.Press(geom.Pt(1, 1), c)
	tl.Drag(geom.Pt(2, 2), c)
	if w.visible || tl.Pending() || len(c.shapes) != 0 {
		t.Fatalf("press/drag changed state: %+v", w)
	}
}

func TestTextUnboundIsNoOp(t *testing.T) {
	c := &recordingCanvas{}
	tl := NewTextTool(shape.DefaultStyle())
	tl.Release(geom.Pt(1, 1), c)
	tl.Commit()
	tl.Cancel()
	tl.End()
	if tl.Pending() || len(c.shapes) != 0 {
		t.Fatal("unbound text tool changed state")
	}
}
