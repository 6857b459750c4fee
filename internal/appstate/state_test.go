package appstate

import (
	"image"
	"testing"

	"github.com/example/paintbox/internal/canvas"
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/theme"
	"github.com/example/paintbox/internal/tool"
)

func TestNewAppliesOptions(t *testing.T) {
	b := canvas.New()
	closed := false
	a := New(
		WithBoard(b),
		WithOutput("out.png"),
		WithColorIndex(2),
		WithWidthIndex(3),
		WithTextSize(24),
		WithTool(tool.KindRect),
		WithOnClose(func() { closed = true }),
	)
	if a.Session.Board() != b {
		t.Fatal("board not used")
	}
	if a.Session.Tool() != tool.KindRect || a.Session.ColorIndex() != 2 || a.Session.WidthIndex() != 3 || a.Session.TextSize() != 24 {
		t.Fatalf("session not configured: %v %d %d %v", a.Session.Tool(), a.Session.ColorIndex(), a.Session.WidthIndex(), a.Session.TextSize())
	}
	if a.Theme == nil || a.Theme.Name != theme.Default().Name {
		t.Fatal("default theme not applied")
	}
	a.notifyClose()
	a.notifyClose()
	if !closed {
		t.Fatal("close callback not run")
	}
}

func TestBoardChangesRequestRepaint(t *testing.T) {
	a := New()
	a.Session.Press(geom.Pt(1, 1))
	select {
	case <-a.updateCh:
	default:
		t.Fatal("adding a shape should queue a repaint")
	}
	a.NotifyChanged()
	a.NotifyChanged()
}

func TestPDFPath(t *testing.T) {
	for in, want := range map[string]string{
		"drawing.png": "drawing.pdf",
		"a/b.PDF":     "a/b.PDF",
		"noext":       "noext.pdf",
	} {
		if got := pdfPath(in); got != want {
			t.Errorf("pdfPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutHitTest(t *testing.T) {
	l := computeLayout(800, 600, tool.KindLine)
	if len(l.tools) != len(tool.Kinds()) || len(l.palette) != paletteLen() {
		t.Fatalf("layout sizes tools=%d palette=%d", len(l.tools), len(l.palette))
	}
	if len(l.widths) == 0 || len(l.sizes) != 0 {
		t.Fatal("stroke tools show widths, not text sizes")
	}
	if h := l.hitTest(l.tools[3].Min.Add(image.Pt(1, 1))); h != (hit{areaTool, 3}) {
		t.Fatalf("tool hit = %+v", h)
	}
	if h := l.hitTest(l.palette[5].Min); h != (hit{areaPalette, 5}) {
		t.Fatalf("palette hit = %+v", h)
	}
	if h := l.hitTest(image.Pt(400, 300)); h.area != areaCanvas {
		t.Fatalf("canvas hit = %+v", h)
	}
	if h := l.hitTest(image.Pt(400, 590)); h.area != areaStatus {
		t.Fatalf("status hit = %+v", h)
	}

	lt := computeLayout(800, 600, tool.KindText)
	if len(lt.sizes) != len(render.TextSizes) || len(lt.widths) != 0 {
		t.Fatal("text tool shows text sizes")
	}
}

func TestViewMapsToCanvas(t *testing.T) {
	v := view{origin: image.Pt(toolbarWidth, 0), zoom: 2}
	if p := v.toCanvas(float32(toolbarWidth+20), 10); p != geom.Pt(10, 5) {
		t.Fatalf("toCanvas = %v", p)
	}
}

func TestStatusItemsFollowEditing(t *testing.T) {
	l := computeLayout(800, 600, tool.KindText)
	items := statusItems(l, true, 1)
	if items[0].action != "commit" || items[1].action != "cancel" {
		t.Fatalf("editing items = %+v", items)
	}
	items = statusItems(l, false, 1)
	for i := 1; i < len(items); i++ {
		if items[i].rect.Min.X <= items[i-1].rect.Max.X-1 {
			t.Fatalf("items overlap: %v %v", items[i-1].rect, items[i].rect)
		}
	}
}
