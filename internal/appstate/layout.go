package appstate

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/tool"
)

const (
	toolbarWidth = 96
	statusHeight = 24
	toolRow      = 24
	swatchSize   = 16
	swatchStep   = 18
	widthRow     = 16
	sizeRow      = 24
	gap          = 4
)

// area identifies a clickable region of the chrome.
type area int

const (
	areaNone area = iota
	areaTool
	areaPalette
	areaWidth
	areaSize
	areaStatus
	areaCanvas
)

// hit is the region and item index under the pointer.
type hit struct {
	area area
	idx  int
}

var noHit = hit{area: areaNone, idx: -1}

// layout positions every toolbar item for a window of the given size. The
// width list is shown for the stroke tools and the size list for text.
type layout struct {
	tools   []image.Rectangle
	palette []image.Rectangle
	widths  []image.Rectangle
	sizes   []image.Rectangle
	canvas  image.Rectangle
	status  image.Rectangle
}

func computeLayout(w, h int, active tool.Kind) layout {
	var l layout
	y := 0
	for range tool.Kinds() {
		l.tools = append(l.tools, image.Rect(0, y, toolbarWidth, y+toolRow))
		y += toolRow
	}
	y += gap
	x := gap
	n := paletteLen()
	for i := 0; i < n; i++ {
		l.palette = append(l.palette, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
		if x+swatchSize > toolbarWidth && i < n-1 {
			x = gap
			y += swatchStep
		}
	}
	y += swatchStep + gap
	if active == tool.KindText {
		for range render.TextSizes {
			l.sizes = append(l.sizes, image.Rect(0, y, toolbarWidth, y+sizeRow))
			y += sizeRow
		}
	} else {
		for i := 0; i < widthsLen(); i++ {
			l.widths = append(l.widths, image.Rect(0, y, toolbarWidth, y+widthRow))
			y += widthRow
		}
	}
	l.canvas = image.Rect(toolbarWidth, 0, max(w, toolbarWidth+1), max(h-statusHeight, 1))
	l.status = image.Rect(0, h-statusHeight, w, h)
	return l
}

// hitTest finds the toolbar item at p. Points over the canvas report
// areaCanvas; status bar items are resolved separately.
func (l layout) hitTest(p image.Point) hit {
	lists := []struct {
		a     area
		rects []image.Rectangle
	}{{areaTool, l.tools}, {areaPalette, l.palette}, {areaWidth, l.widths}, {areaSize, l.sizes}}
	for _, list := range lists {
		for i, r := range list.rects {
			if p.In(r) {
				return hit{list.a, i}
			}
		}
	}
	if p.In(l.status) {
		return hit{areaStatus, -1}
	}
	if p.In(l.canvas) {
		return hit{areaCanvas, -1}
	}
	return noHit
}

// view maps between window pixels and canvas coordinates.
type view struct {
	origin image.Point // window position of the canvas origin
	zoom   float64
}

func (v view) toCanvas(x, y float32) geom.Point {
	return geom.Pt(
		(float64(x)-float64(v.origin.X))/v.zoom,
		(float64(y)-float64(v.origin.Y))/v.zoom,
	)
}

// statusItem is a clickable shortcut hint in the status bar.
type statusItem struct {
	label  string
	action string
	rect   image.Rectangle
}

func statusItems(l layout, editing bool, zoom float64) []statusItem {
	var items []statusItem
	if editing {
		items = []statusItem{
			{label: "Enter:place", action: "commit"},
			{label: "Esc:cancel", action: "cancel"},
			{label: "^V:paste", action: "paste"},
		}
	} else {
		items = []statusItem{
			{label: "^S:save", action: "save"},
			{label: "^E:pdf", action: "export"},
			{label: "^C:copy", action: "copy"},
			{label: "^K:clear", action: "clear"},
			{label: zoomLabel(zoom), action: "zoomreset"},
			{label: "Q:quit", action: "quit"},
		}
	}
	meas := &font.Drawer{Face: basicfont.Face7x13}
	x := l.status.Min.X + gap
	y := l.status.Min.Y + 3
	for i := range items {
		w := meas.MeasureString(items[i].label).Ceil() + 8
		items[i].rect = image.Rect(x, y, x+w, y+statusHeight-6)
		x += w + 6
	}
	return items
}
