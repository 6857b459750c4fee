package appstate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/exp/shiny/screen"

	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/theme"
	"github.com/example/paintbox/internal/tool"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// minFieldWidth keeps an empty text field visible and clickable.
const minFieldWidth = 40

// paintState is everything a frame needs, copied out of the event loop.
type paintState struct {
	width, height int
	session       *Session
	theme         *theme.Theme
	tools         []*CacheButton
	active        tool.Kind
	colorIdx      int
	widthIdx      int
	textSize      float64
	field         Field
	zoom          float64
	hover         hit
	hoverStatus   int
	message       string
	messageUntil  time.Time
}

func zoomLabel(z float64) string { return fmt.Sprintf("+/-:zoom %.0f%%", z*100) }

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	l := computeLayout(st.width, st.height, st.active)

	draw.Draw(dst, dst.Bounds(), &image.Uniform{st.theme.Background}, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	paper := drawPaper(st, l.canvas)
	if paper == nil || ctx.Err() != nil {
		return
	}
	if st.zoom == 1 {
		draw.Draw(dst, l.canvas, paper, image.Point{}, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(dst, l.canvas, paper, paper.Bounds(), draw.Src, nil)
	}
	if ctx.Err() != nil {
		return
	}

	drawToolbar(dst, st, l)
	drawStatus(dst, st, l)
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		drawMessage(dst, st)
	}
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// drawPaper renders the board and the open text field in canvas
// coordinates, sized so that scaling by zoom fills r.
func drawPaper(st paintState, r image.Rectangle) *image.RGBA {
	pw := int(float64(r.Dx())/st.zoom + 0.5)
	ph := int(float64(r.Dy())/st.zoom + 0.5)
	if pw <= 0 || ph <= 0 {
		return nil
	}
	paper := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(paper, paper.Bounds(), &image.Uniform{st.theme.Paper}, image.Point{}, draw.Src)
	if err := st.session.Render(paper, image.Point{}); err != nil {
		log.Printf("render: %v", err)
	}
	if st.field.Visible {
		drawField(paper, st)
	}
	return paper
}

// drawField draws the entry box with its text at the size the committed
// label will use, so the label lands exactly where it was typed.
func drawField(dst *image.RGBA, st paintState) {
	f := st.field
	tw, th, _, err := render.MeasureText(f.Text, f.Size)
	if err != nil {
		log.Printf("measure text: %v", err)
		return
	}
	p := f.Pos.Image()
	box := image.Rect(p.X-2, p.Y-2, p.X+max(tw, minFieldWidth)+4, p.Y+th+2)
	draw.Draw(dst, box, &image.Uniform{st.theme.FieldBackground}, image.Point{}, draw.Over)
	render.DrawRect(dst, box, st.theme.FieldBorder, 1)
	if err := render.DrawText(dst, p.X, p.Y, f.Text, paletteColorAt(st.colorIdx), f.Size); err != nil {
		log.Printf("draw text: %v", err)
	}
	render.DrawLine(dst, p.X+tw+1, p.Y, p.X+tw+1, p.Y+th-1, st.theme.Caret, 1)
}

func drawToolbar(dst *image.RGBA, st paintState, l layout) {
	bar := image.Rect(0, 0, toolbarWidth, l.status.Min.Y)
	draw.Draw(dst, bar, &image.Uniform{st.theme.ToolbarBackground}, image.Point{}, draw.Src)

	for i, cb := range st.tools {
		if i >= len(l.tools) {
			break
		}
		cb.SetRect(l.tools[i])
		state := StateDefault
		if tb, ok := cb.Button.(*ToolButton); ok && tb.kind == st.active {
			state = StatePressed
		} else if st.hover == (hit{areaTool, i}) {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	for i, r := range l.palette {
		swatch(dst, r, paletteColorAt(i), i == st.colorIdx, st.hover == (hit{areaPalette, i}))
	}

	col := paletteColorAt(st.colorIdx)
	for i, r := range l.widths {
		drawOptionRow(dst, r, st.theme, i == st.widthIdx, st.hover == (hit{areaWidth, i}))
		w := widthAt(i)
		label(dst, r.Min.X+4, r.Min.Y+12, fmt.Sprintf("%d", w), st.theme.ButtonText)
		render.DrawLine(dst, r.Min.X+30, r.Min.Y+r.Dy()/2, r.Max.X-6, r.Min.Y+r.Dy()/2, col, w)
	}
	for i, r := range l.sizes {
		size := render.TextSizes[i]
		drawOptionRow(dst, r, st.theme, size == st.textSize, st.hover == (hit{areaSize, i}))
		_, h, _, err := render.MeasureText("Ab3", size)
		if err != nil {
			continue
		}
		clip := dst.SubImage(r).(*image.RGBA)
		if err := render.DrawText(clip, r.Min.X+4, r.Min.Y+(r.Dy()-h)/2, "Ab3", col, size); err != nil {
			log.Printf("draw text size: %v", err)
		}
	}
}

func drawOptionRow(dst *image.RGBA, r image.Rectangle, th *theme.Theme, selected, hover bool) {
	c := th.ButtonBackground
	if selected {
		c = th.ButtonBackgroundPress
	} else if hover {
		c = th.ButtonBackgroundHover
	}
	draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

func drawStatus(dst *image.RGBA, st paintState, l layout) {
	draw.Draw(dst, l.status, &image.Uniform{st.theme.StatusBackground}, image.Point{}, draw.Src)
	for i, it := range statusItems(l, st.field.Visible, st.zoom) {
		b := &labelButton{label: it.label, rect: it.rect, theme: st.theme, border: true}
		state := StateDefault
		if i == st.hoverStatus {
			state = StateHover
		}
		b.Draw(dst, state)
	}
	info := fmt.Sprintf("%s  %d shapes", st.active, st.session.Board().Len())
	meas := &font.Drawer{Face: basicfont.Face7x13}
	x := l.status.Max.X - meas.MeasureString(info).Ceil() - gap
	label(dst, x, l.status.Min.Y+16, info, st.theme.Foreground)
}

func drawMessage(dst *image.RGBA, st paintState) {
	face, err := render.Face(24)
	if err != nil {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(st.theme.Foreground), Face: face}
	wmsg := d.MeasureString(st.message).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := (st.width - wmsg) / 2
	py := (st.height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	bg := st.theme.ToolbarBackground
	bg.A = 230
	draw.Draw(dst, rect, &image.Uniform{bg}, image.Point{}, draw.Over)
	render.DrawRect(dst, rect, st.theme.ButtonBorder, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(st.message)
}

func label(dst *image.RGBA, x, y int, s string, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}
