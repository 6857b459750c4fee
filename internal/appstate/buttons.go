package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/theme"
	"github.com/example/paintbox/internal/tool"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	r := cb.Button.Rect()
	if cb.cache[state] == nil {
		img := image.NewRGBA(r)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, r, cb.cache[state], r.Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// labelButton is a flat button with a text label, used for tools and
// status bar shortcuts.
type labelButton struct {
	label    string
	rect     image.Rectangle
	theme    *theme.Theme
	border   bool
	onSelect func()
}

func (b *labelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg := b.theme.ButtonBackground
	switch state {
	case StateHover:
		bg = b.theme.ButtonBackgroundHover
	case StatePressed:
		bg = b.theme.ButtonBackgroundPress
	}
	draw.Draw(dst, b.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	if b.border {
		render.DrawRect(dst, b.rect, b.theme.ButtonBorder, 1)
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(b.theme.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+4, b.rect.Min.Y+(b.rect.Dy()+10)/2)}
	d.DrawString(b.label)
}

func (b *labelButton) Rect() image.Rectangle     { return b.rect }
func (b *labelButton) SetRect(r image.Rectangle) { b.rect = r }
func (b *labelButton) Activate() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// ToolButton selects a drawing tool.
type ToolButton struct {
	labelButton
	kind tool.Kind
}

// toolLabel is the toolbar caption for k, prefixed with its hotkey.
func toolLabel(k tool.Kind) string {
	switch k {
	case tool.KindLine:
		return "L:Line"
	case tool.KindRect:
		return "X:Rect"
	case tool.KindEllipse:
		return "O:Ellipse"
	case tool.KindText:
		return "T:Text"
	}
	return k.String()
}

// toolHotkey maps a lower-case rune to the tool it selects.
var toolHotkey = map[rune]tool.Kind{
	'l': tool.KindLine,
	'x': tool.KindRect,
	'o': tool.KindEllipse,
	't': tool.KindText,
}

func newToolButtons(th *theme.Theme, onSelect func(tool.Kind)) []*CacheButton {
	var out []*CacheButton
	for _, k := range tool.Kinds() {
		k := k
		tb := &ToolButton{kind: k, labelButton: labelButton{label: toolLabel(k), theme: th}}
		tb.onSelect = func() { onSelect(k) }
		out = append(out, &CacheButton{Button: tb})
	}
	return out
}

// swatch draws a palette entry, outlined when selected.
func swatch(dst *image.RGBA, r image.Rectangle, c color.RGBA, selected, hover bool) {
	draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, draw.Src)
	if hover {
		draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
	}
	if selected {
		render.DrawRect(dst, r, color.White, 1)
		render.DrawRect(dst, r.Inset(1), color.Black, 1)
	}
}
