package tool

import (
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

// Toolbox is the active-tool slot. It owns one tool per Kind and forwards
// pointer events to whichever is active. Switching tools or closing the
// toolbox ends the previous tool's gesture.
type Toolbox struct {
	canvas Canvas
	tools  map[Kind]Tool
	active Kind
	style  shape.Style
}

// NewToolbox creates the four tools drawing into c. The line tool starts
// active.
func NewToolbox(c Canvas, st shape.Style) *Toolbox {
	return &Toolbox{
		canvas: c,
		style:  st,
		active: KindLine,
		tools: map[Kind]Tool{
			KindLine:    NewLineTool(st),
			KindRect:    NewRectTool(st),
			KindEllipse: NewEllipseTool(st),
			KindText:    NewTextTool(st),
		},
	}
}

// Active returns the selected tool kind.
func (b *Toolbox) Active() Kind { return b.active }

// Tool returns the tool for k, or nil for an unknown kind.
func (b *Toolbox) Tool(k Kind) Tool { return b.tools[k] }

// Text returns the text tool.
func (b *Toolbox) Text() *TextTool { return b.tools[KindText].(*TextTool) }

// BindText attaches the entry widget used by the text tool.
func (b *Toolbox) BindText(w TextWidget) { b.Text().Bind(w) }

// Style returns the style new shapes are created with.
func (b *Toolbox) Style() shape.Style { return b.style }

// SetStyle changes the style of shapes started from now on.
func (b *Toolbox) SetStyle(st shape.Style) {
	b.style = st
	for _, t := range b.tools {
		if s, ok := t.(Styler); ok {
			s.SetStyle(st)
		}
	}
}

// Select makes k the active tool. The previously active tool is ended even
// when k is already active, which finishes any half-done gesture.
func (b *Toolbox) Select(k Kind) {
	if _, ok := b.tools[k]; !ok {
		return
	}
	b.tools[b.active].End()
	b.active = k
}

func (b *Toolbox) Press(p geom.Point)   { b.tools[b.active].Press(p, b.canvas) }
func (b *Toolbox) Drag(p geom.Point)    { b.tools[b.active].Drag(p, b.canvas) }
func (b *Toolbox) Release(p geom.Point) { b.tools[b.active].Release(p, b.canvas) }

// Close ends the active tool. Call it when the session is over.
func (b *Toolbox) Close() { b.tools[b.active].End() }
