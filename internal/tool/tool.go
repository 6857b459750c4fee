// Package tool implements the drawing tools. A tool turns one pointer
// gesture (press, drags, release) into a shape on a Canvas. Tools hold only
// the state of the gesture in progress and return to idle when it finishes
// or when End is called.
//
// Tools are not safe for concurrent use; the event loop that owns the
// Toolbox delivers every callback.
package tool

import (
	"fmt"
	"strings"

	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/shape"
)

// Canvas receives finished shapes. A tool calls AddShape once per gesture
// and afterwards only mutates the shape it added.
type Canvas interface {
	AddShape(s shape.Shape)
}

// Tool is the gesture contract shared by every drawing tool.
type Tool interface {
	// Press starts a new gesture at p, superseding any stale state.
	Press(p geom.Point, c Canvas)
	// Drag updates the shape in progress. Without a prior Press it does nothing.
	Drag(p geom.Point, c Canvas)
	// Release applies a final Drag at p and finishes the gesture.
	Release(p geom.Point, c Canvas)
	// End abandons any gesture in progress. It is idempotent.
	End()
}

// Styler is implemented by tools that stamp a style onto new shapes.
type Styler interface {
	SetStyle(st shape.Style)
}

// Kind selects a tool.
type Kind int

const (
	KindLine Kind = iota
	KindRect
	KindEllipse
	KindText
)

var kindNames = []string{"line", "rect", "ellipse", "text"}

// Kinds lists every tool kind in toolbar order.
func Kinds() []Kind { return []Kind{KindLine, KindRect, KindEllipse, KindText} }

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a tool name to its Kind. Matching is case-insensitive and
// accepts "rectangle" and "circle" as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return KindLine, nil
	case "rect", "rectangle":
		return KindRect, nil
	case "ellipse", "circle", "oval":
		return KindEllipse, nil
	case "text":
		return KindText, nil
	}
	return 0, fmt.Errorf("unknown tool %q (want one of %s)", s, strings.Join(kindNames, ", "))
}
