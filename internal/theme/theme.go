// Package theme describes the colours used to draw the paint window.
package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the color palette for the window chrome and canvas.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area outside the canvas
	Foreground color.RGBA // Status and message text

	// Toolbar and status bar
	ToolbarBackground color.RGBA
	StatusBackground  color.RGBA

	// Tool buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Canvas
	Paper color.RGBA

	// Text entry field
	FieldBackground color.RGBA
	FieldBorder     color.RGBA
	Caret           color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "light",
		Background:            color.RGBA{200, 200, 200, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		StatusBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		Paper:                 color.RGBA{255, 255, 255, 255},
		FieldBackground:       color.RGBA{255, 255, 224, 230},
		FieldBorder:           color.RGBA{90, 90, 90, 255},
		Caret:                 color.RGBA{0, 0, 0, 255},
	}
}

// Clone returns a copy of t that can be modified independently.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}
