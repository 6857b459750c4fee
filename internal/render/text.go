package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextSizes are the point sizes offered by the text tool.
var TextSizes = []float64{12, 16, 20, 24, 32}

// DefaultTextSize is the size new text fields start with.
const DefaultTextSize = 16

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	fontErr     error
	faces       sync.Map // map[float64]font.Face
)

func loadFont() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		log.Printf("parse font: %v", fontErr)
	}
}

// Face returns a goregular face at size points, caching faces per size.
func Face(size float64) (font.Face, error) {
	if size <= 0 || math.IsNaN(size) {
		size = DefaultTextSize
	}
	if face, ok := faces.Load(size); ok {
		return face.(font.Face), nil
	}
	fontOnce.Do(loadFont)
	if fontErr != nil {
		return nil, fmt.Errorf("text font not initialised: %w", fontErr)
	}
	face, err := opentype.NewFace(regularFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	actual, _ := faces.LoadOrStore(size, face)
	return actual.(font.Face), nil
}

// MeasureText returns the dimensions of text rendered at the provided size.
// baseline is the offset from the top of the box to the text baseline.
func MeasureText(text string, size float64) (width, height, baseline int, err error) {
	face, err := Face(size)
	if err != nil {
		return 0, 0, 0, err
	}
	drawer := &font.Drawer{Face: face}
	width = drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	baseline = metrics.Ascent.Ceil()
	height = baseline + metrics.Descent.Ceil()
	return
}

// DrawText renders text with the top-left corner of its line box at (x, y).
func DrawText(img *image.RGBA, x, y int, text string, col color.Color, size float64) error {
	face, err := Face(size)
	if err != nil {
		return err
	}
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
	return nil
}
