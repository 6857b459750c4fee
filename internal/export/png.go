// Package export writes a board to image and document formats.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/example/paintbox/internal/canvas"
	"github.com/example/paintbox/internal/render"
)

// Options controls raster export.
type Options struct {
	// Size fixes the output dimensions with the canvas origin at the
	// top-left. When zero, the image is cropped to the drawn area plus
	// Margin.
	Size       image.Point
	Margin     int
	Background color.Color
	Shadow     render.Shadow
}

// DefaultOptions renders on white with a small margin and no shadow.
func DefaultOptions() Options {
	return Options{Margin: 16, Background: color.White}
}

// Image rasterises b according to opts.
func Image(b *canvas.Board, opts Options) (*image.RGBA, error) {
	area := image.Rectangle{Max: opts.Size}
	if opts.Size == (image.Point{}) {
		area = b.Extent()
		if area.Empty() {
			area = image.Rect(0, 0, 1, 1)
		}
		area = area.Inset(-opts.Margin)
	}
	img := image.NewRGBA(area.Sub(area.Min))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if err := b.Render(img, image.Point{}.Sub(area.Min)); err != nil {
		return nil, fmt.Errorf("render board: %w", err)
	}
	out, _ := render.ApplyShadow(img, opts.Shadow)
	return out, nil
}

// PNG encodes b as a PNG image to w.
func PNG(w io.Writer, b *canvas.Board, opts Options) error {
	img, err := Image(b, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGFile writes b as a PNG image to path.
func PNGFile(path string, b *canvas.Board, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := PNG(f, b, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
