package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shadow describes a blurred drop shadow cast by the opaque pixels of an
// exported drawing.
type Shadow struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadow is the shadow used by `replay -shadow` and the save key when
// shadows are enabled in the config.
func DefaultShadow() Shadow {
	return Shadow{Radius: 12, Offset: image.Pt(8, 8), Opacity: 0.45}
}

// Enabled reports whether the shadow would change the image at all.
func (s Shadow) Enabled() bool { return s.Opacity > 0 }

// ApplyShadow returns a zero-origin copy of img with the shadow composited
// underneath it, along with the position img's top-left corner moved to.
// A disabled shadow returns img unchanged.
func ApplyShadow(img *image.RGBA, s Shadow) (*image.RGBA, image.Point) {
	if img == nil || img.Bounds().Empty() || !s.Enabled() {
		return img, image.Point{}
	}
	opacity := s.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := s.Radius
	if radius < 0 {
		radius = 0
	}

	src := img.Bounds()
	padded := src.Inset(-radius)
	cast := padded.Add(s.Offset)
	all := src.Union(cast)

	mask := alphaMask(img, padded)
	blurred := blurAlpha(mask, radius)

	dst := image.NewRGBA(all.Sub(all.Min))
	if a := uint8(opacity*255 + 0.5); a > 0 {
		shade := image.NewUniform(color.RGBA{A: a})
		draw.DrawMask(dst, blurred.Bounds().Add(cast.Min.Sub(all.Min)), shade, image.Point{}, blurred, image.Point{}, draw.Over)
	}
	draw.Draw(dst, src.Sub(all.Min), img, src.Min, draw.Over)
	return dst, src.Min.Sub(all.Min)
}

// alphaMask copies img's alpha channel into a zero-origin mask the size of
// area.
func alphaMask(img *image.RGBA, area image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(area.Sub(area.Min))
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0 {
				mask.SetAlpha(x-area.Min.X, y-area.Min.Y, color.Alpha{A: a})
			}
		}
	}
	return mask
}

// blurAlpha applies a separable box blur of the given radius.
func blurAlpha(src *image.Alpha, radius int) *image.Alpha {
	out := image.NewAlpha(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewAlpha(src.Bounds())
	for y := 0; y < h; y++ {
		boxPass(src.Pix[y*src.Stride:], tmp.Pix[y*tmp.Stride:], w, 1, radius)
	}
	for x := 0; x < w; x++ {
		boxPass(tmp.Pix[x:], out.Pix[x:], h, tmp.Stride, radius)
	}
	return out
}

// boxPass averages n samples spaced stride apart over a window of
// 2*radius+1, clamping the window at both ends.
func boxPass(in, out []uint8, n, stride, radius int) {
	prefix := make([]int, n+1)
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i] + int(in[i*stride])
	}
	for i := 0; i < n; i++ {
		lo := max(i-radius, 0)
		hi := min(i+radius, n-1)
		out[i*stride] = uint8((prefix[hi+1] - prefix[lo]) / (hi - lo + 1))
	}
}
