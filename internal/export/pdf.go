package export

import (
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/paintbox/internal/canvas"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/shape"
)

const (
	pdfMargin = 16
	// pdfFont is the window's label face embedded as a UTF-8 font, so any
	// rune the text field accepts survives export.
	pdfFont = "goregular"
)

// newDocument starts a single page sized to the drawn area, using points
// so one canvas pixel maps to one point.
func newDocument(b *canvas.Board) (*gofpdf.Fpdf, image.Point) {
	area := b.Extent()
	if area.Empty() {
		area = image.Rect(0, 0, 1, 1)
	}
	area = area.Inset(-pdfMargin)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(area.Dx()), Ht: float64(area.Dy())},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddUTF8FontFromBytes(pdfFont, "", goregular.TTF)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	return p, area.Min
}

func drawPDFShape(p *gofpdf.Fpdf, s shape.Shape, origin image.Point) {
	ox, oy := float64(origin.X), float64(origin.Y)
	st := s.Stroke()
	p.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
	p.SetLineWidth(float64(max(st.Width, 1)))
	switch v := s.(type) {
	case *shape.Line:
		p.Line(v.Start.X-ox, v.Start.Y-oy, v.End.X-ox, v.End.Y-oy)
	case *shape.Rectangle:
		p.Rect(v.X-ox, v.Y-oy, v.W, v.H, "D")
	case *shape.Ellipse:
		p.Ellipse(v.Center.X-ox, v.Center.Y-oy, v.RX, v.RY, 0, "D")
	case *shape.Text:
		size := v.Font.Size
		if size <= 0 {
			size = render.DefaultTextSize
		}
		_, _, baseline, err := render.MeasureText(v.Content, size)
		if err != nil {
			baseline = int(size)
		}
		p.SetTextColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetFont(pdfFont, "", size)
		p.Text(v.Position.X-ox, v.Position.Y-oy+float64(baseline), v.Content)
	}
}

// PDF writes b as a single-page vector document to w.
func PDF(w io.Writer, b *canvas.Board) error {
	p, origin := newDocument(b)
	for _, e := range b.Shapes() {
		drawPDFShape(p, e.Shape, origin)
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// PDFFile writes b as a PDF document to path.
func PDFFile(path string, b *canvas.Board) error {
	p, origin := newDocument(b)
	for _, e := range b.Shapes() {
		drawPDFShape(p, e.Shape, origin)
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
