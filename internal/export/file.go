package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/paintbox/internal/canvas"
)

// Format is an output file type.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// FormatFor picks the format from path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported output extension %q (want .png or .pdf)", filepath.Ext(path))
}

// File writes b to path in the format implied by its extension. opts only
// affects raster output.
func File(path string, b *canvas.Board, opts Options) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if f == FormatPDF {
		return PDFFile(path, b)
	}
	return PNGFile(path, b, opts)
}
