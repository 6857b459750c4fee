package appstate

import (
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/example/paintbox/internal/canvas"
	"github.com/example/paintbox/internal/clipboard"
	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/notify"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/shape"
	"github.com/example/paintbox/internal/textentry"
	"github.com/example/paintbox/internal/tool"
)

// Session couples a board with the toolbox and text field that edit it.
// The window and the replay command both drive one. Methods are safe to
// call from the event loop while a paint goroutine calls Render.
type Session struct {
	mu       sync.Mutex
	board    *canvas.Board
	tools    *tool.Toolbox
	field    *textentry.Field
	colorIdx int
	widthIdx int

	// Export configures Save and Copy output.
	Export   export.Options
	Notifier *notify.Notifier
}

// NewSession returns a session editing b with the default style.
func NewSession(b *canvas.Board) *Session {
	if b == nil {
		b = canvas.New()
	}
	s := &Session{
		board:    b,
		colorIdx: clampColorIndex(defaultColorIndex),
		widthIdx: clampWidthIndex(defaultWidthIndex),
		field:    textentry.New(shape.Font{Size: render.DefaultTextSize}),
		Export:   export.DefaultOptions(),
	}
	s.tools = tool.NewToolbox(b, s.style())
	s.tools.BindText(s.field)
	return s
}

// Board returns the board being edited.
func (s *Session) Board() *canvas.Board { return s.board }

func (s *Session) style() shape.Style {
	return shape.Style{Color: paletteColorAt(s.colorIdx), Width: widthAt(s.widthIdx)}
}

// Tool reports the active tool.
func (s *Session) Tool() tool.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.Active()
}

// SelectTool switches tools, finishing the previous tool's gesture.
func (s *Session) SelectTool(k tool.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Select(k)
}

// ColorIndex returns the selected palette index.
func (s *Session) ColorIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorIdx
}

// WidthIndex returns the selected stroke width index.
func (s *Session) WidthIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widthIdx
}

// SetColorIndex selects a palette colour for shapes started from now on.
func (s *Session) SetColorIndex(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorIdx = clampColorIndex(idx)
	s.tools.SetStyle(s.style())
}

// SetWidthIndex selects a stroke width for shapes started from now on.
func (s *Session) SetWidthIndex(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.widthIdx = clampWidthIndex(idx)
	s.tools.SetStyle(s.style())
}

// Style returns the style new shapes get.
func (s *Session) Style() shape.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.Style()
}

// TextSize returns the point size of the text field.
func (s *Session) TextSize() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Font().Size
}

// SetTextSize changes the size of the text field, including any label
// currently being typed.
func (s *Session) SetTextSize(size float64) {
	if size <= 0 {
		size = render.DefaultTextSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field.SetFont(shape.Font{Size: size})
}

func (s *Session) Press(p geom.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Press(p)
}

func (s *Session) Drag(p geom.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Drag(p)
}

func (s *Session) Release(p geom.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Release(p)
}

// End finishes the active tool's gesture.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Tool(s.tools.Active()).End()
}

// Editing reports whether the text field is open for input.
func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Visible() && s.tools.Text().Pending()
}

// Type inserts text into the open field. It reports whether anything was
// inserted.
func (s *Session) Type(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.field.Visible() {
		return false
	}
	changed := false
	for _, r := range text {
		if s.field.Insert(r) {
			changed = true
		}
	}
	return changed
}

// Backspace deletes the last rune of the open field.
func (s *Session) Backspace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Visible() && s.field.Backspace()
}

// Commit places the open field's text as a label.
func (s *Session) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Text().Commit()
}

// Cancel discards the open field.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Text().Cancel()
}

// Field describes the text field for drawing.
type Field struct {
	Visible bool
	Pos     geom.Point
	Text    string
	Size    float64
}

// Field returns a snapshot of the text field.
func (s *Session) Field() Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Field{Visible: s.field.Visible(), Pos: s.field.Position(), Text: s.field.Text(), Size: s.field.Font().Size}
}

// Clear removes every shape. A gesture in progress is ended and an open text
// field is discarded first so nothing lands on the cleared board.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Text().Cancel()
	s.tools.Tool(s.tools.Active()).End()
	s.board.Clear()
}

// Render draws the board onto dst.
func (s *Session) Render(dst *image.RGBA, offset image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Render(dst, offset)
}

// Close finishes the active gesture and commits any open text.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.Close()
}

// Save writes the board to path as PNG or PDF depending on the extension and
// sends the matching notification.
func (s *Session) Save(path string) error {
	if path == "" {
		return fmt.Errorf("no output file")
	}
	f, err := export.FormatFor(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	opts := s.Export
	err = export.File(path, s.board, opts)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if f == export.FormatPDF {
		s.Notifier.Export(path)
	} else {
		s.Notifier.Save(path)
	}
	return nil
}

// Copy places a PNG rendering of the board on the clipboard.
func (s *Session) Copy() error {
	s.mu.Lock()
	img, err := export.Image(s.board, s.Export)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := clipboard.WriteImage(img); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	s.Notifier.Copy(fmt.Sprintf("%dx%d drawing", img.Bounds().Dx(), img.Bounds().Dy()))
	return nil
}

// Paste types clipboard text into the open field.
func (s *Session) Paste() bool {
	if !s.Editing() {
		return false
	}
	text, err := clipboard.ReadLabel()
	if err != nil {
		log.Printf("paste: %v", err)
		return false
	}
	return s.Type(text)
}
