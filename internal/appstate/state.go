// Package appstate runs the paint window: a toolbar of drawing tools next
// to a canvas, driven by shiny.
package appstate

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/paintbox/internal/canvas"
	"github.com/example/paintbox/internal/notify"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/theme"
	"github.com/example/paintbox/internal/tool"
)

const (
	minZoom     = 0.25
	maxZoom     = 8
	messageTime = 2 * time.Second
)

// AppState holds the configuration of the paint window.
type AppState struct {
	Session *Session
	Output  string
	Theme   *theme.Theme
	Size    image.Point

	board    *canvas.Board
	colorIdx int
	widthIdx int
	textSize float64
	tool     tool.Kind
	notifier *notify.Notifier

	updateCh  chan struct{}
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithBoard sets the board the window edits.
func WithBoard(b *canvas.Board) Option { return func(a *AppState) { a.board = b } }

// WithOutput sets the file written by the save shortcut.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithColorIndex sets the initial palette index.
func WithColorIndex(idx int) Option { return func(a *AppState) { a.colorIdx = idx } }

// WithWidthIndex sets the initial stroke width index.
func WithWidthIndex(idx int) Option { return func(a *AppState) { a.widthIdx = idx } }

// WithTextSize sets the initial text size in points.
func WithTextSize(size float64) Option { return func(a *AppState) { a.textSize = size } }

// WithTool sets the initially active tool.
func WithTool(k tool.Kind) Option { return func(a *AppState) { a.tool = k } }

// WithTheme sets the window colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithNotifier sets the notifier used after saves, exports and copies.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithWindowSize sets the initial window size in pixels.
func WithWindowSize(w, h int) Option { return func(a *AppState) { a.Size = image.Pt(w, h) } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Output:   "drawing.png",
		Size:     image.Pt(1024, 768),
		colorIdx: defaultColorIndex,
		widthIdx: defaultWidthIndex,
		textSize: render.DefaultTextSize,
		tool:     tool.KindLine,
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	a.Session = NewSession(a.board)
	a.Session.Notifier = a.notifier
	a.Session.SetColorIndex(a.colorIdx)
	a.Session.SetWidthIndex(a.widthIdx)
	a.Session.SetTextSize(a.textSize)
	a.Session.SelectTool(a.tool)
	a.Session.Board().OnChange(a.NotifyChanged)
	return a
}

// NotifyChanged requests a repaint. It never blocks.
func (a *AppState) NotifyChanged() {
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		a.Session.Close()
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// pdfPath is the export target derived from the save target.
func pdfPath(out string) string {
	if strings.EqualFold(filepath.Ext(out), ".pdf") {
		return out
	}
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".pdf"
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the window on s until it is closed.
func (a *AppState) Main(s screen.Screen) {
	sess := a.Session
	width, height := a.Size.X, a.Size.Y
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Paintbox"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	var (
		zoom         = 1.0
		pressed      bool
		hover        = noHit
		hoverStatus  = -1
		message      string
		messageUntil time.Time
		paintMu      sync.Mutex
		paintCancel  context.CancelFunc
		dropCount    int
	)
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)

	stopPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	status := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
		log.Print(message)
		messageUntil = time.Now().Add(messageTime)
	}

	toolButtons := newToolButtons(a.Theme, func(k tool.Kind) {
		sess.SelectTool(k)
		pressed = false
	})

	quit := false
	actions := map[string]func(){}
	keyboardAction := map[KeyShortcut]string{}
	register := func(name string, fn func(), keys ...KeyShortcut) {
		actions[name] = fn
		for _, k := range keys {
			keyboardAction[k] = name
		}
	}
	register("save", func() {
		if err := sess.Save(a.Output); err != nil {
			log.Printf("save: %v", err)
			status("save failed")
			return
		}
		status("saved %s", a.Output)
	}, KeyShortcut{Rune: 's', Modifiers: key.ModControl})
	register("export", func() {
		out := pdfPath(a.Output)
		if err := sess.Save(out); err != nil {
			log.Printf("export: %v", err)
			status("export failed")
			return
		}
		status("exported %s", out)
	}, KeyShortcut{Rune: 'e', Modifiers: key.ModControl})
	register("copy", func() {
		if err := sess.Copy(); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		status("drawing copied to clipboard")
	}, KeyShortcut{Rune: 'c', Modifiers: key.ModControl})
	register("clear", func() {
		sess.Clear()
		pressed = false
	}, KeyShortcut{Rune: 'k', Modifiers: key.ModControl})
	register("zoomin", func() { zoom = min(zoom*1.25, maxZoom) }, KeyShortcut{Rune: '+'}, KeyShortcut{Rune: '='})
	register("zoomout", func() { zoom = max(zoom/1.25, minZoom) }, KeyShortcut{Rune: '-'})
	register("zoomreset", func() { zoom = 1 }, KeyShortcut{Rune: '0'})
	register("quit", func() { quit = true }, KeyShortcut{Rune: 'q'})
	register("commit", sess.Commit)
	register("cancel", sess.Cancel)
	register("paste", func() { sess.Paste() })

	trigger := func(name string) {
		if fn, ok := actions[name]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	for !quit {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				quit = true
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			st := paintState{
				width:        width,
				height:       height,
				session:      sess,
				theme:        a.Theme,
				tools:        toolButtons,
				active:       sess.Tool(),
				colorIdx:     sess.ColorIndex(),
				widthIdx:     sess.WidthIndex(),
				textSize:     sess.TextSize(),
				field:        sess.Field(),
				zoom:         zoom,
				hover:        hover,
				hoverStatus:  hoverStatus,
				message:      message,
				messageUntil: messageUntil,
			}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			l := computeLayout(width, height, sess.Tool())
			pt := image.Pt(int(e.X), int(e.Y))
			h := l.hitTest(pt)
			v := view{origin: l.canvas.Min, zoom: zoom}

			if pressed {
				p := v.toCanvas(e.X, e.Y)
				switch e.Direction {
				case mouse.DirNone:
					sess.Drag(p)
				case mouse.DirRelease:
					sess.Release(p)
					pressed = false
				}
				w.Send(paint.Event{})
				continue
			}

			if e.Direction == mouse.DirNone {
				prevHover, prevStatus := hover, hoverStatus
				hover, hoverStatus = h, -1
				if h.area == areaStatus {
					for i, it := range statusItems(l, sess.Editing(), zoom) {
						if pt.In(it.rect) {
							hoverStatus = i
						}
					}
				}
				if hover != prevHover || hoverStatus != prevStatus {
					w.Send(paint.Event{})
				}
				continue
			}
			if e.Button != mouse.ButtonLeft {
				continue
			}
			if e.Direction == mouse.DirPress && !time.Now().After(messageUntil) {
				messageUntil = time.Time{}
			}

			switch h.area {
			case areaCanvas:
				p := v.toCanvas(e.X, e.Y)
				switch e.Direction {
				case mouse.DirPress:
					sess.Press(p)
					pressed = true
				case mouse.DirRelease:
					// Release without a press on the canvas, e.g. after
					// dragging in from the toolbar.
					sess.Release(p)
				}
			case areaTool:
				if e.Direction == mouse.DirPress {
					toolButtons[h.idx].Activate()
				}
			case areaPalette:
				if e.Direction == mouse.DirPress {
					sess.SetColorIndex(h.idx)
				}
			case areaWidth:
				if e.Direction == mouse.DirPress {
					sess.SetWidthIndex(h.idx)
				}
			case areaSize:
				if e.Direction == mouse.DirPress {
					sess.SetTextSize(render.TextSizes[h.idx])
				}
			case areaStatus:
				if e.Direction == mouse.DirPress {
					for _, it := range statusItems(l, sess.Editing(), zoom) {
						if pt.In(it.rect) {
							trigger(it.action)
							break
						}
					}
				}
			}
			w.Send(paint.Event{})
		case key.Event:
			if e.Direction != key.DirPress && e.Direction != key.DirNone {
				continue
			}
			if sess.Editing() {
				switch {
				case e.Code == key.CodeReturnEnter || e.Code == key.CodeKeypadEnter:
					trigger("commit")
				case e.Code == key.CodeEscape:
					trigger("cancel")
				case e.Code == key.CodeDeleteBackspace:
					if sess.Backspace() {
						w.Send(paint.Event{})
					}
				case e.Modifiers&key.ModControl != 0 && unicode.ToLower(e.Rune) == 'v':
					trigger("paste")
				case e.Modifiers&(key.ModControl|key.ModMeta) == 0 && e.Rune > 0:
					if sess.Type(string(e.Rune)) {
						w.Send(paint.Event{})
					}
				}
				continue
			}
			if e.Direction != key.DirPress {
				continue
			}
			mods := e.Modifiers &^ key.ModShift
			ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}
			if name, ok := keyboardAction[ks]; ok {
				trigger(name)
				continue
			}
			if k, ok := toolHotkey[unicode.ToLower(e.Rune)]; ok && mods == 0 {
				sess.SelectTool(k)
				pressed = false
				w.Send(paint.Event{})
			}
		}
	}
	stopPaint()
}
