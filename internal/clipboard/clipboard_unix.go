//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

// Package clipboard copies drawings to, and pastes text from, the system
// clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// WriteImage publishes a rendered drawing as PNG. An empty image is
// rejected rather than clearing the clipboard.
func WriteImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return errEmptyImage
	}
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}

// ReadLabel returns the first non-blank line of clipboard text, ready to
// type into a label.
func ReadLabel() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	return labelLine(clipboard.Read(clipboard.FmtText))
}
