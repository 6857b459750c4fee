//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

// Package clipboard copies drawings to, and pastes text from, the system
// clipboard.
package clipboard

import (
	"errors"
	"image"
	"os"
	"sync"
)

var (
	initOnce       sync.Once
	initErr        error
	errNoDisplay   = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	errCGODisabled = errors.New("clipboard operations require cgo support")
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		initErr = errCGODisabled
	})
	return initErr
}

// WriteImage always fails without cgo.
func WriteImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return errEmptyImage
	}
	return ensureInit()
}

// ReadLabel always fails without cgo.
func ReadLabel() (string, error) { return "", ensureInit() }
