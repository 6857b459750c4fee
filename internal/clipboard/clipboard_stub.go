//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

// Package clipboard copies drawings to, and pastes text from, the system
// clipboard.
package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard is not supported on this platform")

// WriteImage is unsupported on this platform.
func WriteImage(image.Image) error { return errUnsupported }

// ReadLabel is unsupported on this platform.
func ReadLabel() (string, error) { return "", errUnsupported }
