package clipboard

import (
	"errors"
	"strings"
)

var (
	errNoText     = errors.New("clipboard does not contain text")
	errEmptyImage = errors.New("nothing to copy")
)

// labelLine reduces pasted text to a single label line: the first line with
// any visible content, tabs turned into spaces, outer space trimmed.
func labelLine(data []byte) (string, error) {
	for line := range strings.Lines(string(data)) {
		line = strings.ReplaceAll(line, "\t", " ")
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", errNoText
}
