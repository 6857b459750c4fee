// Package config loads and writes the paintbox RC file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/example/paintbox/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Copy   bool
	Export bool
}

// Tools holds the drawing settings the window starts with. Zero values mean
// "use the built-in default".
type Tools struct {
	Tool     string
	Color    string
	Width    int
	TextSize float64
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Notify  Notify
	Tools   Tools
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // Empty falls back to env then the built-in theme
		Themes: make(map[string]*theme.Theme),
	}
}

// OutputPath joins name onto SaveDir, expanding a leading ~. Absolute names
// and an empty SaveDir leave name untouched.
func (c *Config) OutputPath(name string) string {
	if c == nil || c.SaveDir == "" || filepath.IsAbs(name) {
		return name
	}
	dir := c.SaveDir
	if rest, ok := strings.CutPrefix(dir, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, rest)
		}
	}
	return filepath.Join(dir, name)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	sb.WriteString("\n")

	if c.Tools != (Tools{}) {
		sb.WriteString("[tools]\n")
		if c.Tools.Tool != "" {
			fmt.Fprintf(&sb, "tool = %s\n", c.Tools.Tool)
		}
		if c.Tools.Color != "" {
			fmt.Fprintf(&sb, "color = %s\n", c.Tools.Color)
		}
		if c.Tools.Width > 0 {
			fmt.Fprintf(&sb, "width = %d\n", c.Tools.Width)
		}
		if c.Tools.TextSize > 0 {
			fmt.Fprintf(&sb, "text_size = %s\n", strconv.FormatFloat(c.Tools.TextSize, 'g', -1, 64))
		}
		sb.WriteString("\n")
	}

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, kv := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", kv[0], kv[1])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
