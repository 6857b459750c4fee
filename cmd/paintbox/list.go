package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/paintbox/internal/appstate"
	"github.com/example/paintbox/internal/render"
)

type colorsCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	r = r.subcommand("colors")
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	palette := appstate.PaletteColors()
	if len(palette) == 0 {
		fmt.Fprintln(c.out, "no colors available")
		return nil
	}
	fmt.Fprintln(c.out, "available palette colors (* marks the default color):")
	defaultIdx := appstate.DefaultColorIndex()
	for idx, entry := range palette {
		marker := " "
		if idx == defaultIdx {
			marker = "*"
		}
		name := entry.Name
		hex := fmt.Sprintf("#%02X%02X%02X", entry.Color.R, entry.Color.G, entry.Color.B)
		if name == "" {
			name = hex
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(c.out, "%s %2d: %-12s %s %s\n", marker, idx, name, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

type widthsCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	r = r.subcommand("widths")
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	widths := appstate.WidthOptions()
	if len(widths) == 0 {
		fmt.Fprintln(c.out, "no widths available")
		return nil
	}
	fmt.Fprintln(c.out, "available stroke widths (* marks the default width):")
	defaultIdx := appstate.DefaultWidthIndex()
	for idx, w := range widths {
		marker := " "
		if idx == defaultIdx {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %2d: %dpx\n", marker, idx, w)
	}
	fmt.Fprint(c.out, "text sizes:")
	for _, size := range render.TextSizes {
		fmt.Fprintf(c.out, " %g", size)
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *widthsCmd) Template() string {
	return "widths.txt"
}
