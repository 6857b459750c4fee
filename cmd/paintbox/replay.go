package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/example/paintbox/internal/appstate"
	"github.com/example/paintbox/internal/geom"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/tool"
)

type replayCmd struct {
	*root
	fs     *flag.FlagSet
	output string
	shadow bool
	script string
	stdin  io.Reader
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	r = r.subcommand("replay")
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.StringVar(&c.output, "output", "replay.png", "output file (.png or .pdf)")
	fs.BoolVar(&c.shadow, "shadow", false, "add a drop shadow to PNG output")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c, msg: "replay needs exactly one script file, or - for stdin"}
	}
	c.script = fs.Arg(0)
	return c, nil
}

func (c *replayCmd) Run() error {
	in := c.stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	s := appstate.NewSession(nil)
	s.Notifier = c.notifier
	if c.shadow {
		s.Export.Shadow = render.DefaultShadow()
	}
	if err := runScript(s, in); err != nil {
		return fmt.Errorf("%s: %w", c.script, err)
	}
	s.Close()

	out := c.output
	if c.config != nil {
		out = c.config.OutputPath(out)
	}
	if err := s.Save(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d shapes to %s\n", s.Board().Len(), out)
	return nil
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *replayCmd) Template() string {
	return "replay.txt"
}

// runScript feeds each script line to s. Blank lines and lines starting with
// # are skipped.
func runScript(s *appstate.Session, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := runLine(s, strings.TrimLeft(line, " \t")); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func runLine(s *appstate.Session, line string) error {
	name, rest, _ := strings.Cut(line, " ")
	args := strings.Fields(rest)
	switch name {
	case "tool":
		if err := wantArgs(name, args, 1); err != nil {
			return err
		}
		k, err := tool.ParseKind(args[0])
		if err != nil {
			return err
		}
		s.SelectTool(k)
	case "color":
		if err := wantArgs(name, args, 1); err != nil {
			return err
		}
		idx, err := appstate.ColorIndex(args[0])
		if err != nil {
			return err
		}
		s.SetColorIndex(idx)
	case "width":
		if err := wantArgs(name, args, 1); err != nil {
			return err
		}
		w, err := strconv.Atoi(args[0])
		if err != nil || w < 1 {
			return fmt.Errorf("invalid width %q", args[0])
		}
		s.SetWidthIndex(appstate.EnsureWidth(w))
	case "text-size":
		if err := wantArgs(name, args, 1); err != nil {
			return err
		}
		size, err := strconv.ParseFloat(args[0], 64)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid text size %q", args[0])
		}
		s.SetTextSize(size)
	case "press", "drag", "release":
		p, err := parsePoint(name, args)
		if err != nil {
			return err
		}
		switch name {
		case "press":
			s.Press(p)
		case "drag":
			s.Drag(p)
		default:
			s.Release(p)
		}
	case "type":
		if !s.Editing() {
			return fmt.Errorf("type: no text field is open")
		}
		s.Type(rest)
	case "backspace":
		if !s.Editing() {
			return fmt.Errorf("backspace: no text field is open")
		}
		s.Backspace()
	case "commit":
		s.Commit()
	case "cancel":
		s.Cancel()
	case "end":
		s.End()
	case "clear":
		s.Clear()
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

func wantArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func parsePoint(name string, args []string) (geom.Point, error) {
	if err := wantArgs(name, args, 2); err != nil {
		return geom.Point{}, err
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%s: invalid x %q", name, args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%s: invalid y %q", name, args[1])
	}
	return geom.Pt(x, y), nil
}
