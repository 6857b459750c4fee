package main

import (
	"flag"
	"fmt"

	"github.com/example/paintbox/internal/appstate"
	"github.com/example/paintbox/internal/config"
	"github.com/example/paintbox/internal/render"
	"github.com/example/paintbox/internal/tool"
)

type paintCmd struct {
	*root
	fs       *flag.FlagSet
	output   string
	toolName string
	color    string
	width    int
	textSize float64
	widthPx  int
	heightPx int
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	r = r.subcommand("paint")
	tools := config.Tools{}
	if r.config != nil {
		tools = r.config.Tools
	}
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.StringVar(&p.output, "output", "drawing.png", "file written by save (.png) and export (.pdf)")
	fs.StringVar(&p.toolName, "tool", orDefault(tools.Tool, tool.KindLine.String()), "initial tool (line, rect, ellipse, text)")
	fs.StringVar(&p.color, "color", tools.Color, "initial color name or #RRGGBB")
	fs.IntVar(&p.width, "width", tools.Width, "initial stroke width in pixels")
	fs.Float64Var(&p.textSize, "text-size", tools.TextSize, "initial text size in points")
	fs.IntVar(&p.widthPx, "width-px", 1024, "window width")
	fs.IntVar(&p.heightPx, "height-px", 768, "window height")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if p.widthPx <= 0 || p.heightPx <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", p.widthPx, p.heightPx)
	}
	return p, nil
}

// options turns the flags into window options.
func (p *paintCmd) options() ([]appstate.Option, error) {
	kind, err := tool.ParseKind(p.toolName)
	if err != nil {
		return nil, err
	}
	opts := []appstate.Option{
		appstate.WithTool(kind),
		appstate.WithOutput(p.config.OutputPath(p.output)),
		appstate.WithWindowSize(p.widthPx, p.heightPx),
		appstate.WithNotifier(p.notifier),
	}
	if p.activeTheme != nil {
		opts = append(opts, appstate.WithTheme(p.activeTheme))
	}
	if p.color != "" {
		idx, err := appstate.ColorIndex(p.color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, appstate.WithColorIndex(idx))
	}
	if p.width > 0 {
		opts = append(opts, appstate.WithWidthIndex(appstate.EnsureWidth(p.width)))
	}
	if p.textSize > 0 {
		opts = append(opts, appstate.WithTextSize(p.textSize))
	} else {
		opts = append(opts, appstate.WithTextSize(render.DefaultTextSize))
	}
	return opts, nil
}

func (p *paintCmd) Run() error {
	opts, err := p.options()
	if err != nil {
		return err
	}
	appstate.New(opts...).Run()
	return nil
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func (p *paintCmd) Template() string {
	return "paint.txt"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
