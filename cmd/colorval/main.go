// Package main provides the colorval command, which parses color
// specifications and prints them in normalized or integer form.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/opd-ai/go-colorval/internal/config"
	"github.com/opd-ai/go-colorval/internal/logging"
	"github.com/opd-ai/go-colorval/internal/lua"
	"github.com/opd-ai/go-colorval/internal/palette"
	"github.com/opd-ai/go-colorval/pkg/colorval"
)

// Version is the current version of colorval.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath  string
	palettePath string
	luaScript   string
	format      string
	alpha       *float64
	listNames   bool
	watch       bool
	version     bool
	colors      []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("colorval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: colorval [flags] COLOR...")
		fmt.Fprintln(stderr, "COLOR is #RRGGBB, #RRGGBBAA, a color name, or r,g,b[,a] with values in [0,1].")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (TOML)")
	fs.StringVar(&opts.palettePath, "palette", "", "Path to a palette file (overrides palette.path)")
	fs.StringVar(&opts.luaScript, "lua", "", "Run a Lua script with the color module loaded")
	fs.StringVar(&opts.format, "format", "rgba", "Output format: rgba, rgb8, rgba8, hex or hsv")
	fs.Func("alpha", "Override alpha on every color (0-1)", func(s string) error {
		a, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		opts.alpha = &a
		return nil
	})
	fs.BoolVar(&opts.listNames, "names", false, "List recognized color names and exit")
	fs.BoolVar(&opts.watch, "watch", false, "Reprint whenever the palette file changes")
	fs.BoolVar(&opts.version, "v", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.colors = fs.Args()
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "colorval version %s\n", Version)
		return 0
	}

	cfg, vr, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if opts.palettePath != "" {
		cfg.Palette.Path = opts.palettePath
	}
	if opts.watch {
		cfg.Palette.Watch = true
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer closer.Close()
	for _, w := range vr.Warnings {
		logger.Warn("configuration warning", "field", w.Field, "message", w.Message)
	}
	diag := colorval.NewSlogAdapter(logger)

	pal := palette.New(palette.WithLogger(diag))
	if cfg.Palette.Path != "" {
		if pal, err = palette.Load(cfg.Palette.Path, palette.WithLogger(diag)); err != nil {
			fmt.Fprintf(stderr, "Error loading palette: %v\n", err)
			return 1
		}
		logger.Debug("palette loaded", "path", cfg.Palette.Path, "colors", pal.Len())
	}

	if opts.listNames {
		printNames(stdout, pal)
		return 0
	}

	if opts.luaScript != "" {
		return runLua(opts.luaScript, cfg.Lua, pal, diag, stdout, stderr)
	}

	if len(opts.colors) == 0 {
		fmt.Fprintln(stderr, "No colors specified.")
		fmt.Fprintln(stderr, "Usage: colorval [flags] COLOR...")
		return 1
	}

	render := func() error {
		c, err := buildColor(opts, pal, diag)
		if err != nil {
			return err
		}
		return printColor(stdout, c, opts.format)
	}
	if err := render(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if !cfg.Palette.Watch {
		return 0
	}
	if cfg.Palette.Path == "" {
		fmt.Fprintln(stderr, "-watch requires a palette file")
		return 1
	}
	return watchPalette(cfg.Palette, pal, render, logger, stderr)
}

// parseColorArg turns one command-line argument into a colorval input.
func parseColorArg(s string) (colorval.Input, error) {
	if !strings.Contains(s, ",") {
		return colorval.Str(s), nil
	}
	parts := strings.Split(s, ",")
	ch := make(colorval.Channels, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid channel %q in %q", colorval.ErrValue, p, s)
		}
		ch[i] = v
	}
	return ch, nil
}

func buildColor(opts *options, pal *palette.Palette, diag colorval.Logger) (*colorval.Color, error) {
	inputs := make(colorval.Collection, 0, len(opts.colors))
	for _, s := range opts.colors {
		in, err := parseColorArg(s)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	copts := []colorval.Option{colorval.WithLogger(diag), colorval.WithNames(pal)}
	if opts.alpha != nil {
		copts = append(copts, colorval.WithAlpha(*opts.alpha))
	}
	if len(inputs) == 1 {
		return colorval.New(inputs[0], copts...)
	}
	return colorval.New(inputs, copts...)
}

func printColor(w io.Writer, c *colorval.Color, format string) error {
	switch format {
	case "rgba":
		for _, v := range c.RGBA() {
			fmt.Fprintf(w, "%g %g %g %g\n", v[0], v[1], v[2], v[3])
		}
	case "rgb8":
		for _, v := range c.RGB8() {
			fmt.Fprintf(w, "%d %d %d\n", v[0], v[1], v[2])
		}
	case "rgba8":
		for _, v := range c.RGBA8() {
			fmt.Fprintf(w, "%d %d %d %d\n", v[0], v[1], v[2], v[3])
		}
	case "hex":
		alpha := c.Alpha()
		for i, h := range c.Hex() {
			if alpha[i] < 1 {
				h += fmt.Sprintf("%02x", c.At(i).RGBA8()[3])
			}
			fmt.Fprintln(w, h)
		}
	case "hsv":
		for _, v := range c.HSV() {
			fmt.Fprintf(w, "%g %g %g\n", v[0], v[1], v[2])
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// printNames lists palette names first, then the built-in names the
// palette does not shadow.
func printNames(w io.Writer, pal *palette.Palette) {
	for _, name := range pal.Names() {
		fmt.Fprintln(w, name)
	}
	for name := range colorval.Names() {
		if _, shadowed := pal.ResolveName(name); shadowed {
			continue
		}
		fmt.Fprintln(w, name)
	}
}

func runLua(path string, cfg config.LuaConfig, pal *palette.Palette, diag colorval.Logger, stdout, stderr io.Writer) int {
	runtime, err := lua.New(lua.RuntimeConfig{
		CPULimit:    cfg.CPULimit,
		MemoryLimit: cfg.MemoryLimit,
		Stdout:      stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error creating Lua runtime: %v\n", err)
		return 1
	}
	defer runtime.Close()

	if _, err := lua.NewColorModule(runtime, lua.WithNames(pal), lua.WithLogger(diag)); err != nil {
		fmt.Fprintf(stderr, "Error registering color module: %v\n", err)
		return 1
	}
	if _, err := runtime.ExecuteFile(path); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func watchPalette(cfg config.PaletteConfig, pal *palette.Palette, render func() error, logger *slog.Logger, stderr io.Writer) int {
	w, err := palette.WatchPalette(pal, cfg.Path, cfg.Debounce,
		func() error {
			logger.Info("palette reloaded", "path", cfg.Path, "colors", pal.Len())
			return render()
		},
		func(err error) {
			logger.Error("palette watch", "error", err)
		},
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error watching palette: %v\n", err)
		return 1
	}
	w.Start()
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh
	return 0
}
