// SPDX-License-Identifier: Unlicense OR MIT

// Command glview drives a view surface on the headless platform
// through creation, layout changes, presentation and coordinate
// mapping, logging every step. It is useful for checking a surface
// configuration file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/headless"
	"github.com/cocosgo/glview/view"
)

var (
	configPath = flag.String("config", "", "TOML surface configuration file.")
	width      = flag.Float64("width", 320, "initial view width in points.")
	height     = flag.Float64("height", 480, "initial view height in points.")
	scale      = flag.Float64("scale", 2, "pixels per point.")
	layouts    = flag.String("layouts", "480x320", "comma separated view sizes to lay out in turn, e.g. 480x320,320x480.")
	frames     = flag.Int("frames", 2, "frames to present after each layout.")
	verbose    = flag.Bool("v", false, "log debug records.")
)

const mainUsage = `The glview command checks a view surface configuration.

Usage:

	glview [flags]

It creates a view with the given configuration on an in-memory GL
platform, lays it out with each size of -layouts, presents -frames
frames after each and maps the view center to surface pixels.

Flags:
`

type options struct {
	config  view.Config
	bounds  f32.Rectangle
	scale   float32
	layouts []f32.Point
	frames  int
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	view.SetLogger(logger)
	if err := mainErr(logger); err != nil {
		fmt.Fprintf(os.Stderr, "glview: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(logger *slog.Logger) error {
	var cfg view.Config
	if *configPath != "" {
		c, err := view.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	sizes, err := parseSizes(*layouts)
	if err != nil {
		return err
	}
	_, err = run(logger, options{
		config:  cfg,
		bounds:  f32.Rect(0, 0, float32(*width), float32(*height)),
		scale:   float32(*scale),
		layouts: sizes,
		frames:  *frames,
	})
	return err
}

type report struct {
	resizes []image.Point
	frames  int
}

func run(logger *slog.Logger, o options) (report, error) {
	var rep report
	p := new(headless.Platform)
	ctx := headless.NewContext(p)
	defer ctx.Release()
	d := headless.NewDrawable(o.bounds, o.scale)

	opts := append(o.config.Options(), view.WithResizeObserver(view.ResizeFunc(func(sz image.Point) {
		rep.resizes = append(rep.resizes, sz)
		logger.Info("surface resized", "width", sz.X, "height", sz.Y)
	})))
	v, err := view.New(d, ctx, p, opts...)
	if err != nil {
		return rep, err
	}
	defer v.Close()
	logger.Info("view created",
		"color", v.Format().Color, "depth", v.Format().Depth,
		"auto_resize", v.AutoResize(), "surface_format", v.SurfaceFormat())

	step := func() error {
		for i := 0; i < o.frames; i++ {
			if err := v.Present(); err != nil {
				return err
			}
		}
		center := v.Bounds().Min.Add(v.Bounds().Size().Mul(.5))
		pt, err := v.PointToSurface(center)
		if err != nil {
			return err
		}
		logger.Info("view center", "x", pt.X, "y", pt.Y, "size", v.Size())
		return nil
	}
	if err := step(); err != nil {
		return rep, err
	}
	for _, sz := range o.layouts {
		b := f32.Rect(0, 0, sz.X, sz.Y)
		d.SetBounds(b)
		if err := v.Layout(b); err != nil {
			return rep, err
		}
		if err := step(); err != nil {
			return rep, err
		}
	}
	rep.frames, _ = d.Presented()
	fbs, rbs := ctx.Live()
	logger.Info("done", "frames", rep.frames, "framebuffers", fbs, "renderbuffers", rbs)
	return rep, nil
}

// parseSizes parses a list such as "480x320,320x480".
func parseSizes(s string) ([]f32.Point, error) {
	if s == "" {
		return nil, nil
	}
	var sizes []f32.Point
	for _, f := range strings.Split(s, ",") {
		ws, hs, ok := strings.Cut(strings.TrimSpace(f), "x")
		if !ok {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		w, err := strconv.ParseFloat(ws, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", f, err)
		}
		h, err := strconv.ParseFloat(hs, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", f, err)
		}
		if w <= 0 || h <= 0 {
			return nil, errors.New("sizes must be positive")
		}
		sizes = append(sizes, f32.Pt(float32(w), float32(h)))
	}
	return sizes, nil
}
