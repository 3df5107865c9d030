// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Option configures a View.
type Option func(o *options)

type options struct {
	format     PixelFormat
	retained   bool
	autoResize bool
	observers  []ResizeObserver
}

// Config is the file form of the View options.
//
//	color_format = "rgba8"
//	depth_format = "depth16"
//	retained_backing = false
//	auto_resize = true
type Config struct {
	ColorFormat     ColorFormat `toml:"color_format"`
	DepthFormat     DepthFormat `toml:"depth_format"`
	RetainedBacking bool        `toml:"retained_backing"`
	AutoResize      bool        `toml:"auto_resize"`
}

// WithColorFormat sets the color renderbuffer format. The default is RGB565.
func WithColorFormat(f ColorFormat) Option {
	return func(o *options) {
		o.format.Color = f
	}
}

// WithDepthFormat adds a depth renderbuffer. The default is DepthNone.
func WithDepthFormat(f DepthFormat) Option {
	return func(o *options) {
		o.format.Depth = f
	}
}

// WithRetainedBacking asks the drawable to keep its contents after
// presentation.
func WithRetainedBacking(retained bool) Option {
	return func(o *options) {
		o.retained = retained
	}
}

// WithAutoResize sets the initial auto-resize mode.
func WithAutoResize(enabled bool) Option {
	return func(o *options) {
		o.autoResize = enabled
	}
}

// WithResizeObserver registers an observer before the initial surface is
// created, so it is notified of that creation too.
func WithResizeObserver(obs ResizeObserver) Option {
	return func(o *options) {
		o.observers = append(o.observers, obs)
	}
}

// Options converts c to View options.
func (c Config) Options() []Option {
	return []Option{
		WithColorFormat(c.ColorFormat),
		WithDepthFormat(c.DepthFormat),
		WithRetainedBacking(c.RetainedBacking),
		WithAutoResize(c.AutoResize),
	}
}

// DecodeConfig parses a TOML configuration. Unknown keys are errors.
func DecodeConfig(data string) (Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("view: decoding config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("view: loading %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	var names []string
	for _, k := range keys {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return fmt.Errorf("view: unknown config keys: %s", strings.Join(names, ", "))
}
