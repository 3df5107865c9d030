// SPDX-License-Identifier: Unlicense OR MIT

package view_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/view"
)

func TestDecodeConfig(t *testing.T) {
	c, err := view.DecodeConfig(`
color_format = "rgba8"
depth_format = "depth24"
retained_backing = true
auto_resize = true
`)
	if err != nil {
		t.Fatal(err)
	}
	want := view.Config{
		ColorFormat:     view.RGBA8,
		DepthFormat:     view.Depth24,
		RetainedBacking: true,
		AutoResize:      true,
	}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}

	e := newTestEnv(f32.Rect(0, 0, 32, 32), 1)
	v := newTestView(t, e, c.Options()...)
	defer v.Close()
	if got := v.Format(); got != (view.PixelFormat{Color: view.RGBA8, Depth: view.Depth24}) {
		t.Errorf("got format %+v", got)
	}
	if !v.AutoResize() {
		t.Error("auto-resize not enabled")
	}
	if e.d.Properties()[view.PropRetainedBacking] != true {
		t.Error("retained backing not passed to the drawable")
	}
}

func TestDecodeConfigDefaults(t *testing.T) {
	c, err := view.DecodeConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c != (view.Config{ColorFormat: view.RGB565, DepthFormat: view.DepthNone}) {
		t.Errorf("got %+v, want defaults", c)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, src := range []string{
		`color_format = "bgra"`,
		`depth_format = "stencil8"`,
		`auto_resize = "yes"`,
		`scale = 2`,
	} {
		if _, err := view.DecodeConfig(src); err == nil {
			t.Errorf("%q: no error", src)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	if err := os.WriteFile(path, []byte("depth_format = \"depth16\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := view.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.DepthFormat != view.Depth16 {
		t.Errorf("got depth format %v, want depth16", c.DepthFormat)
	}
	if _, err := view.LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}
