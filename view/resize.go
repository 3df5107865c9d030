// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"github.com/cocosgo/glview/f32"
)

// Layout is called by the host view when the drawable bounds changed.
// With auto-resize enabled, a change of the rounded pixel width or
// height recreates the surface before Layout returns, as does a
// missing surface after a failed allocation. Without it the surface
// keeps its size; only Recreate changes it.
func (v *View) Layout(bounds f32.Rectangle) error {
	v.bounds = bounds
	if !v.autoResize {
		return nil
	}
	if v.surface.Valid() && v.pixelSize(bounds) == v.size {
		return nil
	}
	return v.recreate()
}

// SetAutoResize enables or disables automatic surface resizing.
// Enabling it checks the current drawable bounds immediately.
func (v *View) SetAutoResize(enabled bool) error {
	v.autoResize = enabled
	if !enabled {
		return nil
	}
	return v.Layout(v.d.Bounds())
}

// Recreate destroys the surface and allocates a new one sized to the
// current drawable bounds, regardless of auto-resize. If the context
// cannot be made current the old surface is kept. If allocation fails,
// no surface exists afterwards and Size still reports the previous size.
func (v *View) Recreate() error {
	v.bounds = v.d.Bounds()
	return v.recreate()
}

func (v *View) recreate() error {
	if err := v.destroySurface(); err != nil {
		return err
	}
	return v.createSurface()
}
