// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"github.com/cocosgo/glview/gl"
)

// Present displays the color renderbuffer. The caller's current
// context and renderbuffer binding are preserved. A frame the drawable
// refuses to present is logged and dropped; the only error returned is
// a *ContextBindError.
func (v *View) Present() error {
	if !v.surface.Valid() {
		Logger().Warn("present without surface, frame dropped")
		return nil
	}
	defer v.tracker.Save()()
	if err := v.tracker.MakeCurrent(v.ctx); err != nil {
		return err
	}
	f := v.ctx.Functions()
	defer saveRenderbuffer(f)()
	f.BindRenderbuffer(gl.RENDERBUFFER, v.surface.Color)
	if err := v.d.PresentRenderbuffer(v.ctx, gl.RENDERBUFFER); err != nil {
		Logger().Warn("present failed, frame dropped", "err", err)
	}
	return nil
}
