// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"fmt"
	"image"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/gl"
)

// Surface is the set of GL objects backing a View. The objects are
// created and destroyed together.
type Surface struct {
	Framebuffer gl.Framebuffer
	Color       gl.Renderbuffer
	// Depth is the zero Renderbuffer if the View has no depth format.
	Depth gl.Renderbuffer
}

// Valid reports whether s holds allocated objects.
func (s Surface) Valid() bool {
	return s.Framebuffer.Valid()
}

// pixelSize converts logical bounds to the integer pixel size of
// the drawable storage.
func (v *View) pixelSize(bounds f32.Rectangle) image.Point {
	scale := v.d.Scale()
	if scale <= 0 {
		scale = 1
	}
	return f32.Rectangle{Max: bounds.Size().Mul(scale)}.Round()
}

func (v *View) createSurface() error {
	if err := v.tracker.MakeCurrent(v.ctx); err != nil {
		return err
	}
	size := v.pixelSize(v.bounds)
	s, err := v.allocSurface(v.ctx.Functions(), size)
	if err != nil {
		return err
	}
	v.surface = s
	v.size = size
	Logger().Debug("surface created",
		"width", size.X, "height", size.Y,
		"framebuffer", s.Framebuffer.V, "color", s.Color.V, "depth", s.Depth.V)
	v.notifyResized()
	return nil
}

// allocSurface builds the framebuffer and its renderbuffers. The
// renderbuffer binding of the caller is restored on return. The
// framebuffer binding is restored too, except after the first
// successful allocation which leaves the new framebuffer bound.
func (v *View) allocSurface(f gl.Functions, size image.Point) (Surface, error) {
	defer saveRenderbuffer(f)()
	prevFBO := gl.Framebuffer(f.GetBinding(gl.FRAMEBUFFER_BINDING))
	keepFBO := false
	defer func() {
		if !keepFBO {
			f.BindFramebuffer(gl.FRAMEBUFFER, prevFBO)
		}
	}()

	var s Surface
	s.Color = f.CreateRenderbuffer()
	f.BindRenderbuffer(gl.RENDERBUFFER, s.Color)
	if err := v.d.RenderbufferStorage(v.ctx, gl.RENDERBUFFER); err != nil {
		f.DeleteRenderbuffer(s.Color)
		return Surface{}, &SurfaceAllocationError{Size: size, Err: fmt.Errorf("%w: %w", ErrStorage, err)}
	}
	// The depth buffer must match the storage the drawable actually
	// allocated.
	w := f.GetRenderbufferParameteri(gl.RENDERBUFFER, gl.RENDERBUFFER_WIDTH)
	h := f.GetRenderbufferParameteri(gl.RENDERBUFFER, gl.RENDERBUFFER_HEIGHT)
	if w <= 0 || h <= 0 {
		w, h = size.X, size.Y
	}

	s.Framebuffer = f.CreateFramebuffer()
	f.BindFramebuffer(gl.FRAMEBUFFER, s.Framebuffer)
	f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, s.Color)
	if v.format.Depth != DepthNone {
		s.Depth = f.CreateRenderbuffer()
		f.BindRenderbuffer(gl.RENDERBUFFER, s.Depth)
		f.RenderbufferStorage(gl.RENDERBUFFER, v.format.Depth.Enum(), w, h)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, s.Depth)
	}
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		deleteSurface(f, s)
		return Surface{}, &SurfaceAllocationError{Size: size, Err: fmt.Errorf("%w, status: %#x", ErrIncomplete, st)}
	}

	if !v.hasBeenCurrent {
		f.Viewport(0, 0, size.X, size.Y)
		f.Scissor(0, 0, int32(size.X), int32(size.Y))
		v.hasBeenCurrent = true
		keepFBO = true
	}
	return s, nil
}

// DestroySurface releases the surface. It never fails; problems are
// logged.
func (v *View) DestroySurface() {
	if err := v.destroySurface(); err != nil {
		Logger().Warn("surface not destroyed", "err", err)
	}
}

// destroySurface deletes the surface objects with the context of v
// current, then restores the caller's current context. It fails only
// if the context could not be made current, in which case the surface
// is left as is.
func (v *View) destroySurface() error {
	if !v.surface.Valid() {
		return nil
	}
	defer v.tracker.Save()()
	if err := v.tracker.MakeCurrent(v.ctx); err != nil {
		return err
	}
	f := v.ctx.Functions()
	deleteSurface(f, v.surface)
	if e := f.GetError(); e != gl.NO_ERROR {
		Logger().Warn("GL error while deleting surface", "error", fmt.Sprintf("%#x", uint(e)))
	}
	Logger().Debug("surface destroyed", "framebuffer", v.surface.Framebuffer.V)
	v.surface = Surface{}
	return nil
}

// deleteSurface deletes the depth buffer, if any, then the color
// buffer and the framebuffer.
func deleteSurface(f gl.Functions, s Surface) {
	if s.Depth.Valid() {
		f.DeleteRenderbuffer(s.Depth)
	}
	f.DeleteRenderbuffer(s.Color)
	f.DeleteFramebuffer(s.Framebuffer)
}

func saveRenderbuffer(f gl.Functions) (restore func()) {
	rb := gl.Renderbuffer(f.GetBinding(gl.RENDERBUFFER_BINDING))
	return func() {
		f.BindRenderbuffer(gl.RENDERBUFFER, rb)
	}
}
