// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"image"

	"github.com/cocosgo/glview/gl"
)

// Functions implements gl.Functions for a Context. Calls made while
// the context is not current are counted and otherwise ignored.
type Functions struct {
	ctx *Context

	nextID        uint
	framebuffers  map[uint]*framebuffer
	renderbuffers map[uint]*renderbuffer
	fbo, rb       uint
	err           gl.Enum

	viewport, scissor image.Rectangle

	calls  []Call
	misuse int
}

// Call records an object creation, deletion or binding.
type Call struct {
	Name string
	ID   uint
}

type framebuffer struct {
	color, depth uint
}

type renderbuffer struct {
	format gl.Enum
	size   image.Point
}

var _ gl.Functions = (*Functions)(nil)

func (f *Functions) active() bool {
	if f.ctx.p.current != f.ctx {
		f.misuse++
		return false
	}
	return true
}

func (f *Functions) setErr(e gl.Enum) {
	if f.err == gl.NO_ERROR {
		f.err = e
	}
}

func (f *Functions) record(name string, id uint) {
	f.calls = append(f.calls, Call{Name: name, ID: id})
}

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	if !f.active() {
		return
	}
	if target != gl.FRAMEBUFFER {
		f.setErr(gl.INVALID_ENUM)
		return
	}
	if _, ok := f.framebuffers[fb.V]; fb.V != 0 && !ok {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	f.record("BindFramebuffer", fb.V)
	f.fbo = fb.V
}

func (f *Functions) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	if !f.active() {
		return
	}
	if target != gl.RENDERBUFFER {
		f.setErr(gl.INVALID_ENUM)
		return
	}
	if _, ok := f.renderbuffers[rb.V]; rb.V != 0 && !ok {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	f.record("BindRenderbuffer", rb.V)
	f.rb = rb.V
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if !f.active() {
		return 0
	}
	if target != gl.FRAMEBUFFER {
		f.setErr(gl.INVALID_ENUM)
		return 0
	}
	fb, ok := f.framebuffers[f.fbo]
	if !ok {
		// The default framebuffer of a headless context is always complete.
		return gl.FRAMEBUFFER_COMPLETE
	}
	color, ok := f.renderbuffers[fb.color]
	if !ok {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	if color.size.X <= 0 || color.size.Y <= 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	if fb.depth != 0 {
		depth, ok := f.renderbuffers[fb.depth]
		if !ok || depth.size.X <= 0 || depth.size.Y <= 0 {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if depth.size != color.size {
			return gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS
		}
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	if !f.active() {
		return gl.Framebuffer{}
	}
	f.nextID++
	f.framebuffers[f.nextID] = new(framebuffer)
	f.record("CreateFramebuffer", f.nextID)
	return gl.Framebuffer{V: f.nextID}
}

func (f *Functions) CreateRenderbuffer() gl.Renderbuffer {
	if !f.active() {
		return gl.Renderbuffer{}
	}
	f.nextID++
	f.renderbuffers[f.nextID] = new(renderbuffer)
	f.record("CreateRenderbuffer", f.nextID)
	return gl.Renderbuffer{V: f.nextID}
}

func (f *Functions) DeleteFramebuffer(fb gl.Framebuffer) {
	if !f.active() {
		return
	}
	// Unknown names are silently ignored, as in GL.
	if _, ok := f.framebuffers[fb.V]; !ok {
		return
	}
	delete(f.framebuffers, fb.V)
	if f.fbo == fb.V {
		f.fbo = 0
	}
	f.record("DeleteFramebuffer", fb.V)
}

func (f *Functions) DeleteRenderbuffer(rb gl.Renderbuffer) {
	if !f.active() {
		return
	}
	if _, ok := f.renderbuffers[rb.V]; !ok {
		return
	}
	delete(f.renderbuffers, rb.V)
	if f.rb == rb.V {
		f.rb = 0
	}
	// Deleting an attached renderbuffer detaches it from the bound
	// framebuffer.
	if fb, ok := f.framebuffers[f.fbo]; ok {
		if fb.color == rb.V {
			fb.color = 0
		}
		if fb.depth == rb.V {
			fb.depth = 0
		}
	}
	f.record("DeleteRenderbuffer", rb.V)
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	if !f.active() {
		return
	}
	if target != gl.FRAMEBUFFER || renderbuffertarget != gl.RENDERBUFFER {
		f.setErr(gl.INVALID_ENUM)
		return
	}
	fb, ok := f.framebuffers[f.fbo]
	if !ok {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	if _, ok := f.renderbuffers[rb.V]; rb.V != 0 && !ok {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	switch attachment {
	case gl.COLOR_ATTACHMENT0:
		fb.color = rb.V
	case gl.DEPTH_ATTACHMENT:
		fb.depth = rb.V
	default:
		f.setErr(gl.INVALID_ENUM)
	}
}

func (f *Functions) GetBinding(pname gl.Enum) gl.Object {
	if !f.active() {
		return gl.Object{}
	}
	switch pname {
	case gl.FRAMEBUFFER_BINDING:
		return gl.Object{V: f.fbo}
	case gl.RENDERBUFFER_BINDING:
		return gl.Object{V: f.rb}
	default:
		f.setErr(gl.INVALID_ENUM)
		return gl.Object{}
	}
}

// GetError returns and clears the first error recorded since the
// last call.
func (f *Functions) GetError() gl.Enum {
	if !f.active() {
		return gl.NO_ERROR
	}
	e := f.err
	f.err = gl.NO_ERROR
	return e
}

func (f *Functions) GetRenderbufferParameteri(target, pname gl.Enum) int {
	if !f.active() {
		return 0
	}
	r, ok := f.renderbuffers[f.rb]
	if target != gl.RENDERBUFFER || !ok {
		f.setErr(gl.INVALID_OPERATION)
		return 0
	}
	switch pname {
	case gl.RENDERBUFFER_WIDTH:
		return r.size.X
	case gl.RENDERBUFFER_HEIGHT:
		return r.size.Y
	default:
		f.setErr(gl.INVALID_ENUM)
		return 0
	}
}

func (f *Functions) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	if !f.active() {
		return
	}
	r, ok := f.renderbuffers[f.rb]
	if target != gl.RENDERBUFFER || !ok {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	if width < 0 || height < 0 {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	r.format = internalformat
	r.size = image.Pt(width, height)
}

func (f *Functions) Scissor(x, y, width, height int32) {
	if !f.active() {
		return
	}
	f.scissor = image.Rect(int(x), int(y), int(x+width), int(y+height))
}

func (f *Functions) Viewport(x, y, width, height int) {
	if !f.active() {
		return
	}
	f.viewport = image.Rect(x, y, x+width, y+height)
}
