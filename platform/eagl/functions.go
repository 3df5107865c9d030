// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && ios

package eagl

/*
#include <OpenGLES/ES3/gl.h>
*/
import "C"

import (
	"github.com/cocosgo/glview/gl"
)

// Functions calls OpenGL ES on the context current on the calling
// thread.
type Functions struct {
	// Query caches.
	uints [1]C.GLuint
	ints  [1]C.GLint
}

var _ gl.Functions = (*Functions)(nil)

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	C.glBindFramebuffer(C.GLenum(target), C.GLuint(fb.V))
}

func (f *Functions) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	C.glBindRenderbuffer(C.GLenum(target), C.GLuint(rb.V))
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(C.glCheckFramebufferStatus(C.GLenum(target)))
}

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	C.glGenFramebuffers(1, &f.uints[0])
	return gl.Framebuffer{V: uint(f.uints[0])}
}

func (f *Functions) CreateRenderbuffer() gl.Renderbuffer {
	C.glGenRenderbuffers(1, &f.uints[0])
	return gl.Renderbuffer{V: uint(f.uints[0])}
}

func (f *Functions) DeleteFramebuffer(fb gl.Framebuffer) {
	f.uints[0] = C.GLuint(fb.V)
	C.glDeleteFramebuffers(1, &f.uints[0])
}

func (f *Functions) DeleteRenderbuffer(rb gl.Renderbuffer) {
	f.uints[0] = C.GLuint(rb.V)
	C.glDeleteRenderbuffers(1, &f.uints[0])
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	C.glFramebufferRenderbuffer(C.GLenum(target), C.GLenum(attachment), C.GLenum(renderbuffertarget), C.GLuint(rb.V))
}

func (f *Functions) GetBinding(pname gl.Enum) gl.Object {
	return gl.Object{V: uint(f.GetInteger(pname))}
}

func (f *Functions) GetError() gl.Enum {
	return gl.Enum(C.glGetError())
}

func (f *Functions) GetInteger(pname gl.Enum) int {
	C.glGetIntegerv(C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetRenderbufferParameteri(target, pname gl.Enum) int {
	C.glGetRenderbufferParameteriv(C.GLenum(target), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	C.glRenderbufferStorage(C.GLenum(target), C.GLenum(internalformat), C.GLsizei(width), C.GLsizei(height))
}

func (f *Functions) Scissor(x, y, width, height int32) {
	C.glScissor(C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
}

func (f *Functions) Viewport(x, y, width, height int) {
	C.glViewport(C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
}
