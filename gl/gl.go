// SPDX-License-Identifier: Unlicense OR MIT

// Package gl declares the OpenGL ES object handles, enums and
// functions needed to manage framebuffer/renderbuffer pairs.
package gl

type (
	Enum uint

	Framebuffer  struct{ V uint }
	Renderbuffer struct{ V uint }
	Object       struct{ V uint }
)

const (
	COLOR_ATTACHMENT0    = 0x8ce0
	DEPTH_ATTACHMENT     = 0x8d00
	DEPTH_COMPONENT16    = 0x81a5
	DEPTH_COMPONENT24    = 0x81a6
	FRAMEBUFFER          = 0x8d40
	FRAMEBUFFER_BINDING  = 0x8ca6
	FRAMEBUFFER_COMPLETE = 0x8cd5
	INVALID_ENUM         = 0x500
	INVALID_OPERATION    = 0x502
	INVALID_VALUE        = 0x501
	NO_ERROR             = 0x0
	OUT_OF_MEMORY        = 0x505
	RENDERBUFFER         = 0x8d41
	RENDERBUFFER_BINDING = 0x8ca7
	RENDERBUFFER_HEIGHT  = 0x8d43
	RENDERBUFFER_WIDTH   = 0x8d42
	RGB565               = 0x8d62
	RGBA8                = 0x8058

	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8cd7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         = 0x8cd9
)

// Functions is the subset of OpenGL ES used to manage
// window surfaces. Implementations issue calls against
// the context current on the calling thread.
type Functions interface {
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	CheckFramebufferStatus(target Enum) Enum
	CreateFramebuffer() Framebuffer
	CreateRenderbuffer() Renderbuffer
	DeleteFramebuffer(fb Framebuffer)
	DeleteRenderbuffer(rb Renderbuffer)
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, renderbuffer Renderbuffer)
	GetBinding(pname Enum) Object
	GetError() Enum
	GetRenderbufferParameteri(target, pname Enum) int
	RenderbufferStorage(target, internalformat Enum, width, height int)
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int)
}

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (r Renderbuffer) Valid() bool {
	return r.V != 0
}
