// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements contexts, GL functions and drawables in
// memory, for driving views without a GPU.
//
// A Platform models the current-context state of a single thread.
package headless

import (
	"errors"
	"fmt"
	"image"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/gl"
	"github.com/cocosgo/glview/view"
)

// Platform holds the context current on one thread.
type Platform struct {
	current *Context
	// BindErr, if set, is returned by SetCurrentContext.
	BindErr error
}

// Context is an in-memory GL context.
type Context struct {
	p        *Platform
	f        Functions
	released bool
}

// Drawable is an in-memory layer.
type Drawable struct {
	bounds f32.Rectangle
	scale  float32
	props  view.DrawableProperties

	// StorageErr, if set, is returned by RenderbufferStorage.
	StorageErr error
	// PresentErr, if set, is returned by PresentRenderbuffer.
	PresentErr error

	presented     int
	lastPresented gl.Renderbuffer
}

func (p *Platform) CurrentContext() view.Context {
	if p.current == nil {
		return nil
	}
	return p.current
}

func (p *Platform) SetCurrentContext(ctx view.Context) error {
	if p.BindErr != nil {
		return p.BindErr
	}
	if ctx == nil {
		p.current = nil
		return nil
	}
	c, ok := ctx.(*Context)
	if !ok {
		return fmt.Errorf("headless: foreign context %T", ctx)
	}
	if c.released {
		return errors.New("headless: context released")
	}
	if c.p != p {
		return errors.New("headless: context belongs to another platform")
	}
	p.current = c
	return nil
}

// Current returns the current context, or nil.
func (p *Platform) Current() *Context {
	return p.current
}

func NewContext(p *Platform) *Context {
	c := &Context{p: p}
	c.f = Functions{
		ctx:           c,
		framebuffers:  make(map[uint]*framebuffer),
		renderbuffers: make(map[uint]*renderbuffer),
	}
	return c
}

func (c *Context) Functions() gl.Functions {
	return &c.f
}

// Release destroys the context. It is unbound if current.
func (c *Context) Release() {
	if c.p.current == c {
		c.p.current = nil
	}
	c.released = true
}

// Live returns the number of framebuffers and renderbuffers not yet
// deleted.
func (c *Context) Live() (framebuffers, renderbuffers int) {
	return len(c.f.framebuffers), len(c.f.renderbuffers)
}

// Bindings returns the bound framebuffer and renderbuffer.
func (c *Context) Bindings() (gl.Framebuffer, gl.Renderbuffer) {
	return gl.Framebuffer{V: c.f.fbo}, gl.Renderbuffer{V: c.f.rb}
}

// Viewport returns the last viewport and scissor rectangles set.
func (c *Context) Viewport() (viewport, scissor image.Rectangle) {
	return c.f.viewport, c.f.scissor
}

// RenderbufferStorage returns the format and size of a live
// renderbuffer.
func (c *Context) RenderbufferStorage(rb gl.Renderbuffer) (format gl.Enum, size image.Point, ok bool) {
	r, ok := c.f.renderbuffers[rb.V]
	if !ok {
		return 0, image.Point{}, false
	}
	return r.format, r.size, true
}

// Attachments returns the renderbuffers attached to a live framebuffer.
func (c *Context) Attachments(fb gl.Framebuffer) (color, depth gl.Renderbuffer, ok bool) {
	f, ok := c.f.framebuffers[fb.V]
	if !ok {
		return gl.Renderbuffer{}, gl.Renderbuffer{}, false
	}
	return gl.Renderbuffer{V: f.color}, gl.Renderbuffer{V: f.depth}, true
}

// Calls returns the object calls issued so far.
func (c *Context) Calls() []Call {
	return c.f.calls
}

// Misuse returns the number of GL calls made while c was not current.
func (c *Context) Misuse() int {
	return c.f.misuse
}

func NewDrawable(bounds f32.Rectangle, scale float32) *Drawable {
	return &Drawable{bounds: bounds, scale: scale}
}

func (d *Drawable) Bounds() f32.Rectangle {
	return d.bounds
}

// SetBounds moves the layer, as the host view does before calling
// view.View.Layout.
func (d *Drawable) SetBounds(b f32.Rectangle) {
	d.bounds = b
}

func (d *Drawable) Scale() float32 {
	return d.scale
}

func (d *Drawable) SetProperties(props view.DrawableProperties) {
	d.props = props
}

func (d *Drawable) Properties() view.DrawableProperties {
	return d.props
}

// PixelSize returns the size of the storage the drawable provides.
func (d *Drawable) PixelSize() image.Point {
	s := d.scale
	if s <= 0 {
		s = 1
	}
	return f32.Rectangle{Max: d.bounds.Size().Mul(s)}.Round()
}

func (d *Drawable) RenderbufferStorage(ctx view.Context, target gl.Enum) error {
	if d.StorageErr != nil {
		return d.StorageErr
	}
	c, err := d.current(ctx)
	if err != nil {
		return err
	}
	format := gl.Enum(gl.RGB565)
	if cf, ok := d.props[view.PropColorFormat].(view.ColorFormat); ok {
		format = cf.Enum()
	}
	sz := d.PixelSize()
	c.f.RenderbufferStorage(target, format, sz.X, sz.Y)
	if e := c.f.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("headless: storage error %#x", uint(e))
	}
	return nil
}

func (d *Drawable) PresentRenderbuffer(ctx view.Context, target gl.Enum) error {
	if d.PresentErr != nil {
		return d.PresentErr
	}
	c, err := d.current(ctx)
	if err != nil {
		return err
	}
	if target != gl.RENDERBUFFER {
		return fmt.Errorf("headless: invalid target %#x", uint(target))
	}
	r, ok := c.f.renderbuffers[c.f.rb]
	if !ok || r.size == (image.Point{}) {
		return errors.New("headless: no renderbuffer storage bound")
	}
	d.presented++
	d.lastPresented = gl.Renderbuffer{V: c.f.rb}
	return nil
}

// Presented returns the number of presented frames and the last
// presented renderbuffer.
func (d *Drawable) Presented() (int, gl.Renderbuffer) {
	return d.presented, d.lastPresented
}

func (d *Drawable) current(ctx view.Context) (*Context, error) {
	c, ok := ctx.(*Context)
	if !ok {
		return nil, fmt.Errorf("headless: foreign context %T", ctx)
	}
	if c.p.current != c {
		return nil, errors.New("headless: context not current")
	}
	return c, nil
}

var (
	_ view.Platform = (*Platform)(nil)
	_ view.Context  = (*Context)(nil)
	_ view.Drawable = (*Drawable)(nil)
)
