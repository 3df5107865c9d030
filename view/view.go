// SPDX-License-Identifier: Unlicense OR MIT

/*
Package view manages an on-screen GPU surface: a framebuffer with a
color renderbuffer backed by a platform drawable and an optional depth
renderbuffer.

A View allocates the surface at creation, rebuilds it when the drawable
changes size, presents frames and converts view coordinates to surface
pixels.

All methods of a View must be called from the thread owning its context.
Nothing is locked internally. On platforms binding contexts to OS
threads, call runtime.LockOSThread before using a View.
*/
package view

import (
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/exp/slices"

	"github.com/cocosgo/glview/f32"
)

// View owns the surface of a drawable. The context is borrowed and
// must outlive the View.
type View struct {
	d       Drawable
	ctx     Context
	tracker *Tracker

	format     PixelFormat
	retained   bool
	autoResize bool

	bounds  f32.Rectangle
	surface Surface
	// size is the pixel size of the last successful surface creation.
	size           image.Point
	hasBeenCurrent bool

	touch        TouchDelegate
	observers    []observer
	nextObserver int
}

// ResizeObserver is notified after the surface has been recreated.
type ResizeObserver interface {
	OnResized(size image.Point)
}

// ResizeFunc adapts a function to a ResizeObserver.
type ResizeFunc func(size image.Point)

type observer struct {
	id  int
	obs ResizeObserver
}

func (f ResizeFunc) OnResized(size image.Point) {
	f(size)
}

// New creates a View drawing into d with ctx, and allocates its
// surface. p tracks the current context of the calling thread.
func New(d Drawable, ctx Context, p Platform, opts ...Option) (*View, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	v := &View{
		d:          d,
		ctx:        ctx,
		tracker:    NewTracker(p),
		format:     o.format,
		retained:   o.retained,
		autoResize: o.autoResize,
		bounds:     d.Bounds(),
	}
	for _, obs := range o.observers {
		v.AddResizeObserver(obs)
	}
	d.SetProperties(DrawableProperties{
		PropRetainedBacking: o.retained,
		PropColorFormat:     o.format.Color,
	})
	if err := v.createSurface(); err != nil {
		return nil, err
	}
	return v, nil
}

// Close destroys the surface. The context may be released afterwards.
func (v *View) Close() {
	v.DestroySurface()
}

// Size returns the pixel size of the surface.
func (v *View) Size() image.Point {
	return v.size
}

// Surface returns the GL objects of the surface. The zero Surface
// means none is allocated.
func (v *View) Surface() Surface {
	return v.surface
}

// Bounds returns the logical bounds last seen by the View.
func (v *View) Bounds() f32.Rectangle {
	return v.bounds
}

func (v *View) Format() PixelFormat {
	return v.format
}

// SurfaceFormat returns the WebGPU equivalent of the color format.
func (v *View) SurfaceFormat() gputypes.TextureFormat {
	return v.format.TextureFormat()
}

// AutoResize reports whether Layout recreates the surface.
func (v *View) AutoResize() bool {
	return v.autoResize
}

// MakeCurrent makes the context of v current.
func (v *View) MakeCurrent() error {
	return v.tracker.MakeCurrent(v.ctx)
}

// SetCurrentContext makes an arbitrary context current.
func (v *View) SetCurrentContext(ctx Context) error {
	return v.tracker.MakeCurrent(ctx)
}

// ClearCurrent unbinds any current context.
func (v *View) ClearCurrent() bool {
	return v.tracker.ClearCurrent()
}

// IsCurrent reports whether the context of v is current.
func (v *View) IsCurrent() bool {
	return v.tracker.IsCurrent(v.ctx)
}

// AddResizeObserver registers obs. Observers are called in
// registration order. The returned function unregisters obs.
func (v *View) AddResizeObserver(obs ResizeObserver) (cancel func()) {
	v.nextObserver++
	id := v.nextObserver
	v.observers = append(v.observers, observer{id: id, obs: obs})
	return func() {
		i := slices.IndexFunc(v.observers, func(o observer) bool {
			return o.id == id
		})
		if i >= 0 {
			v.observers = slices.Delete(v.observers, i, i+1)
		}
	}
}

func (v *View) notifyResized() {
	// Observers may cancel themselves while being notified.
	obs := slices.Clone(v.observers)
	for _, o := range obs {
		o.obs.OnResized(v.size)
	}
}
