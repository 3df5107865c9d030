// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"errors"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/gl"
)

// Context is a GPU context. Implementations must be comparable,
// typically pointers, since the current context is matched by identity.
type Context interface {
	// Functions returns the GL functions of the context. They
	// are only valid while the context is current.
	Functions() gl.Functions
}

// Platform holds the context current on the calling thread.
type Platform interface {
	// CurrentContext returns the current context, or nil.
	CurrentContext() Context
	// SetCurrentContext binds ctx to the calling thread, or
	// unbinds the current context if ctx is nil. On error the
	// previous binding is unchanged.
	SetCurrentContext(ctx Context) error
}

// Drawable is the platform layer providing storage for the color
// renderbuffer and displaying it.
type Drawable interface {
	// Bounds returns the logical bounds of the layer.
	Bounds() f32.Rectangle
	// Scale is the number of pixels per logical unit.
	Scale() float32
	SetProperties(props DrawableProperties)
	// RenderbufferStorage allocates storage for the renderbuffer
	// bound to target in ctx, sized to the layer.
	RenderbufferStorage(ctx Context, target gl.Enum) error
	// PresentRenderbuffer displays the renderbuffer bound to target.
	PresentRenderbuffer(ctx Context, target gl.Enum) error
}

// DrawableProperties are passed to the drawable when a View is
// created. Values for unknown keys are passed through untouched.
type DrawableProperties map[string]interface{}

const (
	// PropRetainedBacking holds a bool.
	PropRetainedBacking = "retained-backing"
	// PropColorFormat holds a ColorFormat.
	PropColorFormat = "color-format"
)

// Tracker tracks the context current on the calling thread. A Tracker
// must only be used from a single thread, the one owning its contexts.
type Tracker struct {
	p Platform
	// owner is the thread id seen first while debug logging is
	// enabled, or 0.
	owner int
}

func NewTracker(p Platform) *Tracker {
	return &Tracker{p: p}
}

// MakeCurrent binds ctx to the calling thread. It is a no-op if ctx is
// already current. A platform failure is returned as a *ContextBindError.
func (t *Tracker) MakeCurrent(ctx Context) error {
	t.checkThread()
	if ctx == nil {
		return &ContextBindError{Err: errors.New("nil context")}
	}
	if t.IsCurrent(ctx) {
		return nil
	}
	if err := t.p.SetCurrentContext(ctx); err != nil {
		return &ContextBindError{Err: err}
	}
	return nil
}

// ClearCurrent unbinds the current context. Failure is logged and
// reported as false.
func (t *Tracker) ClearCurrent() bool {
	t.checkThread()
	if err := t.p.SetCurrentContext(nil); err != nil {
		Logger().Warn("failed to clear current context", "err", err)
		return false
	}
	return true
}

// IsCurrent reports whether ctx is current on the calling thread.
func (t *Tracker) IsCurrent(ctx Context) bool {
	return ctx != nil && t.p.CurrentContext() == ctx
}

// Current returns the current context, or nil.
func (t *Tracker) Current() Context {
	return t.p.CurrentContext()
}

// Save snapshots the current context. The returned function makes it
// current again, or clears the binding if there was none.
func (t *Tracker) Save() (restore func()) {
	prev := t.p.CurrentContext()
	return func() {
		if t.p.CurrentContext() == prev {
			return
		}
		if err := t.p.SetCurrentContext(prev); err != nil {
			Logger().Warn("failed to restore current context", "err", err)
		}
	}
}

func (t *Tracker) checkThread() {
	if !debugEnabled() {
		return
	}
	tid := threadID()
	switch {
	case tid == 0:
	case t.owner == 0:
		t.owner = tid
	case tid != t.owner:
		Logger().Debug("context tracker called off its owner thread", "owner", t.owner, "tid", tid)
	}
}
