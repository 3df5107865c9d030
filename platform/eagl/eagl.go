// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && ios

package eagl

/*
#cgo CFLAGS: -DGLES_SILENCE_DEPRECATION -Werror -Wno-deprecated-declarations -fmodules -fobjc-arc -x objective-c
#cgo LDFLAGS: -framework OpenGLES -framework QuartzCore

@import OpenGLES;
@import QuartzCore;

#include <CoreFoundation/CoreFoundation.h>
#include <OpenGLES/ES3/gl.h>

static CFTypeRef eagl_createContext(void) {
	EAGLContext *ctx = [[EAGLContext alloc] initWithAPI:kEAGLRenderingAPIOpenGLES3];
	if (ctx == nil) {
		ctx = [[EAGLContext alloc] initWithAPI:kEAGLRenderingAPIOpenGLES2];
	}
	return CFBridgingRetain(ctx);
}

static CFTypeRef eagl_currentContext(void) {
	return (__bridge CFTypeRef)[EAGLContext currentContext];
}

static int eagl_setCurrentContext(CFTypeRef ctxRef) {
	EAGLContext *ctx = (__bridge EAGLContext *)ctxRef;
	return [EAGLContext setCurrentContext:ctx] ? 1 : 0;
}

static int eagl_renderbufferStorage(CFTypeRef ctxRef, CFTypeRef layerRef, GLenum target) {
	EAGLContext *ctx = (__bridge EAGLContext *)ctxRef;
	CAEAGLLayer *layer = (__bridge CAEAGLLayer *)layerRef;
	return [ctx renderbufferStorage:target fromDrawable:layer] ? 1 : 0;
}

static int eagl_presentRenderbuffer(CFTypeRef ctxRef, GLenum target) {
	EAGLContext *ctx = (__bridge EAGLContext *)ctxRef;
	return [ctx presentRenderbuffer:target] ? 1 : 0;
}

static void eagl_setDrawableProperties(CFTypeRef layerRef, int retained, int rgba8) {
	CAEAGLLayer *layer = (__bridge CAEAGLLayer *)layerRef;
	layer.opaque = YES;
	layer.drawableProperties = @{
		kEAGLDrawablePropertyRetainedBacking: [NSNumber numberWithBool:retained != 0],
		kEAGLDrawablePropertyColorFormat: rgba8 ? kEAGLColorFormatRGBA8 : kEAGLColorFormatRGB565,
	};
}

static void eagl_layerBounds(CFTypeRef layerRef, CGFloat *x, CGFloat *y, CGFloat *w, CGFloat *h, CGFloat *scale) {
	CAEAGLLayer *layer = (__bridge CAEAGLLayer *)layerRef;
	CGRect b = layer.bounds;
	*x = b.origin.x;
	*y = b.origin.y;
	*w = b.size.width;
	*h = b.size.height;
	*scale = layer.contentsScale;
}
*/
import "C"

import (
	"errors"
	"fmt"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/gl"
	"github.com/cocosgo/glview/view"
)

// Platform tracks the EAGLContext current on the calling thread.
type Platform struct {
	// contexts maps native contexts to their Go handles, so
	// CurrentContext returns the same *Context that was bound.
	contexts map[C.CFTypeRef]*Context
}

// Context wraps an EAGLContext.
type Context struct {
	ref   C.CFTypeRef
	f     Functions
	owned bool
}

// Layer is a CAEAGLLayer drawable.
type Layer struct {
	ref C.CFTypeRef
}

func NewPlatform() *Platform {
	return &Platform{contexts: make(map[C.CFTypeRef]*Context)}
}

// NewContext creates an OpenGL ES 3 context, falling back to
// OpenGL ES 2.
func (p *Platform) NewContext() (*Context, error) {
	ref := C.eagl_createContext()
	if ref == 0 {
		return nil, errors.New("eagl: failed to create EAGLContext")
	}
	c := &Context{ref: ref, owned: true}
	p.contexts[ref] = c
	return c, nil
}

// Release unbinds and releases a context created by NewContext. The
// views using it must be closed first.
func (p *Platform) Release(c *Context) {
	if c.ref == 0 {
		return
	}
	if C.eagl_currentContext() == c.ref {
		C.eagl_setCurrentContext(0)
	}
	delete(p.contexts, c.ref)
	if c.owned {
		C.CFRelease(c.ref)
	}
	c.ref = 0
}

func (p *Platform) CurrentContext() view.Context {
	ref := C.eagl_currentContext()
	if ref == 0 {
		return nil
	}
	if c, ok := p.contexts[ref]; ok {
		return c
	}
	// A context bound outside this platform. It is neither retained
	// nor cached.
	return &Context{ref: ref}
}

func (p *Platform) SetCurrentContext(ctx view.Context) error {
	var ref C.CFTypeRef
	if ctx != nil {
		c, ok := ctx.(*Context)
		if !ok {
			return fmt.Errorf("eagl: foreign context %T", ctx)
		}
		if c.ref == 0 {
			return errors.New("eagl: context released")
		}
		ref = c.ref
	}
	if C.eagl_setCurrentContext(ref) == 0 {
		return errors.New("[EAGLContext setCurrentContext] failed")
	}
	return nil
}

func (c *Context) Functions() gl.Functions {
	return &c.f
}

// NewLayer wraps a CAEAGLLayer, such as the layer of a UIView whose
// layerClass is CAEAGLLayer.
func NewLayer(layer uintptr) *Layer {
	return &Layer{ref: C.CFTypeRef(layer)}
}

func (l *Layer) Bounds() f32.Rectangle {
	var x, y, w, h, scale C.CGFloat
	C.eagl_layerBounds(l.ref, &x, &y, &w, &h, &scale)
	return f32.Rect(float32(x), float32(y), float32(w), float32(h))
}

func (l *Layer) Scale() float32 {
	var x, y, w, h, scale C.CGFloat
	C.eagl_layerBounds(l.ref, &x, &y, &w, &h, &scale)
	return float32(scale)
}

func (l *Layer) SetProperties(props view.DrawableProperties) {
	retained, _ := props[view.PropRetainedBacking].(bool)
	format, _ := props[view.PropColorFormat].(view.ColorFormat)
	C.eagl_setDrawableProperties(l.ref, boolToInt(retained), boolToInt(format == view.RGBA8))
}

func (l *Layer) RenderbufferStorage(ctx view.Context, target gl.Enum) error {
	c, ok := ctx.(*Context)
	if !ok {
		return fmt.Errorf("eagl: foreign context %T", ctx)
	}
	if C.eagl_renderbufferStorage(c.ref, l.ref, C.GLenum(target)) == 0 {
		return errors.New("renderbufferStorage:fromDrawable: failed")
	}
	return nil
}

func (l *Layer) PresentRenderbuffer(ctx view.Context, target gl.Enum) error {
	c, ok := ctx.(*Context)
	if !ok {
		return fmt.Errorf("eagl: foreign context %T", ctx)
	}
	if C.eagl_presentRenderbuffer(c.ref, C.GLenum(target)) == 0 {
		return errors.New("presentRenderbuffer failed")
	}
	return nil
}

func boolToInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

var (
	_ view.Platform = (*Platform)(nil)
	_ view.Context  = (*Context)(nil)
	_ view.Drawable = (*Layer)(nil)
)
