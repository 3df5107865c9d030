// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"errors"
	"image"
	"testing"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/gl"
)

func TestPlatformBindFailureKeepsCurrent(t *testing.T) {
	p := new(Platform)
	c1, c2 := NewContext(p), NewContext(p)
	if err := p.SetCurrentContext(c1); err != nil {
		t.Fatal(err)
	}
	p.BindErr = errors.New("refused")
	if err := p.SetCurrentContext(c2); err == nil {
		t.Fatal("bind succeeded with BindErr set")
	}
	if p.Current() != c1 {
		t.Errorf("current context changed after failed bind")
	}
}

func TestReleasedContextCannotBind(t *testing.T) {
	p := new(Platform)
	c := NewContext(p)
	if err := p.SetCurrentContext(c); err != nil {
		t.Fatal(err)
	}
	c.Release()
	if p.CurrentContext() != nil {
		t.Errorf("released context still current")
	}
	if err := p.SetCurrentContext(c); err == nil {
		t.Errorf("released context was bound")
	}
}

func TestCallsWithoutCurrentContext(t *testing.T) {
	p := new(Platform)
	c := NewContext(p)
	f := c.Functions()
	if rb := f.CreateRenderbuffer(); rb.Valid() {
		t.Errorf("created %v without a current context", rb)
	}
	if got := c.Misuse(); got != 1 {
		t.Errorf("got %d misused calls, want 1", got)
	}
}

func TestFramebufferCompleteness(t *testing.T) {
	p := new(Platform)
	c := NewContext(p)
	if err := p.SetCurrentContext(c); err != nil {
		t.Fatal(err)
	}
	f := c.Functions()
	color := f.CreateRenderbuffer()
	f.BindRenderbuffer(gl.RENDERBUFFER, color)
	f.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, 64, 32)
	depth := f.CreateRenderbuffer()
	f.BindRenderbuffer(gl.RENDERBUFFER, depth)
	f.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, 32, 32)
	fb := f.CreateFramebuffer()
	f.BindFramebuffer(gl.FRAMEBUFFER, fb)
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT {
		t.Errorf("empty framebuffer: got status %#x", st)
	}
	f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, color)
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		t.Errorf("color only: got status %#x", st)
	}
	f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth)
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS {
		t.Errorf("mismatched depth: got status %#x", st)
	}
	if e := f.GetError(); e != gl.NO_ERROR {
		t.Errorf("unexpected GL error %#x", e)
	}
}

func TestInvalidTarget(t *testing.T) {
	p := new(Platform)
	c := NewContext(p)
	if err := p.SetCurrentContext(c); err != nil {
		t.Fatal(err)
	}
	f := c.Functions()
	rb := f.CreateRenderbuffer()
	// Binding a renderbuffer through the framebuffer target is an error
	// and leaves the binding alone.
	f.BindFramebuffer(gl.RENDERBUFFER, gl.Framebuffer{V: rb.V})
	if e := f.GetError(); e != gl.INVALID_ENUM {
		t.Errorf("got error %#x, want INVALID_ENUM", e)
	}
	if fb, _ := c.Bindings(); fb.Valid() {
		t.Errorf("framebuffer %v bound after invalid call", fb)
	}
}

func TestDrawableStorage(t *testing.T) {
	p := new(Platform)
	c := NewContext(p)
	if err := p.SetCurrentContext(c); err != nil {
		t.Fatal(err)
	}
	d := NewDrawable(f32.Rect(0, 0, 320, 480), 2)
	f := c.Functions()
	rb := f.CreateRenderbuffer()
	f.BindRenderbuffer(gl.RENDERBUFFER, rb)
	if err := d.RenderbufferStorage(c, gl.RENDERBUFFER); err != nil {
		t.Fatal(err)
	}
	_, sz, ok := c.RenderbufferStorage(rb)
	if !ok || sz != image.Pt(640, 960) {
		t.Errorf("got storage %v, want (640,960)", sz)
	}
	if err := d.PresentRenderbuffer(c, gl.RENDERBUFFER); err != nil {
		t.Fatal(err)
	}
	if n, last := d.Presented(); n != 1 || last != rb {
		t.Errorf("got %d presents of %v, want 1 of %v", n, last, rb)
	}
}
