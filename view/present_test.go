// SPDX-License-Identifier: Unlicense OR MIT

package view_test

import (
	"errors"
	"testing"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/gl"
	"github.com/cocosgo/glview/headless"
	"github.com/cocosgo/glview/view"
)

func TestPresentPreservesCallerState(t *testing.T) {
	e := newTestEnv(f32.Rect(0, 0, 320, 480), 2)
	v := newTestView(t, e)
	defer v.Close()

	other := headless.NewContext(e.p)
	for _, caller := range []*headless.Context{nil, e.c, other} {
		if caller == nil {
			e.p.SetCurrentContext(nil)
		} else {
			e.p.SetCurrentContext(caller)
		}
		_, rb := e.c.Bindings()
		for i := 0; i < 2; i++ {
			if err := v.Present(); err != nil {
				t.Fatal(err)
			}
			if got := e.p.Current(); got != caller {
				t.Errorf("present %d: current context changed", i)
			}
			if _, got := e.c.Bindings(); got != rb {
				t.Errorf("present %d: renderbuffer binding changed from %v to %v", i, rb, got)
			}
		}
	}
	n, last := e.d.Presented()
	if n != 6 {
		t.Errorf("got %d frames presented, want 6", n)
	}
	if last != v.Surface().Color {
		t.Errorf("presented %v, want color buffer %v", last, v.Surface().Color)
	}
	e.checkNoMisuse(t)
}

func TestPresentFailureIsDropped(t *testing.T) {
	e := newTestEnv(f32.Rect(0, 0, 64, 64), 1)
	v := newTestView(t, e)
	defer v.Close()
	s := v.Surface()

	e.d.PresentErr = errors.New("layer detached")
	if err := v.Present(); err != nil {
		t.Fatalf("present failure returned %v", err)
	}
	if v.Surface() != s {
		t.Error("surface recreated after present failure")
	}
	e.d.PresentErr = nil
	if err := v.Present(); err != nil {
		t.Fatal(err)
	}
	if n, _ := e.d.Presented(); n != 1 {
		t.Errorf("got %d frames presented, want 1", n)
	}
}

func TestPresentBindFailure(t *testing.T) {
	e := newTestEnv(f32.Rect(0, 0, 64, 64), 1)
	v := newTestView(t, e)
	defer v.Close()
	v.ClearCurrent()

	e.p.BindErr = errors.New("refused")
	var bindErr *view.ContextBindError
	if err := v.Present(); !errors.As(err, &bindErr) {
		t.Errorf("got error %v, want a ContextBindError", err)
	}
	e.p.BindErr = nil
	if n, _ := e.d.Presented(); n != 0 {
		t.Errorf("got %d frames presented, want 0", n)
	}
}

func TestPresentWithoutSurface(t *testing.T) {
	e := newTestEnv(f32.Rect(0, 0, 64, 64), 1)
	v := newTestView(t, e)
	v.Close()
	if err := v.Present(); err != nil {
		t.Fatal(err)
	}
	if n, _ := e.d.Presented(); n != 0 {
		t.Errorf("got %d frames presented, want 0", n)
	}
	if _, rb := e.c.Bindings(); rb != (gl.Renderbuffer{}) {
		t.Errorf("renderbuffer %v bound", rb)
	}
}
