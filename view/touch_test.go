// SPDX-License-Identifier: Unlicense OR MIT

package view_test

import (
	"testing"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/view"
)

type recorder struct {
	events []string
	last   view.TouchEvent
}

func (r *recorder) TouchBegin(ev view.TouchEvent)  { r.add("begin", ev) }
func (r *recorder) TouchMove(ev view.TouchEvent)   { r.add("move", ev) }
func (r *recorder) TouchEnd(ev view.TouchEvent)    { r.add("end", ev) }
func (r *recorder) TouchCancel(ev view.TouchEvent) { r.add("cancel", ev) }

func (r *recorder) add(name string, ev view.TouchEvent) {
	r.events = append(r.events, name)
	r.last = ev
}

func TestTouchForwarding(t *testing.T) {
	e := newTestEnv(f32.Rect(0, 0, 32, 32), 1)
	v := newTestView(t, e)
	defer v.Close()

	ev := view.TouchEvent{Touches: []view.Touch{{ID: 1, Position: f32.Pt(3, 4)}}}
	// No delegate: events are dropped.
	v.TouchBegin(ev)

	r := new(recorder)
	v.SetTouchDelegate(r)
	v.TouchBegin(ev)
	v.TouchMove(ev)
	v.TouchEnd(ev)
	v.TouchCancel(ev)
	want := []string{"begin", "move", "end", "cancel"}
	if len(r.events) != len(want) {
		t.Fatalf("got events %v, want %v", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Errorf("event %d: got %s, want %s", i, r.events[i], want[i])
		}
	}
	if len(r.last.Touches) != 1 || r.last.Touches[0] != ev.Touches[0] {
		t.Errorf("event modified: got %+v", r.last)
	}

	v.SetTouchDelegate(nil)
	v.TouchEnd(ev)
	if len(r.events) != len(want) {
		t.Errorf("event delivered after removing the delegate")
	}
}
