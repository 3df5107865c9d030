// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"time"

	"github.com/cocosgo/glview/f32"
)

// TouchDelegate receives the raw touch events of the host view.
type TouchDelegate interface {
	TouchBegin(ev TouchEvent)
	TouchMove(ev TouchEvent)
	TouchEnd(ev TouchEvent)
	TouchCancel(ev TouchEvent)
}

// TouchEvent is a touch event as delivered by the host view, in view
// coordinates.
type TouchEvent struct {
	Touches []Touch
	Time    time.Duration
	// Native is the platform event, if any.
	Native interface{}
}

type Touch struct {
	ID       int
	Position f32.Point
}

// SetTouchDelegate sets the receiver of touch events. A nil delegate
// drops them.
func (v *View) SetTouchDelegate(d TouchDelegate) {
	v.touch = d
}

func (v *View) TouchDelegate() TouchDelegate {
	return v.touch
}

func (v *View) TouchBegin(ev TouchEvent) {
	if v.touch != nil {
		v.touch.TouchBegin(ev)
	}
}

func (v *View) TouchMove(ev TouchEvent) {
	if v.touch != nil {
		v.touch.TouchMove(ev)
	}
}

func (v *View) TouchEnd(ev TouchEvent) {
	if v.touch != nil {
		v.touch.TouchEnd(ev)
	}
}

func (v *View) TouchCancel(ev TouchEvent) {
	if v.touch != nil {
		v.touch.TouchCancel(ev)
	}
}
