// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"
	"testing"
)

func TestRectangleRound(t *testing.T) {
	tests := []struct {
		r    Rectangle
		want image.Point
	}{
		{Rect(0, 0, 320, 480), image.Pt(320, 480)},
		{Rect(10, 20, 319.6, 480.4), image.Pt(320, 480)},
		{Rect(0, 0, 100.5, 0.49), image.Pt(101, 0)},
		{Rect(-5, -5, 0, 0), image.Pt(0, 0)},
	}
	for _, test := range tests {
		if got := test.r.Round(); got != test.want {
			t.Errorf("%v.Round() = %v, want %v", test.r, got, test.want)
		}
	}
}

func TestRectangleCanon(t *testing.T) {
	r := Rectangle{Min: Pt(10, 10), Max: Pt(0, 5)}.Canon()
	if want := (Rectangle{Min: Pt(0, 5), Max: Pt(10, 10)}); r != want {
		t.Errorf("got %v, want %v", r, want)
	}
	if sz := r.Size(); sz != Pt(10, 5) {
		t.Errorf("got size %v, want {10 5}", sz)
	}
}
