// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"image"

	xf32 "golang.org/x/image/math/f32"

	"github.com/cocosgo/glview/f32"
)

// ViewPointToSurface converts p from the coordinate space of view to
// the pixel space of a surface of the given size. Each axis is scaled
// independently.
func ViewPointToSurface(p f32.Point, view f32.Rectangle, size image.Point) (f32.Point, error) {
	m, err := surfaceTransform(view, size)
	if err != nil {
		return f32.Point{}, err
	}
	return transform(m, p), nil
}

// ViewRectToSurface is like ViewPointToSurface for rectangles. The
// corners are mapped as points and the result is canonical.
func ViewRectToSurface(r f32.Rectangle, view f32.Rectangle, size image.Point) (f32.Rectangle, error) {
	m, err := surfaceTransform(view, size)
	if err != nil {
		return f32.Rectangle{}, err
	}
	return f32.Rectangle{Min: transform(m, r.Min), Max: transform(m, r.Max)}.Canon(), nil
}

// PointToSurface maps a point in the bounds of v to surface pixels.
func (v *View) PointToSurface(p f32.Point) (f32.Point, error) {
	return ViewPointToSurface(p, v.bounds, v.size)
}

// RectToSurface maps a rectangle in the bounds of v to surface pixels.
func (v *View) RectToSurface(r f32.Rectangle) (f32.Rectangle, error) {
	return ViewRectToSurface(r, v.bounds, v.size)
}

// surfaceTransform returns the transform moving the view origin to
// zero, then scaling each axis to the surface size.
func surfaceTransform(view f32.Rectangle, size image.Point) (xf32.Aff3, error) {
	w, h := view.Dx(), view.Dy()
	// Written to also reject NaN.
	if !(w > 0 && h > 0) {
		return xf32.Aff3{}, &DegenerateMappingError{Bounds: view}
	}
	offset := xf32.Aff3{
		1, 0, -view.Min.X,
		0, 1, -view.Min.Y,
	}
	scale := xf32.Aff3{
		float32(size.X) / w, 0, 0,
		0, float32(size.Y) / h, 0,
	}
	return mul(scale, offset), nil
}

// mul returns the transform applying b, then a.
func mul(a, b xf32.Aff3) xf32.Aff3 {
	return xf32.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func transform(m xf32.Aff3, p f32.Point) f32.Point {
	v := xf32.Vec2{p.X, p.Y}
	return f32.Point{
		X: m[0]*v[0] + m[1]*v[1] + m[2],
		Y: m[3]*v[0] + m[4]*v[1] + m[5],
	}
}
