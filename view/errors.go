// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"errors"
	"fmt"
	"image"

	"github.com/cocosgo/glview/f32"
)

var (
	// ErrStorage is the cause of a SurfaceAllocationError when the
	// drawable refused to provide renderbuffer storage.
	ErrStorage = errors.New("renderbuffer storage failed")
	// ErrIncomplete is the cause of a SurfaceAllocationError when the
	// assembled framebuffer is not complete.
	ErrIncomplete = errors.New("framebuffer incomplete")
)

// ContextBindError is returned when the platform refused to make a
// context current. The previous binding is left intact.
type ContextBindError struct {
	Err error
}

// SurfaceAllocationError is returned when GPU storage for a surface
// could not be allocated. No surface exists afterwards.
type SurfaceAllocationError struct {
	Size image.Point
	Err  error
}

// DegenerateMappingError is returned when converting coordinates
// against view bounds with a zero or negative dimension.
type DegenerateMappingError struct {
	Bounds f32.Rectangle
}

func (e *ContextBindError) Error() string {
	return fmt.Sprintf("view: make current failed: %v", e.Err)
}

func (e *ContextBindError) Unwrap() error {
	return e.Err
}

func (e *SurfaceAllocationError) Error() string {
	return fmt.Sprintf("view: allocating %dx%d surface: %v", e.Size.X, e.Size.Y, e.Err)
}

func (e *SurfaceAllocationError) Unwrap() error {
	return e.Err
}

func (e *DegenerateMappingError) Error() string {
	return fmt.Sprintf("view: cannot map coordinates from %vx%v view bounds", e.Bounds.Dx(), e.Bounds.Dy())
}
