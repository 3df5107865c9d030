// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/cocosgo/glview/gl"
)

// ColorFormat is the pixel format of the color renderbuffer.
type ColorFormat uint8

// DepthFormat is the format of the optional depth renderbuffer.
type DepthFormat uint8

// PixelFormat is fixed for the lifetime of a View.
type PixelFormat struct {
	Color ColorFormat
	Depth DepthFormat
}

const (
	RGB565 ColorFormat = iota
	RGBA8
)

const (
	DepthNone DepthFormat = iota
	Depth16
	Depth24
)

// TextureFormat returns the WebGPU texture format matching the color
// format, or TextureFormatUndefined if there is none.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch f.Color {
	case RGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// Enum returns the sized internal format of the color storage.
func (c ColorFormat) Enum() gl.Enum {
	if c == RGBA8 {
		return gl.RGBA8
	}
	return gl.RGB565
}

func (c ColorFormat) String() string {
	switch c {
	case RGB565:
		return "rgb565"
	case RGBA8:
		return "rgba8"
	default:
		return fmt.Sprintf("ColorFormat(%d)", uint8(c))
	}
}

func (c ColorFormat) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ColorFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "rgb565":
		*c = RGB565
	case "rgba8":
		*c = RGBA8
	default:
		return fmt.Errorf("view: unknown color format %q", text)
	}
	return nil
}

// Enum returns the renderbuffer storage format, or 0 for DepthNone.
func (d DepthFormat) Enum() gl.Enum {
	switch d {
	case Depth16:
		return gl.DEPTH_COMPONENT16
	case Depth24:
		return gl.DEPTH_COMPONENT24
	default:
		return 0
	}
}

func (d DepthFormat) String() string {
	switch d {
	case DepthNone:
		return "none"
	case Depth16:
		return "depth16"
	case Depth24:
		return "depth24"
	default:
		return fmt.Sprintf("DepthFormat(%d)", uint8(d))
	}
}

func (d DepthFormat) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DepthFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*d = DepthNone
	case "depth16":
		*d = Depth16
	case "depth24":
		*d = Depth24
	default:
		return fmt.Errorf("view: unknown depth format %q", text)
	}
	return nil
}
