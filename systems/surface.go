// Package systems contains the per-frame systems of the particle field:
// physics, links, the pointer follower and click ripples.
package systems

import "image/color"

// Paint is a drawing color with a fractional alpha in [0, 1].
type Paint struct {
	R, G, B uint8
	Alpha   float32
}

// PaintOf builds a Paint from an opaque color and an alpha.
func PaintOf(c color.RGBA, alpha float32) Paint {
	return Paint{R: c.R, G: c.G, B: c.B, Alpha: alpha}
}

// Color converts the paint to a non-premultiplied 8-bit color, clamping alpha.
func (p Paint) Color() color.RGBA {
	a := p.Alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: uint8(a*255 + 0.5)}
}

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	FillCircle(x, y, radius float32, p Paint)
	StrokeCircle(x, y, radius, width float32, p Paint)
	Line(x1, y1, x2, y2, width float32, p Paint)
}
