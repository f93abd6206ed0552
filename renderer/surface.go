// Package renderer draws the backdrop pipelines with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

// ringSegments is the tessellation used for stroked circles.
const ringSegments = 48

// Surface draws to the current raylib frame.
type Surface struct {
	background rl.Color
}

// NewSurface creates a surface that clears to background.
func NewSurface(background color.RGBA) *Surface {
	return &Surface{background: background}
}

// Clear fills the frame with the background color.
func (s *Surface) Clear() {
	rl.ClearBackground(s.background)
}

// FillCircle draws a filled disc.
func (s *Surface) FillCircle(x, y, radius float32, p systems.Paint) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, p.Color())
}

// StrokeCircle draws a ring of the given width centered on radius.
func (s *Surface) StrokeCircle(x, y, radius, width float32, p systems.Paint) {
	inner := radius - width/2
	if inner < 0 {
		inner = 0
	}
	rl.DrawRing(rl.Vector2{X: x, Y: y}, inner, radius+width/2, 0, 360, ringSegments, p.Color())
}

// Line draws a line segment of the given width.
func (s *Surface) Line(x1, y1, x2, y2, width float32, p systems.Paint) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, width, p.Color())
}
