package game

import "math"

// Shade is the CPU reference of the gradient fragment shader. It returns
// the gray level at fragment (x, y) for the given uniforms.
func Shade(x, y float64, u Uniforms, base, amplitude float64) float64 {
	if u.Width <= 0 || u.Height <= 0 {
		return base
	}
	ux := x / float64(u.Width)
	uy := y / float64(u.Height)
	t := float64(u.Time)
	return base + amplitude*math.Sin(ux*3+t*0.5)*math.Cos(uy*3-t*0.3)
}
