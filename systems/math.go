package systems

import "math"

// distance returns the Euclidean distance between two points.
func distance(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// falloff returns the linear link alpha for a distance d within reach:
// 1 at d=0, 0 at d=reach.
func falloff(d, reach float32) float32 {
	return 1 - d/reach
}
