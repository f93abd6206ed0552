package components

// Position represents an entity's position in viewport pixels.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in pixels per frame.
type Velocity struct {
	X, Y float32
}
