// Package components holds the ECS component types stored in the effect world.
package components

// Body holds the drawn size of a particle.
type Body struct {
	Radius float32
}
