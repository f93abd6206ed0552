package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/components"
)

// Bounds represents the viewport the particles live in.
type Bounds struct {
	Width, Height float32
}

// PhysicsSystem moves particles ballistically and reflects them at the edges.
type PhysicsSystem struct {
	filter ecs.Filter3[components.Position, components.Velocity, components.Body]
	bounds Bounds
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		bounds: bounds,
	}
}

// SetBounds updates the reflection bounds.
func (s *PhysicsSystem) SetBounds(b Bounds) {
	s.bounds = b
}

// Bounds returns the current reflection bounds.
func (s *PhysicsSystem) Bounds() Bounds {
	return s.bounds
}

// Update runs one step for every particle.
func (s *PhysicsSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		Advance(pos, vel, s.bounds)
	}
}

// Advance moves one particle by its velocity, then negates each velocity
// component whose new coordinate lies outside [0, bound]. The check happens
// after the move, so a particle may sit out of bounds for one frame.
func Advance(pos *components.Position, vel *components.Velocity, b Bounds) {
	pos.X += vel.X
	pos.Y += vel.Y

	if pos.X < 0 || pos.X > b.Width {
		vel.X = -vel.X
	}
	if pos.Y < 0 || pos.Y > b.Height {
		vel.Y = -vel.Y
	}
}
