package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/components"
)

// FieldParams configures population density and particle appearance.
type FieldParams struct {
	DensityDivisor float64 // viewport area per particle
	Radius         float32
	MaxSpeed       float32 // velocity components drawn from [-MaxSpeed, MaxSpeed]
	Color          Paint
}

// Point is a particle position captured for the link pass.
type Point struct {
	X, Y float32
}

// ParticleField owns the particle population: reseeding, stepping and drawing.
type ParticleField struct {
	world   *ecs.World
	mapper  *ecs.Map3[components.Position, components.Velocity, components.Body]
	filter  ecs.Filter3[components.Position, components.Velocity, components.Body]
	physics *PhysicsSystem
	rng     *rand.Rand
	params  FieldParams

	points  []Point // positions captured by the last Draw
	scratch []ecs.Entity
}

// NewParticleField creates an empty field. Call Reseed to populate it.
func NewParticleField(w *ecs.World, params FieldParams, rng *rand.Rand) *ParticleField {
	return &ParticleField{
		world:   w,
		mapper:  ecs.NewMap3[components.Position, components.Velocity, components.Body](w),
		filter:  *ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		physics: NewPhysicsSystem(w, Bounds{}),
		rng:     rng,
		params:  params,
	}
}

// PopulationFor returns floor(width*height / divisor); zero or negative
// areas give an empty population.
func PopulationFor(width, height int, divisor float64) int {
	area := float64(width) * float64(height)
	if area <= 0 || divisor <= 0 {
		return 0
	}
	return int(area / divisor)
}

// Reseed discards every particle and creates a fresh population sized for
// the viewport, with uniform positions and velocities.
func (f *ParticleField) Reseed(width, height int) int {
	f.scratch = f.scratch[:0]
	query := f.filter.Query()
	for query.Next() {
		f.scratch = append(f.scratch, query.Entity())
	}
	for _, e := range f.scratch {
		f.world.RemoveEntity(e)
	}

	w, h := float32(width), float32(height)
	f.physics.SetBounds(Bounds{Width: w, Height: h})

	n := PopulationFor(width, height, f.params.DensityDivisor)
	for i := 0; i < n; i++ {
		pos := components.Position{
			X: f.rng.Float32() * w,
			Y: f.rng.Float32() * h,
		}
		vel := components.Velocity{
			X: (f.rng.Float32() - 0.5) * 2 * f.params.MaxSpeed,
			Y: (f.rng.Float32() - 0.5) * 2 * f.params.MaxSpeed,
		}
		body := components.Body{Radius: f.params.Radius}
		f.mapper.NewEntity(&pos, &vel, &body)
	}
	f.points = f.points[:0]
	return n
}

// Step advances every particle by one frame.
func (f *ParticleField) Step() {
	f.physics.Update()
}

// Draw renders every particle as a filled disc and captures the positions
// for the link pass.
func (f *ParticleField) Draw(s Surface) {
	f.points = f.points[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, _, body := query.Get()
		s.FillCircle(pos.X, pos.Y, body.Radius, f.params.Color)
		f.points = append(f.points, Point{X: pos.X, Y: pos.Y})
	}
}

// Points returns the positions captured by the last Draw. The slice is
// reused between frames.
func (f *ParticleField) Points() []Point {
	return f.points
}

// Count returns the current number of particles.
func (f *ParticleField) Count() int {
	query := f.filter.Query()
	n := query.Count()
	query.Close()
	return n
}

// Bounds returns the viewport the particles reflect inside.
func (f *ParticleField) Bounds() Bounds {
	return f.physics.Bounds()
}

// Each visits every particle. The pointers are only valid during the call.
func (f *ParticleField) Each(fn func(pos *components.Position, vel *components.Velocity)) {
	query := f.filter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		fn(pos, vel)
	}
}
