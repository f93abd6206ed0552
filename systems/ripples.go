package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/components"
)

// RippleParams configures the click ripple animation curve.
type RippleParams struct {
	Growth    float64 // radius added per frame
	Decay     float64 // opacity removed per frame
	MaxRadius float64
	Width     float32
	Color     Paint // alpha is replaced by the ripple opacity
}

// RippleView is a read-only copy of a live ripple.
type RippleView struct {
	X, Y    float32
	Radius  float64
	Opacity float64
}

// RippleSet owns the click ripples.
type RippleSet struct {
	world   *ecs.World
	mapper  *ecs.Map2[components.Position, components.Ripple]
	filter  ecs.Filter2[components.Position, components.Ripple]
	params  RippleParams
	expired []ecs.Entity
}

// NewRippleSet creates an empty ripple set.
func NewRippleSet(w *ecs.World, params RippleParams) *RippleSet {
	return &RippleSet{
		world:  w,
		mapper: ecs.NewMap2[components.Position, components.Ripple](w),
		filter: *ecs.NewFilter2[components.Position, components.Ripple](w),
		params: params,
	}
}

// Spawn adds a ripple at the click position with radius 0 and opacity 1.
func (s *RippleSet) Spawn(x, y float32) {
	pos := components.Position{X: x, Y: y}
	rip := components.Ripple{Opacity: 1, MaxRadius: s.params.MaxRadius}
	s.mapper.NewEntity(&pos, &rip)
}

// Prune removes every ripple whose opacity has reached zero and returns how
// many were removed. It runs before Update so a faded ripple is never drawn.
func (s *RippleSet) Prune() int {
	s.expired = s.expired[:0]
	query := s.filter.Query()
	for query.Next() {
		_, rip := query.Get()
		if rip.Expired() {
			s.expired = append(s.expired, query.Entity())
		}
	}
	for _, e := range s.expired {
		s.world.RemoveEntity(e)
	}
	return len(s.expired)
}

// UpdateAndDraw advances every ripple one frame and strokes it with its
// current opacity as alpha.
func (s *RippleSet) UpdateAndDraw(surf Surface) int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		pos, rip := query.Get()
		rip.Advance(s.params.Growth, s.params.Decay)

		paint := s.params.Color
		paint.Alpha = float32(rip.Opacity)
		surf.StrokeCircle(pos.X, pos.Y, float32(rip.Radius), s.params.Width, paint)
		n++
	}
	return n
}

// Frame prunes faded ripples, then advances and draws the rest.
func (s *RippleSet) Frame(surf Surface) (live, pruned int) {
	pruned = s.Prune()
	live = s.UpdateAndDraw(surf)
	return live, pruned
}

// Snapshot appends a copy of every live ripple to dst.
func (s *RippleSet) Snapshot(dst []RippleView) []RippleView {
	query := s.filter.Query()
	for query.Next() {
		pos, rip := query.Get()
		dst = append(dst, RippleView{X: pos.X, Y: pos.Y, Radius: rip.Radius, Opacity: rip.Opacity})
	}
	return dst
}

// Count returns the number of live ripples.
func (s *RippleSet) Count() int {
	query := s.filter.Query()
	n := query.Count()
	query.Close()
	return n
}
