package game

import "log/slog"

// Tuning holds the parameters that can be adjusted while running.
type Tuning struct {
	LinkDistance  float32
	PointerRadius float32
	Smoothing     float32
}

// Tuning returns the live-adjustable parameters.
func (f *Field) Tuning() Tuning {
	lp := f.links.Params()
	return Tuning{
		LinkDistance:  lp.Distance,
		PointerRadius: lp.PointerRadius,
		Smoothing:     f.follower.Params().Smoothing,
	}
}

// SetTuning applies adjusted parameters from the next frame on.
func (f *Field) SetTuning(t Tuning) {
	if t == f.Tuning() {
		return
	}
	lp := f.links.Params()
	lp.Distance = t.LinkDistance
	lp.PointerRadius = t.PointerRadius
	f.links.SetParams(lp, f.particles.Bounds())

	fp := f.follower.Params()
	fp.Smoothing = t.Smoothing
	f.follower.SetParams(fp)

	slog.Debug("tuning changed",
		"link_distance", t.LinkDistance,
		"pointer_radius", t.PointerRadius,
		"smoothing", t.Smoothing,
	)
}

// Reseed replaces the population for the current viewport without
// touching the pointer, follower or ripples.
func (f *Field) Reseed() int {
	if f.state != Running {
		return 0
	}
	n := f.particles.Reseed(f.width, f.height)
	slog.Info("field reseeded", "particles", n)
	return n
}
