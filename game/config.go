package game

import (
	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/systems"
)

// Options configures a run beyond the effect parameters in config.
type Options struct {
	Seed        int64
	LogStats    bool
	StatsWindow int    // ticks per stats window (0 = use config)
	OutputDir   string // empty disables CSV output
}

func fieldParams(cfg *config.Config) systems.FieldParams {
	return systems.FieldParams{
		DensityDivisor: cfg.Field.DensityDivisor,
		Radius:         float32(cfg.Field.ParticleRadius),
		MaxSpeed:       float32(cfg.Field.MaxSpeed),
		Color:          systems.PaintOf(cfg.Derived.ParticleColor, 1),
	}
}

func linkParams(cfg *config.Config) systems.LinkParams {
	return systems.LinkParams{
		Distance:      float32(cfg.Field.LinkDistance),
		Width:         float32(cfg.Field.LinkWidth),
		Color:         systems.PaintOf(cfg.Derived.LinkColor, 1),
		PointerRadius: float32(cfg.Pointer.Radius),
		PointerWidth:  float32(cfg.Pointer.LinkWidth),
		PointerColor:  systems.PaintOf(cfg.Derived.PointerColor, 1),
	}
}

func followerParams(cfg *config.Config) systems.FollowerParams {
	return systems.FollowerParams{
		Smoothing:  float32(cfg.Follower.Smoothing),
		DotRadius:  float32(cfg.Follower.DotRadius),
		DotPaint:   systems.PaintOf(cfg.Derived.DotColor, float32(cfg.Follower.DotAlpha)),
		RingRadius: float32(cfg.Follower.RingRadius),
		RingWidth:  float32(cfg.Follower.RingWidth),
		RingPaint:  systems.PaintOf(cfg.Derived.RingColor, float32(cfg.Follower.RingAlpha)),
	}
}

func rippleParams(cfg *config.Config) systems.RippleParams {
	return systems.RippleParams{
		Growth:    cfg.Ripple.Growth,
		Decay:     cfg.Ripple.Decay,
		MaxRadius: cfg.Ripple.MaxRadius,
		Width:     float32(cfg.Ripple.Width),
		Color:     systems.PaintOf(cfg.Derived.RippleColor, 1),
	}
}
