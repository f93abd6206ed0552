// Package game drives the two backdrop pipelines frame by frame: the
// particle field and the shader gradient.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/telemetry"
)

// Field holds the complete particle field state.
type Field struct {
	world *ecs.World
	rng   *rand.Rand

	surface  systems.Surface
	recorder *telemetry.Recorder

	particles *systems.ParticleField
	links     *systems.LinkRenderer
	follower  *systems.Follower
	ripples   *systems.RippleSet

	// State
	state         State
	pointer       systems.Pointer
	width, height int
	tick          int32

	// Last frame results
	lastLinks   systems.LinkCounts
	lastRipples int
	lastDraws   telemetry.DrawCounts

	// Telemetry
	perf          *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
}

// NewField creates a field that draws to surface, or only counts draw calls
// when surface is nil. It stays Uninitialized until the first Resize event.
func NewField(cfg *config.Config, surface systems.Surface, opts Options) (*Field, error) {
	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	recorder := telemetry.NewRecorder(surface)
	f := &Field{
		world:         world,
		rng:           rng,
		surface:       recorder,
		recorder:      recorder,
		particles:     systems.NewParticleField(world, fieldParams(cfg), rng),
		links:         systems.NewLinkRenderer(linkParams(cfg), systems.Bounds{}),
		follower:      systems.NewFollower(followerParams(cfg), 0, 0),
		ripples:       systems.NewRippleSet(world, rippleParams(cfg)),
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:     telemetry.NewCollector(statsWindow),
		outputManager: om,
		logStats:      opts.LogStats,
	}
	return f, nil
}

// Handle applies one input event. Stopped fields ignore every event.
func (f *Field) Handle(ev Event) {
	if f.state == Stopped {
		return
	}
	switch ev := ev.(type) {
	case Resize:
		f.resize(ev.W, ev.H)
	case PointerMove:
		f.pointer = systems.PointerAt(ev.X, ev.Y)
	case PointerLeave:
		f.pointer = systems.NoPointer()
	case Click:
		f.ripples.Spawn(ev.X, ev.Y)
		f.collector.RecordClick()
	}
}

// resize reseeds the population for the new viewport. The first resize
// centers the pointer and follower and starts the field.
func (f *Field) resize(w, h int) {
	f.width, f.height = w, h
	n := f.particles.Reseed(w, h)
	f.links.Resize(f.particles.Bounds())
	f.collector.RecordResize()

	if f.state == Uninitialized {
		cx, cy := float32(w)/2, float32(h)/2
		f.pointer = systems.PointerAt(cx, cy)
		f.follower.MoveTo(cx, cy)
		f.setState(Running)
	}

	slog.Info("viewport resized", "width", w, "height", h, "particles", n)
}

func (f *Field) setState(s State) {
	slog.Info("field state", "from", f.state.String(), "to", s.String())
	f.state = s
}

// Frame renders one frame: clear, step and draw particles, links, the
// follower, then prune, advance and draw ripples.
func (f *Field) Frame() {
	if f.state == Stopped {
		return
	}

	f.perf.StartTick()

	f.perf.StartPhase(telemetry.PhaseClear)
	f.surface.Clear()

	f.perf.StartPhase(telemetry.PhasePhysics)
	f.particles.Step()

	f.perf.StartPhase(telemetry.PhaseParticles)
	f.particles.Draw(f.surface)

	f.perf.StartPhase(telemetry.PhaseLinks)
	f.lastLinks = f.links.Draw(f.surface, f.particles.Points(), f.pointer)

	f.perf.StartPhase(telemetry.PhaseFollower)
	if f.state == Running && f.follower.Update(f.pointer) {
		f.follower.Draw(f.surface)
	}

	f.perf.StartPhase(telemetry.PhaseRipples)
	live, pruned := f.ripples.Frame(f.surface)
	f.lastRipples = live
	f.lastDraws = f.recorder.EndFrame()

	f.perf.EndTick()
	f.perf.RecordFrame()
	f.tick++

	f.collector.RecordFrame(telemetry.FrameSample{
		Links:          f.lastLinks.Pairs,
		PointerLinks:   f.lastLinks.Pointer,
		PointerPresent: f.pointer.Present(),
		RipplesExpired: pruned,
		DrawCalls:      f.lastDraws.Calls(),
	})
	f.flushTelemetry()
}

// Stop moves the field to the terminal Stopped state and closes output files.
func (f *Field) Stop() {
	if f.state == Stopped {
		return
	}
	f.setState(Stopped)
	if err := f.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Stopped reports whether Stop has been called.
func (f *Field) Stopped() bool {
	return f.state == Stopped
}

// State returns the lifecycle state.
func (f *Field) State() State {
	return f.state
}

// Tick returns the number of frames rendered.
func (f *Field) Tick() int32 {
	return f.tick
}

// Size returns the current viewport size.
func (f *Field) Size() (w, h int) {
	return f.width, f.height
}

// Particles returns the current number of particles.
func (f *Field) Particles() int {
	return f.particles.Count()
}

// Ripples returns the number of ripples drawn by the last frame.
func (f *Field) Ripples() int {
	return f.lastRipples
}

// RippleViews appends a copy of every live ripple to dst.
func (f *Field) RippleViews(dst []systems.RippleView) []systems.RippleView {
	return f.ripples.Snapshot(dst)
}

// Links returns the link counts of the last frame.
func (f *Field) Links() systems.LinkCounts {
	return f.lastLinks
}

// Draws returns the draw calls made by the last frame.
func (f *Field) Draws() telemetry.DrawCounts {
	return f.lastDraws
}

// Pointer returns the current pointer.
func (f *Field) Pointer() systems.Pointer {
	return f.pointer
}

// FollowerPos returns the follower position.
func (f *Field) FollowerPos() (x, y float32) {
	return f.follower.X, f.follower.Y
}

// Perf returns the rolling performance stats.
func (f *Field) Perf() telemetry.PerfStats {
	return f.perf.Stats()
}
