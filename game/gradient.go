package game

import (
	"log/slog"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/telemetry"
)

// Program is a compiled gradient shader bound to a full-viewport quad.
type Program interface {
	SetTime(t float32)
	SetResolution(w, h float32)
	DrawQuad()
}

// Uniforms are the values fed to the gradient shader each frame.
type Uniforms struct {
	Time          float32
	Width, Height float32
}

// Gradient drives the shader background: it advances simulated time and
// pushes the uniforms before drawing the quad.
type Gradient struct {
	program  Program
	timestep float32
	uniforms Uniforms
	state    State
	tick     int32

	perf     *telemetry.PerfCollector
	logStats bool
}

// NewGradient creates a gradient driver for a loaded program.
func NewGradient(cfg *config.Config, program Program, opts Options) *Gradient {
	return &Gradient{
		program:  program,
		timestep: float32(cfg.Gradient.Timestep),
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats: opts.LogStats,
	}
}

// Handle applies one input event. Only resizes matter to the gradient.
func (g *Gradient) Handle(ev Event) {
	if g.state == Stopped {
		return
	}
	rs, ok := ev.(Resize)
	if !ok {
		return
	}
	g.uniforms.Width = float32(rs.W)
	g.uniforms.Height = float32(rs.H)
	if g.state == Uninitialized {
		g.state = Running
	}
	slog.Info("viewport resized", "width", rs.W, "height", rs.H)
}

// Frame advances time by one timestep, pushes time and resolution and
// draws the quad.
func (g *Gradient) Frame() {
	if g.state == Stopped {
		return
	}

	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseUniforms)
	g.uniforms.Time += g.timestep
	g.program.SetTime(g.uniforms.Time)
	g.program.SetResolution(g.uniforms.Width, g.uniforms.Height)

	g.perf.StartPhase(telemetry.PhaseQuad)
	g.program.DrawQuad()

	g.perf.EndTick()
	g.perf.RecordFrame()
	g.tick++

	if g.logStats && g.tick%int32(g.perf.WindowSize()) == 0 {
		g.perf.Stats().LogStats()
	}
}

// Stop moves the gradient to the terminal Stopped state.
func (g *Gradient) Stop() {
	g.state = Stopped
}

// Stopped reports whether Stop has been called.
func (g *Gradient) Stopped() bool {
	return g.state == Stopped
}

// State returns the lifecycle state.
func (g *Gradient) State() State {
	return g.state
}

// Uniforms returns the values pushed by the last frame.
func (g *Gradient) Uniforms() Uniforms {
	return g.uniforms
}

// Tick returns the number of frames rendered.
func (g *Gradient) Tick() int32 {
	return g.tick
}
