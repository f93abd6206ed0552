package game

import (
	"context"
	"log/slog"
)

// Host owns the frame schedule and the input source.
type Host interface {
	// NextFrame blocks until the next frame may start. It returns false
	// once the host has closed.
	NextFrame() bool
	// PollEvents returns the events received since the last poll.
	PollEvents() []Event
	// Present finishes the frame.
	Present()
}

// Scene is a frame driver the loop can run.
type Scene interface {
	Handle(ev Event)
	Frame()
	Stopped() bool
}

// Run drives scene on host until the host closes, the scene stops, maxTicks
// frames have been rendered (0 = unlimited) or ctx is cancelled. It returns
// the number of frames rendered and ctx.Err() on cancellation.
func Run(ctx context.Context, host Host, scene Scene, maxTicks int) (int, error) {
	ticks := 0
	for {
		if maxTicks > 0 && ticks >= maxTicks {
			slog.Info("max ticks reached", "tick", ticks)
			return ticks, nil
		}
		if scene.Stopped() {
			return ticks, nil
		}
		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		default:
		}

		if !host.NextFrame() {
			return ticks, nil
		}
		for _, ev := range host.PollEvents() {
			scene.Handle(ev)
		}
		scene.Frame()
		host.Present()
		ticks++
	}
}
