package telemetry

import "github.com/pthm-cable/backdrop/systems"

// DrawCounts tallies the draw calls made during one frame.
type DrawCounts struct {
	Clears  int
	Fills   int
	Strokes int
	Lines   int
}

// Recorder is a Surface that counts draw calls and optionally forwards them
// to another surface. With no target it is the headless surface.
type Recorder struct {
	target systems.Surface
	frame  DrawCounts
	total  DrawCounts
}

// NewRecorder creates a recorder forwarding to target, which may be nil.
func NewRecorder(target systems.Surface) *Recorder {
	return &Recorder{target: target}
}

// Clear counts and forwards a clear.
func (r *Recorder) Clear() {
	r.frame.Clears++
	if r.target != nil {
		r.target.Clear()
	}
}

// FillCircle counts and forwards a filled circle.
func (r *Recorder) FillCircle(x, y, radius float32, p systems.Paint) {
	r.frame.Fills++
	if r.target != nil {
		r.target.FillCircle(x, y, radius, p)
	}
}

// StrokeCircle counts and forwards a stroked circle.
func (r *Recorder) StrokeCircle(x, y, radius, width float32, p systems.Paint) {
	r.frame.Strokes++
	if r.target != nil {
		r.target.StrokeCircle(x, y, radius, width, p)
	}
}

// Line counts and forwards a line.
func (r *Recorder) Line(x1, y1, x2, y2, width float32, p systems.Paint) {
	r.frame.Lines++
	if r.target != nil {
		r.target.Line(x1, y1, x2, y2, width, p)
	}
}

// EndFrame returns the counts of the current frame and starts a new one.
func (r *Recorder) EndFrame() DrawCounts {
	c := r.frame
	r.total.Clears += c.Clears
	r.total.Fills += c.Fills
	r.total.Strokes += c.Strokes
	r.total.Lines += c.Lines
	r.frame = DrawCounts{}
	return c
}

// Calls returns the total number of draw calls counted.
func (c DrawCounts) Calls() int {
	return c.Clears + c.Fills + c.Strokes + c.Lines
}

// Total returns the counts accumulated over every finished frame.
func (r *Recorder) Total() DrawCounts {
	return r.total
}
