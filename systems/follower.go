package systems

// FollowerParams configures the smoothed pointer follower.
type FollowerParams struct {
	Smoothing  float32 // fraction of the remaining distance covered per frame
	DotRadius  float32
	DotPaint   Paint
	RingRadius float32
	RingWidth  float32
	RingPaint  Paint
}

// Follower eases a visual marker toward the live pointer.
type Follower struct {
	X, Y   float32
	params FollowerParams
}

// NewFollower creates a follower at the given position.
func NewFollower(params FollowerParams, x, y float32) *Follower {
	return &Follower{X: x, Y: y, params: params}
}

// Params returns the follower parameters.
func (f *Follower) Params() FollowerParams {
	return f.params
}

// SetParams replaces the follower parameters.
func (f *Follower) SetParams(params FollowerParams) {
	f.params = params
}

// MoveTo places the follower without easing.
func (f *Follower) MoveTo(x, y float32) {
	f.X = x
	f.Y = y
}

// Update eases toward the pointer on each axis. An absent pointer leaves
// the follower where it is. Returns whether the pointer was present.
func (f *Follower) Update(pointer Pointer) bool {
	px, py, ok := pointer.Get()
	if !ok {
		return false
	}
	f.X += (px - f.X) * f.params.Smoothing
	f.Y += (py - f.Y) * f.params.Smoothing
	return true
}

// Draw renders the filled dot and the outer ring.
func (f *Follower) Draw(s Surface) {
	s.FillCircle(f.X, f.Y, f.params.DotRadius, f.params.DotPaint)
	s.StrokeCircle(f.X, f.Y, f.params.RingRadius, f.params.RingWidth, f.params.RingPaint)
}
