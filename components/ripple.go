package components

// Ripple is an expanding, fading ring spawned at a click location.
// Radius and Opacity are derived from Age so the animation curve stays exact
// regardless of how many frames have elapsed.
type Ripple struct {
	Age       int     // updates applied since spawn
	Radius    float64 // Age * growth
	Opacity   float64 // 1 - Age * decay
	MaxRadius float64 // nominal extent; ripples are retired by opacity only
}

// Advance applies one frame of growth and decay.
func (r *Ripple) Advance(growth, decay float64) {
	r.Age++
	r.Radius = float64(r.Age) * growth
	r.Opacity = 1 - float64(r.Age)*decay
}

// Expired reports whether the ripple has faded out.
func (r *Ripple) Expired() bool {
	return r.Opacity <= 0
}
