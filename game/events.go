package game

// Event is an input event applied between frames.
type Event interface {
	isEvent()
}

// Resize reports a new viewport size in pixels.
type Resize struct {
	W, H int
}

// PointerMove reports the pointer position inside the viewport.
type PointerMove struct {
	X, Y float32
}

// PointerLeave reports that the pointer left the viewport.
type PointerLeave struct{}

// Click reports a primary button press at the given position.
type Click struct {
	X, Y float32
}

func (Resize) isEvent()       {}
func (PointerMove) isEvent()  {}
func (PointerLeave) isEvent() {}
func (Click) isEvent()        {}
