package systems

// Pointer is the optional live pointer position. The zero value is an
// absent pointer, so "no pointer" cannot be confused with a coordinate.
type Pointer struct {
	x, y    float32
	present bool
}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float32) Pointer {
	return Pointer{x: x, y: y, present: true}
}

// NoPointer returns an absent pointer.
func NoPointer() Pointer {
	return Pointer{}
}

// Get returns the pointer position and whether it is present.
func (p Pointer) Get() (x, y float32, ok bool) {
	return p.x, p.y, p.present
}

// Present reports whether the pointer is inside the viewport.
func (p Pointer) Present() bool {
	return p.present
}
