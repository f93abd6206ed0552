package systems

// drawCall records one call made against a Surface.
type drawCall struct {
	kind           string // "clear", "fill", "stroke", "line"
	x1, y1, x2, y2 float32
	radius, width  float32
	paint          Paint
}

// recordingSurface captures every draw call for assertions.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) Clear() {
	r.calls = append(r.calls, drawCall{kind: "clear"})
}

func (r *recordingSurface) FillCircle(x, y, radius float32, p Paint) {
	r.calls = append(r.calls, drawCall{kind: "fill", x1: x, y1: y, radius: radius, paint: p})
}

func (r *recordingSurface) StrokeCircle(x, y, radius, width float32, p Paint) {
	r.calls = append(r.calls, drawCall{kind: "stroke", x1: x, y1: y, radius: radius, width: width, paint: p})
}

func (r *recordingSurface) Line(x1, y1, x2, y2, width float32, p Paint) {
	r.calls = append(r.calls, drawCall{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, width: width, paint: p})
}

func (r *recordingSurface) ofKind(kind string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingSurface) reset() {
	r.calls = r.calls[:0]
}
