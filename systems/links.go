package systems

import "slices"

// LinkParams configures the proximity link pass.
type LinkParams struct {
	Distance float32 // particle-particle links shorter than this are drawn
	Width    float32
	Color    Paint // alpha is replaced by the distance falloff

	PointerRadius float32 // particle-pointer links shorter than this are drawn
	PointerWidth  float32
	PointerColor  Paint
}

// LinkCounts reports how many links a pass drew.
type LinkCounts struct {
	Pairs   int
	Pointer int
}

// LinkRenderer draws lines between nearby particles and from particles to the pointer.
type LinkRenderer struct {
	params LinkParams
	grid   *SpatialGrid
	buf    []int32
}

// NewLinkRenderer creates a link renderer for the given viewport.
func NewLinkRenderer(params LinkParams, bounds Bounds) *LinkRenderer {
	return &LinkRenderer{
		params: params,
		grid:   NewSpatialGrid(bounds.Width, bounds.Height, gridCellSize(params.Distance)),
	}
}

// Params returns the current link parameters.
func (r *LinkRenderer) Params() LinkParams {
	return r.params
}

// SetParams replaces the link parameters and regrids for the new distance.
func (r *LinkRenderer) SetParams(params LinkParams, bounds Bounds) {
	r.params = params
	r.grid.SetCellSize(gridCellSize(params.Distance))
	r.grid.Resize(bounds.Width, bounds.Height)
}

// Resize adapts the grid to a new viewport.
func (r *LinkRenderer) Resize(bounds Bounds) {
	r.grid.Resize(bounds.Width, bounds.Height)
}

// minGridCell bounds the grid size when the link distance is small or zero.
const minGridCell = 32

func gridCellSize(distance float32) float32 {
	if distance < minGridCell {
		return minGridCell
	}
	return distance
}

// Draw renders, for each particle i in order, its links to every later
// particle j within Distance (alpha 1 - d/Distance) and, when the pointer is
// present, its link to the pointer within PointerRadius (alpha 1 - d/PointerRadius).
func (r *LinkRenderer) Draw(s Surface, points []Point, pointer Pointer) LinkCounts {
	var counts LinkCounts
	if r.params.Distance > 0 {
		r.grid.Build(points)
	}
	px, py, hasPointer := pointer.Get()

	for i, p := range points {
		if r.params.Distance > 0 {
			r.buf = r.grid.QueryRadiusInto(r.buf[:0], points, p.X, p.Y, r.params.Distance, int32(i))
			slices.Sort(r.buf)
			for _, j := range r.buf {
				q := points[j]
				d := distance(p.X, p.Y, q.X, q.Y)
				if d >= r.params.Distance {
					continue
				}
				paint := r.params.Color
				paint.Alpha = falloff(d, r.params.Distance)
				s.Line(p.X, p.Y, q.X, q.Y, r.params.Width, paint)
				counts.Pairs++
			}
		}

		if !hasPointer {
			continue
		}
		d := distance(p.X, p.Y, px, py)
		if d < r.params.PointerRadius {
			paint := r.params.PointerColor
			paint.Alpha = falloff(d, r.params.PointerRadius)
			s.Line(p.X, p.Y, px, py, r.params.PointerWidth, paint)
			counts.Pointer++
		}
	}

	return counts
}
