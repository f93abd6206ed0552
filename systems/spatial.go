package systems

// SpatialGrid buckets point indices into square cells so that radius queries
// only visit nearby cells.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]int32 // flat grid of point index lists
}

// NewSpatialGrid creates a spatial grid covering the given viewport.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	g := &SpatialGrid{cellSize: cellSize}
	g.Resize(width, height)
	return g
}

// Resize rebuilds the cell layout for a new viewport and empties the grid.
func (g *SpatialGrid) Resize(width, height float32) {
	cols := int(width/g.cellSize) + 1
	rows := int(height/g.cellSize) + 1
	if cols == g.cols && rows == g.rows {
		g.Clear()
		return
	}
	g.cols = cols
	g.rows = rows
	g.cells = make([][]int32, cols*rows)
}

// SetCellSize changes the cell size; the grid must be resized before use.
func (g *SpatialGrid) SetCellSize(cellSize float32) {
	if cellSize == g.cellSize {
		return
	}
	g.cellSize = cellSize
	g.cols, g.rows = 0, 0
}

// Clear removes all indices from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Build clears the grid and inserts every point by its index.
func (g *SpatialGrid) Build(points []Point) {
	g.Clear()
	for i, p := range points {
		g.Insert(int32(i), p.X, p.Y)
	}
}

// Insert adds an index to the grid at the given position.
func (g *SpatialGrid) Insert(idx int32, x, y float32) {
	c := g.cellIndex(x, y)
	g.cells[c] = append(g.cells[c], idx)
}

// QueryRadiusInto appends to dst the indices of points within radius of (x, y),
// boundary included, whose index is greater than after. Passing after = -1
// returns every match.
func (g *SpatialGrid) QueryRadiusInto(dst []int32, points []Point, x, y, radius float32, after int32) []int32 {
	cellRadius := int(radius/g.cellSize) + 1

	centerCol, centerRow := g.cellCoords(x, y)
	radiusSq := radius * radius

	for dr := -cellRadius; dr <= cellRadius; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -cellRadius; dc <= cellRadius; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}
			for _, idx := range g.cells[row*g.cols+col] {
				if idx <= after {
					continue
				}
				p := points[idx]
				dx := p.X - x
				dy := p.Y - y
				if dx*dx+dy*dy <= radiusSq {
					dst = append(dst, idx)
				}
			}
		}
	}

	return dst
}

// cellCoords returns the clamped cell column and row for a position.
// Particles can sit just outside the viewport for a frame; they are kept in
// the edge cells.
func (g *SpatialGrid) cellCoords(x, y float32) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)

	if x < 0 || col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if y < 0 || row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// cellIndex returns the flat index for a position.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	col, row := g.cellCoords(x, y)
	return row*g.cols + col
}
