package tessellation

import (
	"fmt"

	"github.com/katalvlaran/blobgraph/cellgraph"
)

// Grid builds a rows×cols grid of cells. Cell (x,y) gets id y*cols+x and its
// site at (x,y); land(x,y) decides its type (nil means all water).
// Neighbours follow conn.
//
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(rows×cols×d), d = 4 or 8.
func Grid(rows, cols int, conn Connectivity, land func(x, y int) bool) (*cellgraph.Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)
	}
	if land == nil {
		land = func(int, int) bool { return false }
	}

	g := cellgraph.New()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cellgraph.Cell{
				ID:     index(cols, x, y),
				Site:   cellgraph.Point{X: float64(x), Y: float64(y)},
				IsLand: land(x, y),
			}
			if err := g.AddCell(c); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			for _, d := range conn.offsets() {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= cols || ny >= rows {
					continue
				}
				if err := g.Link(index(cols, x, y), index(cols, nx, ny)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// FromMask builds a grid from a rectangular land mask; mask[y][x] is true for
// land. Returns ErrEmptyGrid or ErrNonRectangular on malformed masks.
func FromMask(mask [][]bool, conn Connectivity) (*cellgraph.Graph, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(mask[0])
	for y, row := range mask {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	return Grid(len(mask), w, conn, func(x, y int) bool { return mask[y][x] })
}

// Coordinate converts a grid cell id back to (x,y) for a grid cols wide.
func Coordinate(cols, id int) (x, y int) {
	return id % cols, id / cols
}

// index maps (x,y) to a row-major id.
func index(cols, x, y int) int {
	return y*cols + x
}
