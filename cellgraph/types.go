package cellgraph

import (
	"errors"
	"math"
)

// Sentinel errors for cell graph operations.
var (
	// ErrInvalidCell indicates a negative id or a non-finite site coordinate.
	ErrInvalidCell = errors.New("cellgraph: invalid cell")

	// ErrDuplicateCell indicates AddCell was called with an id already present.
	ErrDuplicateCell = errors.New("cellgraph: duplicate cell id")

	// ErrCellNotFound indicates an operation referenced a non-existent cell.
	ErrCellNotFound = errors.New("cellgraph: cell not found")

	// ErrSelfLoop indicates an attempt to link a cell to itself.
	ErrSelfLoop = errors.New("cellgraph: self-loop not allowed")

	// ErrAsymmetricLink indicates a neighbour relation stored in one direction only.
	ErrAsymmetricLink = errors.New("cellgraph: asymmetric neighbour link")
)

// Point is a site coordinate on the map plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale returns p*k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// finite reports whether both coordinates are finite numbers.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Cell is one face of the planar subdivision as delivered by a producer.
//
// ID equals the id of the site the face was built around.
// IsLand is the external land/water classification (usually a height
// threshold) and may be set after construction with Graph.SetLand.
type Cell struct {
	ID     int
	Site   Point
	IsLand bool
}
