// Package tessellation defines the inputs, connectivity modes and sentinel
// errors of the tessellation layer.
package tessellation

import (
	"errors"
)

// Sentinel errors for tessellation.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("tessellation: grid must have at least one row and one column")
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = errors.New("tessellation: all rows must have the same length")
	// ErrTooFewSites indicates fewer than three sites, or sites that admit no
	// triangulation (all collinear).
	ErrTooFewSites = errors.New("tessellation: at least three non-collinear sites required")
	// ErrInvalidBounds indicates an empty sampling rectangle or a
	// non-positive sampling radius.
	ErrInvalidBounds = errors.New("tessellation: invalid sampling bounds")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// offsets returns the neighbour offsets for c. Only half of each symmetric
// pair is needed since cellgraph links are undirected.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	}

	return [][2]int{{1, 0}, {0, 1}}
}

// Rect is an axis-aligned sampling rectangle [X0,X1)×[Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }
