package tessellation

import (
	"fmt"
	"math/rand"

	"github.com/fogleman/delaunay"
	"github.com/fogleman/poissondisc"

	"github.com/katalvlaran/blobgraph/cellgraph"
)

// sampleAttempts is the number of candidates tried around each active
// sample before it is retired (Bridson's k).
const sampleAttempts = 30

// Sites scatters blue-noise sites over bounds: no two sites are closer than
// radius. The same seed yields the same sites.
//
// Returns ErrInvalidBounds for an empty rectangle or a non-positive radius.
func Sites(bounds Rect, radius float64, seed int64) ([]cellgraph.Point, error) {
	if bounds.Empty() || radius <= 0 {
		return nil, fmt.Errorf("%w: %+v radius %g", ErrInvalidBounds, bounds, radius)
	}
	rnd := rand.New(rand.NewSource(seed))
	samples := poissondisc.Sample(bounds.X0, bounds.Y0, bounds.X1, bounds.Y1, radius, sampleAttempts, rnd)

	out := make([]cellgraph.Point, len(samples))
	for i, s := range samples {
		out[i] = cellgraph.Point{X: s.X, Y: s.Y}
	}

	return out, nil
}

// Voronoi builds the cell graph of the Voronoi diagram of sites. Cell i has
// site sites[i]; two cells are neighbours when their sites share a Delaunay
// edge, which is exactly when their Voronoi polygons share a side.
// Every cell starts as water.
//
// Returns ErrTooFewSites for fewer than three sites or a degenerate
// (collinear) input.
// Complexity: O(n log n) expected.
func Voronoi(sites []cellgraph.Point) (*cellgraph.Graph, error) {
	if len(sites) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSites, len(sites))
	}
	pts := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTooFewSites, err)
	}

	g := cellgraph.New()
	for i, s := range sites {
		if err = g.AddCell(cellgraph.Cell{ID: i, Site: s}); err != nil {
			return nil, err
		}
	}
	// Each half-edge e runs from Triangles[e] to Triangles[next(e)]. Interior
	// edges appear twice; linking is idempotent.
	for e := range tri.Triangles {
		a, b := tri.Triangles[e], tri.Triangles[nextHalfedge(e)]
		if a == b {
			continue
		}
		if err = g.Link(a, b); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// nextHalfedge returns the half-edge following e within its triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}

	return e + 1
}
