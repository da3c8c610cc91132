// Package tessellation produces the planar cell graphs the region layer
// works on.
//
// What:
//
//   - Grid / FromMask: rectangular grids with Conn4 or Conn8 neighbours,
//     row-major ids (y*cols + x) and sites at integer coordinates. Handy for
//     tests and for tile maps.
//   - Sites: Poisson-disc (blue noise) site sampling over a rectangle.
//   - Voronoi: the Voronoi cell graph of a site set, read off its Delaunay
//     triangulation (two cells are neighbours iff their sites share a
//     Delaunay edge).
//
// Every produced cell is water; classify land afterwards (see heightfield).
//
// Complexity:
//
//   - Grid:    O(W×H×d), d = 4 or 8.
//   - Sites:   O(n) expected.
//   - Voronoi: O(n log n) expected.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed grid input.
//   - ErrInvalidBounds: empty rectangle or non-positive radius.
//   - ErrTooFewSites: fewer than three sites, or collinear sites.
package tessellation
