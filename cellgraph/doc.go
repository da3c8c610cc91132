// Package cellgraph holds the planar subdivision that region conditioning
// runs on: cells with an integer id, a site coordinate, a land/water flag and
// a symmetric neighbour set.
//
// What:
//
//   - Graph is an arena of cells keyed by id. Ids are chosen by the producer
//     (a Voronoi construction, a grid) and are never reassigned.
//   - Link records an undirected adjacency; both directions are stored so the
//     symmetry invariant (a ∈ N(b) ⇔ b ∈ N(a)) holds by construction.
//   - Every enumeration surface (IDs, Neighbours) is sorted ascending, so
//     algorithms built on top are deterministic.
//
// Why:
//
//   - The tessellation layer and the conditioning layer meet here and nowhere
//     else: producers fill a Graph, consumers only read it.
//
// Complexity:
//
//   - AddCell, Link, Adjacent, Has: O(1) expected.
//   - IDs: O(V log V). Neighbours: O(d log d).
//   - Validate: O(V + E).
//
// Errors:
//
//   - ErrInvalidCell:     negative id or a NaN/Inf site coordinate.
//   - ErrDuplicateCell:   AddCell with an id already present.
//   - ErrCellNotFound:    an operation referenced an unknown id.
//   - ErrSelfLoop:        Link(a, a).
//   - ErrAsymmetricLink:  Validate found a one-way adjacency.
//
// A Graph is not safe for concurrent mutation. Once built it is read-only
// for every consumer in this module, and concurrent reads are fine.
package cellgraph
