// Package adjacency answers one question about a partitioned cell graph:
// ignoring every other region, can you still walk from a cell of region A to
// any cell of region B through A's and B's territory?
//
// Reachable runs a best-first (A*) search over cells:
//
//   - g: accumulated Euclidean distance between consecutive sites.
//   - h: distance from a cell's site to a goal point (typically the centre of
//     the target region). It only orders the search, so any goal inside or
//     near the target keeps the answer exact.
//   - The search expands only into cells owned by the origin's region or by
//     the target region, and stops at the first popped cell owned by target.
//
// Scratch state (g/h per cell) lives in a caller-supplied Scratch map, never
// on the cells. Two searches may run concurrently over overlapping cells as
// long as they do not share a Scratch.
//
// Complexity: O((V + E) log V) over the cells of the two regions, with the
// lazy-decrease-key heap strategy.
package adjacency
