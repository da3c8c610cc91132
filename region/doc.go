// SPDX-License-Identifier: MIT

// Package region groups the cells of a planar subdivision into regions
// ("blobs"): contiguous areas of one type (land or water) that callers tint
// and reason about as a unit.
//
// What:
//
//   - World is an arena of live cell state and regions, both addressed by
//     integer ids. A cell records the id of its owning region; a region keeps
//     an ordered list of child cell ids. There are no pointers between the
//     two, so ownership can move freely.
//   - Build is the region graph builder: one region per distinct input colour,
//     then friend/enemy classification, border cells and region adjacency.
//   - Split, Redistribute and Merge are the graph-surgery primitives used by
//     the conditioner; CheckIfUnitary is the disjointness check.
//   - IsAdjacent asks the adjacency oracle whether two regions still touch.
//
// Invariants restored after every primitive:
//
//   - Ownership exclusivity: every cell is a child of exactly one region and
//     its Region field points back at it.
//   - Friend/enemy partition: Friends ∪ Enemies = Neighbours, disjoint; a
//     friend is a neighbour in the same region with the same type.
//   - Region adjacency: Neighbours of a region equals the set of regions
//     owning an enemy of one of its cells, and the relation is symmetric.
//
// Connectivity of a region is NOT guaranteed here; restoring it is the job
// of package condition. Check verifies everything above and is what tests
// (and worldgen, after conditioning) run.
//
// Colour is cosmetic. Membership is decided by region ids alone; colours are
// rewritten on every move so the output always tints cells by owner.
//
// A World is single-threaded: it is mutated in place without locking.
package region
