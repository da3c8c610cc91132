// Package blobgraph grows maps of connected colour regions over a planar
// cell graph and keeps them that way.
//
// 🚀 What is blobgraph?
//
//	A small stack of packages that turns a cloud of Voronoi cells into
//	land and water regions where every region is one connected blob:
//		• cellgraph:    integer-id cells with symmetric neighbour links
//		• tessellation: Poisson-disc sites, Voronoi graphs and square grids
//		• heightfield:  simplex/Perlin noise fields that mark cells as land
//		• palette:      distinct cosmetic colours per layer
//		• region:       the world arena and its surgery (split, redistribute, merge)
//		• adjacency:    the A* oracle that decides whether two regions touch
//		• condition:    iterative repair of disconnected regions and thin limbs
//		• worldgen:     the whole pipeline behind one Config
//		• metrics:      Prometheus export of conditioning runs
//
// ✨ Guarantees
//
//   - Every cell belongs to exactly one region, of its own type.
//   - Region adjacency is symmetric and always matches the cells.
//   - Same Config, same world.
//
// Quick ASCII example (lowercase = land, letters = regions):
//
//	AAAAA
//	AbbbA
//	AbbbB
//	AAAAB
//
// Water region A wraps around the island b and is left alone. If A were cut in two
// by B, the conditioner would split off the unreachable side as a new region.
//
//	go install github.com/katalvlaran/blobgraph/cmd/blobgen@latest
package blobgraph
