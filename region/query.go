// SPDX-License-Identifier: MIT
// Package: blobgraph/region
//
// query.go - disjointness check and the adjacency query.

package region

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/blobgraph/adjacency"
)

// CheckIfUnitary reports whether region rid is connected through friend
// links. It floods from the first child and returns nil when every child is
// reached. Otherwise it returns the smaller side of the cut, the reached or
// the unreached cells, preferring the unreached side on a tie; returned ids
// keep the region's child order.
//
// An empty region yields ErrInvalidCell (there is no cell to start from).
func (w *World) CheckIfUnitary(rid int) ([]int, error) {
	r, ok := w.regions[rid]
	if !ok {
		return nil, fmt.Errorf("unitary check %d: %w", rid, ErrRegionNotFound)
	}
	if len(r.Children) == 0 {
		return nil, fmt.Errorf("unitary check %d: empty region: %w", rid, ErrInvalidCell)
	}

	start := r.Children[0]
	reached := map[int]bool{start: true}
	q := queue.New[int]()
	q.Enqueue(start)
	for !q.Empty() {
		id := q.Dequeue()
		for _, nb := range w.cells[id].Neighbours {
			o := w.cells[nb]
			if reached[nb] || o.Region != rid || o.IsLand != r.IsLand {
				continue
			}
			reached[nb] = true
			q.Enqueue(nb)
		}
	}
	if len(reached) == len(r.Children) {
		return nil, nil
	}

	var in, out []int
	for _, id := range r.Children {
		if reached[id] {
			in = append(in, id)
		} else {
			out = append(out, id)
		}
	}
	if len(in) < len(out) {
		return in, nil
	}

	return out, nil
}

// IsAdjacent reports whether regions from and to touch.
//
// The oracle is started from each border cell of from in ascending order,
// aimed at to's center. A failed search settles its whole territory
// component, so later origins inside an explored component are skipped.
// Unknown, empty or identical regions are never adjacent.
func (w *World) IsAdjacent(from, to int) bool {
	rf, ok := w.regions[from]
	if !ok || from == to || len(rf.Children) == 0 {
		return false
	}
	rt, ok := w.regions[to]
	if !ok || len(rt.Children) == 0 {
		return false
	}

	explored := make(map[int]bool)
	mark := func(id int) { explored[id] = true }
	for _, origin := range sortedSet(rf.Border) {
		if explored[origin] {
			continue
		}
		if adjacency.Reachable(w, origin, to, rt.Center,
			adjacency.WithScratch(w.scratch),
			adjacency.WithOnExpand(mark),
		) {
			return true
		}
	}

	return false
}
