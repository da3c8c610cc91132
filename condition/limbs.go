package condition

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/blobgraph/region"
)

// SearchForBridges finds the limbs of region rid.
//
// Cells are visited breadth-first over friend links and classified by their
// friend degree:
//   - degree 1: a tip; part of a limb when the cell is "straight" (it has at
//     least as many land as water neighbours).
//   - degree 2: a bridge cell when its two friends are not linked and the
//     cell is not straight.
//   - degree ≥ 3: a junction when two of its friends are linked.
//
// Two friends are linked when they are neighbours or share a friend other
// than the cell under test. The second clause closes the diagonal of square
// meshes, where a 2×2 block has no adjacent friend pair.
//
// Limbs are the friend-connected components of the candidate cells, in
// discovery order. Start is the first junction touching a limb, End a
// degree-1 member; both -1 when absent. IsBranch is set on every limb cell
// and cleared on every other cell of the region.
//
// Errors: region.ErrRegionNotFound for unknown ids. Empty regions yield no limbs.
func SearchForBridges(w *region.World, rid int) ([]Limb, error) {
	r, ok := w.Region(rid)
	if !ok {
		return nil, fmt.Errorf("search for bridges in %d: %w", rid, region.ErrRegionNotFound)
	}

	order := friendOrder(w, r)
	candidate := make(map[int]bool)
	var junctions []int
	for _, id := range order {
		w.MarkBranch(id, false)
		friends := w.Friends(id)
		switch len(friends) {
		case 0:
		case 1:
			if isStraight(w, id) {
				candidate[id] = true
			}
		case 2:
			if !linked(w, id, friends[0], friends[1]) && !isStraight(w, id) {
				candidate[id] = true
			}
		default:
			if anyLinked(w, id, friends) {
				junctions = append(junctions, id)
			}
		}
	}

	var limbs []Limb
	assigned := make(map[int]bool)
	for _, id := range order {
		if !candidate[id] || assigned[id] {
			continue
		}
		l := Limb{Region: rid, Start: -1, End: -1}
		q := queue.New[int]()
		q.Enqueue(id)
		assigned[id] = true
		for !q.Empty() {
			cur := q.Dequeue()
			l.Cells = append(l.Cells, cur)
			w.MarkBranch(cur, true)
			friends := w.Friends(cur)
			if len(friends) == 1 && l.End < 0 {
				l.End = cur
			}
			for _, f := range friends {
				if candidate[f] && !assigned[f] {
					assigned[f] = true
					q.Enqueue(f)
				}
			}
		}
		limbs = append(limbs, l)
	}

	for _, j := range junctions {
		for _, f := range w.Friends(j) {
			for i := range limbs {
				if limbs[i].Start < 0 && contains(limbs[i].Cells, f) {
					limbs[i].Start = j
				}
			}
		}
	}

	return limbs, nil
}

// friendOrder returns the region's cells in breadth-first friend order,
// restarting from the next unvisited child when the region is disjoint.
func friendOrder(w *region.World, r *region.Region) []int {
	seen := make(map[int]bool, r.Len())
	order := make([]int, 0, r.Len())
	q := queue.New[int]()
	for _, start := range r.Children {
		if seen[start] {
			continue
		}
		seen[start] = true
		q.Enqueue(start)
		for !q.Empty() {
			id := q.Dequeue()
			order = append(order, id)
			for _, f := range w.Friends(id) {
				if !seen[f] {
					seen[f] = true
					q.Enqueue(f)
				}
			}
		}
	}

	return order
}

// isStraight reports whether id has at least as many land as water neighbours.
func isStraight(w *region.World, id int) bool {
	land, water := 0, 0
	for _, nb := range w.Neighbours(id) {
		if c, ok := w.Cell(nb); ok && c.IsLand {
			land++
		} else {
			water++
		}
	}

	return land >= water
}

// linked reports whether a and b touch, directly or through a shared friend
// other than self.
func linked(w *region.World, self, a, b int) bool {
	if contains(w.Neighbours(a), b) {
		return true
	}
	cb, _ := w.Cell(b)
	for _, f := range w.Friends(a) {
		if f != self && cb.Friends.Has(f) {
			return true
		}
	}

	return false
}

func anyLinked(w *region.World, self int, friends []int) bool {
	for i := 0; i < len(friends); i++ {
		for j := i + 1; j < len(friends); j++ {
			if linked(w, self, friends[i], friends[j]) {
				return true
			}
		}
	}

	return false
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}
