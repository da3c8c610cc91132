// SPDX-License-Identifier: MIT
// Package: blobgraph/region
//
// check.go - structural invariant verification.

package region

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Check verifies ownership exclusivity, the friend/enemy partition, border
// sets and exact symmetric region adjacency. It returns the first violation
// found, wrapped in ErrInvariant, or nil. Region connectivity is not checked.
func (w *World) Check() error {
	owner := make(map[int]int, len(w.cells))
	for _, rid := range w.Regions() {
		r := w.regions[rid]
		for _, id := range r.Children {
			if prev, dup := owner[id]; dup {
				return fmt.Errorf("%w: cell %d owned by %d and %d", ErrInvariant, id, prev, rid)
			}
			owner[id] = rid
			c, ok := w.cells[id]
			if !ok {
				return fmt.Errorf("%w: region %d lists unknown cell %d", ErrInvariant, rid, id)
			}
			if c.Region != rid {
				return fmt.Errorf("%w: cell %d points at %d, listed by %d", ErrInvariant, id, c.Region, rid)
			}
			if c.IsLand != r.IsLand {
				return fmt.Errorf("%w: cell %d type differs from region %d", ErrInvariant, id, rid)
			}
			if c.Colour != r.Colour {
				return fmt.Errorf("%w: cell %d colour differs from region %d", ErrInvariant, id, rid)
			}
		}
	}

	for _, id := range w.order {
		c := w.cells[id]
		if _, ok := owner[id]; !ok {
			return fmt.Errorf("%w: cell %d has no region", ErrInvariant, id)
		}
		if err := w.checkCell(c); err != nil {
			return err
		}
	}

	for _, rid := range w.Regions() {
		if err := w.checkRegion(w.regions[rid]); err != nil {
			return err
		}
	}

	return nil
}

// checkCell verifies the friend/enemy partition and border membership of c.
func (w *World) checkCell(c *Cell) error {
	if c.Friends.Size()+c.Enemies.Size() != len(c.Neighbours) {
		return fmt.Errorf("%w: cell %d friends+enemies != neighbours", ErrInvariant, c.ID)
	}
	for _, nb := range c.Neighbours {
		o := w.cells[nb]
		if !contains(o.Neighbours, c.ID) {
			return fmt.Errorf("%w: neighbour link %d-%d not symmetric", ErrInvariant, c.ID, nb)
		}
		friend := o.Region == c.Region && o.IsLand == c.IsLand
		if friend != c.Friends.Has(nb) || friend == c.Enemies.Has(nb) {
			return fmt.Errorf("%w: cell %d misclassifies neighbour %d", ErrInvariant, c.ID, nb)
		}
	}
	border := w.regions[c.Region].Border.Has(c.ID)
	if border != (c.Enemies.Size() > 0) {
		return fmt.Errorf("%w: cell %d border flag is stale", ErrInvariant, c.ID)
	}

	return nil
}

// checkRegion verifies r's adjacency against the enemies of its cells.
func (w *World) checkRegion(r *Region) error {
	want := mapset.New[int]()
	for _, id := range r.Children {
		w.cells[id].Enemies.Each(func(e int) {
			if o := w.cells[e].Region; o != r.ID {
				want.Put(o)
			}
		})
	}
	if want.Size() != r.Neighbours.Size() {
		return fmt.Errorf("%w: region %d neighbours %v, want %v",
			ErrInvariant, r.ID, sortedSet(r.Neighbours), sortedSet(want))
	}
	for _, n := range sortedSet(r.Neighbours) {
		if !want.Has(n) {
			return fmt.Errorf("%w: region %d lists non-adjacent region %d", ErrInvariant, r.ID, n)
		}
		o, ok := w.regions[n]
		if !ok {
			return fmt.Errorf("%w: region %d lists removed region %d", ErrInvariant, r.ID, n)
		}
		if !o.Neighbours.Has(r.ID) {
			return fmt.Errorf("%w: adjacency %d-%d not symmetric", ErrInvariant, r.ID, n)
		}
	}

	return nil
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}
