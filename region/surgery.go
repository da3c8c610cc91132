// SPDX-License-Identifier: MIT
// Package: blobgraph/region
//
// surgery.go - Split, Redistribute and Merge.

package region

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/palette"
)

// Split moves cells out of region rid into a freshly created region with a
// new palette colour and returns the new region's id.
//
// Every cell must currently be owned by rid. The new region's children are
// exactly cells in the given order (duplicates dropped); rid keeps the rest.
// Palette exhaustion is returned wrapped (palette.ErrPaletteExhausted) and
// leaves the World unchanged.
func (w *World) Split(rid int, cells []int) (int, error) {
	r, ok := w.regions[rid]
	if !ok {
		return NoRegion, fmt.Errorf("split %d: %w", rid, ErrRegionNotFound)
	}
	if len(cells) == 0 {
		return NoRegion, fmt.Errorf("split %d: no cells: %w", rid, ErrInvalidCell)
	}
	for _, id := range cells {
		if w.Owner(id) != rid {
			return NoRegion, fmt.Errorf("split %d: cell %d not owned: %w", rid, id, ErrInvalidCell)
		}
	}

	col, err := w.palette.Next(palette.LayerOf(r.IsLand))
	if err != nil {
		return NoRegion, fmt.Errorf("split %d: %w", rid, err)
	}
	nr := w.newRegion(col, r.IsLand)
	if err = w.Redistribute(nr.ID, cells); err != nil {
		return NoRegion, err
	}
	w.log.Debug("region split",
		zap.Int("region", rid),
		zap.Int("new", nr.ID),
		zap.Int("cells", len(nr.Children)),
		zap.String("colour", palette.Hex(col)),
	)

	return nr.ID, nil
}

// Redistribute hands cells to region receiver.
//
// Cells already owned by receiver are skipped. A cell of the other type is
// rejected with ErrMixedRegion before anything moves. After the move the
// friend/enemy sets of the moved cells and their neighbours are rebuilt, and
// the adjacency of receiver and every donor region is re-verified through
// the adjacency oracle, so links appear and disappear exactly. Centers of all
// touched regions are recomputed.
func (w *World) Redistribute(receiver int, cells []int) error {
	recv, ok := w.regions[receiver]
	if !ok {
		return fmt.Errorf("redistribute to %d: %w", receiver, ErrRegionNotFound)
	}

	moving := make([]int, 0, len(cells))
	seen := mapset.New[int]()
	for _, id := range cells {
		c, ok := w.cells[id]
		if !ok {
			return fmt.Errorf("redistribute cell %d: %w", id, ErrInvalidCell)
		}
		if c.IsLand != recv.IsLand {
			return fmt.Errorf("redistribute cell %d to %d: %w", id, receiver, ErrMixedRegion)
		}
		if c.Region == receiver || seen.Has(id) {
			continue
		}
		seen.Put(id)
		moving = append(moving, id)
	}
	if len(moving) == 0 {
		return nil
	}

	donors := mapset.New[int]()
	for _, id := range moving {
		c := w.cells[id]
		if donor, ok := w.regions[c.Region]; ok {
			donor.removeChild(id)
			donor.Border.Remove(id)
			donors.Put(donor.ID)
		}
		c.Region = receiver
		c.Colour = recv.Colour
		recv.Children = append(recv.Children, id)
	}
	w.reclassify(moving)

	touched := sortedSet(donors)
	touched = append(touched, receiver)
	w.relink(touched)
	for _, rid := range touched {
		_ = w.RecalculateCenter(rid)
	}
	w.log.Debug("cells redistributed",
		zap.Int("receiver", receiver),
		zap.Ints("cells", moving),
		zap.Ints("donors", touched[:len(touched)-1]),
	)

	return nil
}

// relink re-verifies every adjacency of the given regions. Candidates are
// the previously recorded neighbours plus the owners of current enemies.
func (w *World) relink(rids []int) {
	for _, rid := range rids {
		r, ok := w.regions[rid]
		if !ok {
			continue
		}
		candidates := mapset.New[int]()
		r.Neighbours.Each(candidates.Put)
		r.Border.Each(func(cid int) {
			w.cells[cid].Enemies.Each(func(e int) {
				candidates.Put(w.cells[e].Region)
			})
		})
		for _, other := range sortedSet(candidates) {
			o, ok := w.regions[other]
			if !ok || other == rid {
				continue
			}
			if w.IsAdjacent(rid, other) {
				w.link(r, o)
			} else {
				w.unlink(r, o)
			}
		}
	}
}

// Merge moves every cell of source into target.
//
// Friend/enemy sets are rebuilt (enemies across the old seam become friends),
// every neighbour of source is rewired to target without creating a self
// edge, and target's center is recomputed. source is left empty but still
// registered; callers drop it with Remove. Merging an already empty source
// only detaches its dangling adjacency.
func (w *World) Merge(target, source int) error {
	if target == source {
		return fmt.Errorf("merge %d: %w", target, ErrSameRegion)
	}
	t, ok := w.regions[target]
	if !ok {
		return fmt.Errorf("merge into %d: %w", target, ErrRegionNotFound)
	}
	s, ok := w.regions[source]
	if !ok {
		return fmt.Errorf("merge from %d: %w", source, ErrRegionNotFound)
	}
	if len(s.Children) == 0 {
		w.detach(s)
		return nil
	}
	if s.IsLand != t.IsLand {
		return fmt.Errorf("merge %d into %d: %w", source, target, ErrMixedRegion)
	}

	moved := s.Children
	s.Children = nil
	s.Border = mapset.New[int]()
	for _, id := range moved {
		c := w.cells[id]
		c.Region = target
		c.Colour = t.Colour
		t.Children = append(t.Children, id)
	}
	w.reclassify(moved)

	for _, n := range sortedSet(s.Neighbours) {
		nr, ok := w.regions[n]
		if !ok {
			continue
		}
		nr.Neighbours.Remove(source)
		if n != target {
			w.link(t, nr)
		}
	}
	s.Neighbours = mapset.New[int]()
	t.Neighbours.Remove(source)
	_ = w.RecalculateCenter(target)

	w.log.Debug("regions merged",
		zap.Int("target", target),
		zap.Int("source", source),
		zap.Int("cells", len(moved)),
	)

	return nil
}
