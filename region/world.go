// SPDX-License-Identifier: MIT
// Package: blobgraph/region
//
// world.go - the cell/region arena, accessors and the oracle view.

package region

import (
	"fmt"
	"sort"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/adjacency"
	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/palette"
)

// NoRegion is returned by Owner for cells the World does not know.
const NoRegion = -1

// World owns every cell and region of one partition.
type World struct {
	cells   map[int]*Cell
	order   []int // cell ids ascending
	regions map[int]*Region
	nextID  int

	palette *palette.Palette
	log     *zap.Logger

	// scratch is reused by every oracle query issued by this World.
	scratch adjacency.Scratch
}

func newWorld() *World {
	return &World{
		cells:   make(map[int]*Cell),
		regions: make(map[int]*Region),
		nextID:  1,
		log:     zap.NewNop(),
		scratch: make(adjacency.Scratch),
	}
}

// newRegion allocates an empty region with a fresh id.
func (w *World) newRegion(col color.RGBColor, isLand bool) *Region {
	r := &Region{
		ID:         w.nextID,
		Colour:     col,
		IsLand:     isLand,
		Neighbours: mapset.New[int](),
		Border:     mapset.New[int](),
	}
	w.nextID++
	w.regions[r.ID] = r

	return r
}

// Cell returns the live state of cell id.
func (w *World) Cell(id int) (*Cell, bool) {
	c, ok := w.cells[id]
	return c, ok
}

// Region returns region id; removed regions are not found.
func (w *World) Region(id int) (*Region, bool) {
	r, ok := w.regions[id]
	return r, ok
}

// Cells returns all cell ids in ascending order.
func (w *World) Cells() []int {
	out := make([]int, len(w.order))
	copy(out, w.order)

	return out
}

// Regions returns the ids of all live regions in ascending order.
func (w *World) Regions() []int {
	out := make([]int, 0, len(w.regions))
	for id := range w.regions {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// RegionCount returns the number of live regions.
func (w *World) RegionCount() int { return len(w.regions) }

// Palette returns the colour supplier used by Split.
func (w *World) Palette() *palette.Palette { return w.palette }

// Neighbours returns the fixed neighbour ids of a cell (read-only).
func (w *World) Neighbours(id int) []int {
	if c, ok := w.cells[id]; ok {
		return c.Neighbours
	}

	return nil
}

// Site returns the site of a cell; the zero Point for unknown ids.
func (w *World) Site(id int) cellgraph.Point {
	if c, ok := w.cells[id]; ok {
		return c.Site
	}

	return cellgraph.Point{}
}

// Owner returns the region owning a cell, or NoRegion.
func (w *World) Owner(id int) int {
	if c, ok := w.cells[id]; ok {
		return c.Region
	}

	return NoRegion
}

// Friends returns the friend ids of a cell in ascending order.
func (w *World) Friends(id int) []int {
	if c, ok := w.cells[id]; ok {
		return sortedSet(c.Friends)
	}

	return nil
}

// Enemies returns the enemy ids of a cell in ascending order.
func (w *World) Enemies(id int) []int {
	if c, ok := w.cells[id]; ok {
		return sortedSet(c.Enemies)
	}

	return nil
}

// RegionNeighbours returns the ids of regions adjacent to rid, ascending.
func (w *World) RegionNeighbours(rid int) []int {
	if r, ok := w.regions[rid]; ok {
		return sortedSet(r.Neighbours)
	}

	return nil
}

// MarkBranch sets or clears the IsBranch diagnostic flag of a cell.
func (w *World) MarkBranch(id int, on bool) {
	if c, ok := w.cells[id]; ok {
		c.IsBranch = on
	}
}

// RecalculateCenter sets the region's center to the mean of its children's
// sites. An empty region keeps its previous center.
func (w *World) RecalculateCenter(rid int) error {
	r, ok := w.regions[rid]
	if !ok {
		return fmt.Errorf("recalculate center of %d: %w", rid, ErrRegionNotFound)
	}
	if len(r.Children) == 0 {
		return nil
	}
	var sum cellgraph.Point
	for _, id := range r.Children {
		sum = sum.Add(w.cells[id].Site)
	}
	r.Center = sum.Scale(1 / float64(len(r.Children)))

	return nil
}

// Remove deletes an empty region and detaches it from its neighbours.
func (w *World) Remove(rid int) error {
	r, ok := w.regions[rid]
	if !ok {
		return fmt.Errorf("remove %d: %w", rid, ErrRegionNotFound)
	}
	if len(r.Children) > 0 {
		return fmt.Errorf("remove %d with %d cells: %w", rid, len(r.Children), ErrRegionNotEmpty)
	}
	w.detach(r)
	delete(w.regions, rid)
	w.log.Debug("region removed", zap.Int("region", rid))

	return nil
}

// Snapshot returns one summary per live region, ascending by id.
func (w *World) Snapshot() []RegionSummary {
	ids := w.Regions()
	out := make([]RegionSummary, 0, len(ids))
	for _, id := range ids {
		r := w.regions[id]
		children := make([]int, len(r.Children))
		copy(children, r.Children)
		out = append(out, RegionSummary{
			ID:         r.ID,
			Colour:     r.Colour,
			IsLand:     r.IsLand,
			Center:     r.Center,
			Children:   children,
			Neighbours: sortedSet(r.Neighbours),
		})
	}

	return out
}

// classify recomputes the friend/enemy sets of c and its border membership.
func (w *World) classify(c *Cell) {
	c.Friends = mapset.New[int]()
	c.Enemies = mapset.New[int]()
	for _, nb := range c.Neighbours {
		o := w.cells[nb]
		if o.Region == c.Region && o.IsLand == c.IsLand {
			c.Friends.Put(nb)
		} else {
			c.Enemies.Put(nb)
		}
	}
	r, ok := w.regions[c.Region]
	if !ok {
		return
	}
	if c.Enemies.Size() > 0 {
		r.Border.Put(c.ID)
	} else {
		r.Border.Remove(c.ID)
	}
}

// reclassify runs classify over ids and all of their neighbours.
func (w *World) reclassify(ids []int) {
	dirty := mapset.New[int]()
	for _, id := range ids {
		dirty.Put(id)
		for _, nb := range w.cells[id].Neighbours {
			dirty.Put(nb)
		}
	}
	dirty.Each(func(id int) {
		w.classify(w.cells[id])
	})
}

// link records a symmetric adjacency between two regions.
func (w *World) link(a, b *Region) {
	a.Neighbours.Put(b.ID)
	b.Neighbours.Put(a.ID)
}

// unlink removes a symmetric adjacency between two regions.
func (w *World) unlink(a, b *Region) {
	a.Neighbours.Remove(b.ID)
	b.Neighbours.Remove(a.ID)
}

// detach removes r from every neighbour's adjacency and clears its own.
func (w *World) detach(r *Region) {
	r.Neighbours.Each(func(n int) {
		if o, ok := w.regions[n]; ok {
			o.Neighbours.Remove(r.ID)
		}
	})
	r.Neighbours = mapset.New[int]()
}

// removeChild drops id from r's children, preserving order.
func (r *Region) removeChild(id int) {
	for i, c := range r.Children {
		if c == id {
			r.Children = append(r.Children[:i], r.Children[i+1:]...)
			return
		}
	}
}

// sortedSet returns the members of s in ascending order.
func sortedSet(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(k int) {
		out = append(out, k)
	})
	sort.Ints(out)

	return out
}
