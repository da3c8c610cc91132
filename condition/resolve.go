package condition

import (
	"go.uber.org/zap"
)

// resolve applies the limb policy to one limb of a multi-cell water region.
//
//   - limb spans the whole region: leave it, the region is one strand
//   - more than one cell: split the limb off
//   - one cell in a small region: leave it
//   - one cell otherwise: tally the other water regions among its enemies;
//     unique maximum → redistribute into it, tie → split and pull qualifying
//     same-type neighbours into the new region
//
// Two one-cell moves are skipped because they would be undone and repeat
// every pass. With no other water region among the enemies the split-off
// singleton has only its old region to fall back to, and pruning hands it
// straight back. A straight cell that would touch the receiver through a
// single friend becomes a one-cell tip there, and is sent back by the same
// rule. Both cells stay where they are.
//
// Limb cells that changed owner since detection are ignored.
func (p *pass) resolve(l Limb) error {
	r, ok := p.w.Region(l.Region)
	if !ok {
		return nil
	}
	cells := make([]int, 0, len(l.Cells))
	for _, id := range l.Cells {
		if p.w.Owner(id) == l.Region {
			cells = append(cells, id)
		}
	}
	if len(cells) == 0 {
		return nil
	}
	p.stats.Limbs++

	if len(cells) == r.Len() {
		p.log.Debug("limb spans region", zap.Int("region", l.Region), zap.Int("cells", len(cells)))
		return nil
	}
	if len(cells) > 1 {
		_, err := p.split(l.Region, cells)
		return err
	}
	if r.Len() <= p.opts.SmallRegion {
		return nil
	}

	cell := cells[0]
	best, count, tie := p.dominantWaterNeighbour(cell, l.Region)
	switch {
	case count == 0:
		p.log.Debug("tip has no other water neighbour", zap.Int("region", l.Region), zap.Int("cell", cell))
		return nil
	case !tie && count == 1 && isStraight(p.w, cell) && p.size(best) >= p.opts.SmallRegion:
		p.log.Debug("tip would bounce", zap.Int("region", l.Region), zap.Int("cell", cell), zap.Int("receiver", best))
		return nil
	case !tie:
		return p.redistribute(best, cells)
	}

	nid, err := p.split(l.Region, cells)
	if err != nil {
		return err
	}
	for _, nb := range p.w.Neighbours(cell) {
		c, _ := p.w.Cell(nb)
		if c.IsLand != r.IsLand || c.Region == nid {
			continue
		}
		if p.size(c.Region) < p.opts.SmallRegion || !p.w.IsAdjacent(nid, c.Region) {
			continue
		}
		if err = p.redistribute(nid, []int{nb}); err != nil {
			return err
		}
	}

	return nil
}

// dominantWaterNeighbour tallies the water regions other than home owning an
// enemy of cell. It returns the region with the highest count, that count
// (0 when there is no such region) and whether the count is shared.
func (p *pass) dominantWaterNeighbour(cell, home int) (best, count int, tie bool) {
	tally := make(map[int]int)
	for _, e := range p.w.Enemies(cell) {
		owner := p.w.Owner(e)
		if r, ok := p.w.Region(owner); ok && owner != home && !r.IsLand {
			tally[owner]++
		}
	}

	for _, rid := range sortedKeys(tally) {
		switch n := tally[rid]; {
		case n > count:
			best, count, tie = rid, n, false
		case n == count:
			tie = true
		}
	}

	return best, count, tie
}
