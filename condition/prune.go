package condition

import (
	"sort"

	"go.uber.org/zap"
)

// drain prunes every queued singleton, in queue order. Singletons that
// grew or vanished since they were queued are skipped.
func (p *pass) drain() error {
	for _, rid := range p.prune {
		r, ok := p.w.Region(rid)
		if !ok || r.Len() != 1 {
			continue
		}
		cell := r.Children[0]
		p.stats.Prunes++
		p.opts.Recorder.ObserveSurgery(KindPrune)
		if err := p.pruneOne(rid, cell, p.seaTiles(rid, cell)); err != nil {
			return err
		}
	}
	p.prune = nil

	return nil
}

// seaTiles returns the same-type neighbours of cell owned by other regions.
func (p *pass) seaTiles(rid, cell int) []int {
	home, _ := p.w.Cell(cell)
	var out []int
	for _, nb := range p.w.Neighbours(cell) {
		c, _ := p.w.Cell(nb)
		if c.IsLand == home.IsLand && c.Region != rid {
			out = append(out, nb)
		}
	}

	return out
}

// pruneOne folds singleton rid into its surroundings.
//
//   - 0 sea tiles: enclosed, left alone
//   - 1: redistribute into that region if it is larger than SmallRegion,
//     else merge into it
//   - 2 adjacent tiles of one region (an inlet): merge into it
//   - 2 otherwise (inlet between regions, or a strait): the first side with
//     at least SmallRegion children receives the cell, else merge into the
//     larger side
//   - 3 or more: redistribute into the region larger than SmallRegion that
//     owns the most tiles, else merge into the largest region
//
// The cell moves exactly once: when both sides of a strait qualify the first
// one wins and the second is not considered.
func (p *pass) pruneOne(rid, cell int, sea []int) error {
	small := p.opts.SmallRegion
	switch len(sea) {
	case 0:
		p.log.Debug("enclosed singleton", zap.Int("region", rid), zap.Int("cell", cell))
		return nil

	case 1:
		target := p.w.Owner(sea[0])
		if p.size(target) > small {
			return p.absorb(target, rid, cell)
		}
		return p.merge(target, rid)

	case 2:
		a, b := p.w.Owner(sea[0]), p.w.Owner(sea[1])
		inlet := contains(p.w.Neighbours(sea[0]), sea[1])
		if inlet && a == b {
			return p.merge(a, rid)
		}
		for _, side := range []int{a, b} {
			if p.size(side) >= small {
				return p.absorb(side, rid, cell)
			}
		}
		return p.merge(p.larger(a, b), rid)
	}

	tiles := make(map[int]int)
	for _, id := range sea {
		tiles[p.w.Owner(id)]++
	}
	owners := sortedKeys(tiles)
	sort.SliceStable(owners, func(i, j int) bool {
		if tiles[owners[i]] != tiles[owners[j]] {
			return tiles[owners[i]] > tiles[owners[j]]
		}
		return p.size(owners[i]) > p.size(owners[j])
	})
	for _, o := range owners {
		if p.size(o) > small {
			return p.absorb(o, rid, cell)
		}
	}
	largest := owners[0]
	for _, o := range owners[1:] {
		largest = p.larger(largest, o)
	}

	return p.merge(largest, rid)
}

// absorb redistributes the singleton's cell into target and drops the
// emptied singleton region.
func (p *pass) absorb(target, rid, cell int) error {
	if err := p.redistribute(target, []int{cell}); err != nil {
		return err
	}
	p.affected.Remove(rid)

	return p.w.Remove(rid)
}

// larger returns the region with more children; ties go to the lower id.
func (p *pass) larger(a, b int) int {
	sa, sb := p.size(a), p.size(b)
	if sa > sb || (sa == sb && a < b) {
		return a
	}

	return b
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
