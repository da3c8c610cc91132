package condition

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/region"
)

// pass holds the state of one fix pass.
type pass struct {
	w    *region.World
	opts *Options
	log  *zap.Logger

	affected mapset.Set[int]
	queued   mapset.Set[int]
	prune    []int
	stats    Stats
}

func newPass(w *region.World, opts *Options) *pass {
	return &pass{
		w:        w,
		opts:     opts,
		log:      opts.Logger,
		affected: mapset.New[int](),
		queued:   mapset.New[int](),
	}
}

// run visits ids in order, then drains the prune queue.
func (p *pass) run(ids []int) error {
	for _, rid := range ids {
		r, ok := p.w.Region(rid)
		if !ok {
			continue
		}
		switch {
		case r.Len() == 0:
			p.log.Warn("empty region left in world", zap.Int("region", rid))
		case r.IsLand:
			// land is kept as built
		case r.Len() == 1:
			if !p.isLake(r) {
				p.enqueue(rid)
			}
		default:
			if err := p.water(rid); err != nil {
				return err
			}
		}
	}

	return p.drain()
}

// next returns the live affected regions, ascending.
func (p *pass) next() []int {
	out := make([]int, 0, p.affected.Size())
	p.affected.Each(func(rid int) {
		if _, ok := p.w.Region(rid); ok {
			out = append(out, rid)
		}
	})
	sort.Ints(out)

	return out
}

// isLake reports whether every region bordering r is water.
func (p *pass) isLake(r *region.Region) bool {
	for _, n := range p.w.RegionNeighbours(r.ID) {
		if o, ok := p.w.Region(n); ok && o.IsLand {
			return false
		}
	}

	return true
}

func (p *pass) enqueue(rid int) {
	if p.queued.Has(rid) {
		return
	}
	p.queued.Put(rid)
	p.prune = append(p.prune, rid)
}

// water repairs a multi-cell water region: first disconnection, then limbs.
func (p *pass) water(rid int) error {
	frag, err := p.w.CheckIfUnitary(rid)
	if err != nil {
		return err
	}
	if len(frag) > 0 {
		p.log.Debug("region is disjoint", zap.Int("region", rid), zap.Ints("fragment", frag))
		if _, err = p.split(rid, frag); err != nil {
			return err
		}
	}

	limbs, err := SearchForBridges(p.w, rid)
	if err != nil {
		return err
	}
	for _, l := range limbs {
		if err = p.resolve(l); err != nil {
			return err
		}
	}

	return nil
}

// size returns the child count of rid, 0 for unknown regions.
func (p *pass) size(rid int) int {
	if r, ok := p.w.Region(rid); ok {
		return r.Len()
	}

	return 0
}

func (p *pass) split(rid int, cells []int) (int, error) {
	nid, err := p.w.Split(rid, cells)
	if err != nil {
		return region.NoRegion, err
	}
	p.stats.Splits++
	p.opts.Recorder.ObserveSurgery(KindSplit)
	p.affected.Put(rid)
	p.affected.Put(nid)
	if p.size(nid) == 1 {
		p.enqueue(nid)
	}

	return nid, nil
}

func (p *pass) redistribute(receiver int, cells []int) error {
	for _, id := range cells {
		p.affected.Put(p.w.Owner(id))
	}
	if err := p.w.Redistribute(receiver, cells); err != nil {
		return err
	}
	p.stats.Redistributions++
	p.opts.Recorder.ObserveSurgery(KindRedistribute)
	p.affected.Put(receiver)

	return nil
}

// merge folds source into target and drops the emptied source.
func (p *pass) merge(target, source int) error {
	if err := p.w.Merge(target, source); err != nil {
		return err
	}
	if err := p.w.Remove(source); err != nil {
		return err
	}
	p.stats.Merges++
	p.opts.Recorder.ObserveSurgery(KindMerge)
	p.affected.Put(target)

	return nil
}
