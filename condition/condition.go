package condition

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/region"
)

// Conditioner repairs a region world: it splits disconnected regions, cuts
// thin limbs into regions of their own and folds stray single-cell regions
// into their neighbours. Configure once, Run on any number of worlds.
type Conditioner struct {
	opts Options
}

// New returns a Conditioner with DefaultOptions overridden by opts.
// Invalid options are reported by Run.
func New(opts ...Option) *Conditioner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Conditioner{opts: o}
}

// Options returns the effective options.
func (c *Conditioner) Options() Options { return c.opts }

// Run conditions w in place.
//
// The first pass visits every region; each later pass visits only the
// regions touched by the previous one. Passes stop when nothing was touched
// (Converged) or when MaxIterations passes have run (IterationLimitReached).
// Hitting the cap is not an error: the world is left as the last pass made
// it and a warning is logged.
//
// Errors: ErrOptionViolation, ErrNilWorld, context cancellation, and
// surgery failures such as palette.ErrPaletteExhausted. On error the
// partial Result so far is returned alongside.
func (c *Conditioner) Run(w *region.World) (Result, error) {
	if c.opts.err != nil {
		return Result{}, c.opts.err
	}
	if w == nil {
		return Result{}, ErrNilWorld
	}
	log := c.opts.Logger

	res := Result{Status: Converged}
	pending := w.Regions()
	for len(pending) > 0 {
		if res.Iterations >= c.opts.MaxIterations {
			res.Status = IterationLimitReached
			res.Remaining = pending
			break
		}
		if err := c.opts.Ctx.Err(); err != nil {
			return res, fmt.Errorf("condition: before pass %d: %w", res.Iterations+1, err)
		}

		next, stats, err := c.FixPass(w, pending)
		res.Iterations++
		res.Stats.add(stats)
		if err != nil {
			return res, fmt.Errorf("condition: pass %d: %w", res.Iterations, err)
		}
		pending = next
		c.opts.Recorder.ObservePass(res.Iterations, len(pending))
		log.Debug("pass finished",
			zap.Int("pass", res.Iterations),
			zap.Int("affected", len(pending)),
			zap.Int("regions", w.RegionCount()),
		)
	}

	if res.Status == IterationLimitReached {
		log.Warn("conditioning did not converge",
			zap.Int("iterations", res.Iterations),
			zap.Ints("remaining", res.Remaining),
		)
	} else {
		log.Info("conditioning converged",
			zap.Int("iterations", res.Iterations),
			zap.Int("splits", res.Stats.Splits),
			zap.Int("merges", res.Stats.Merges),
			zap.Int("redistributions", res.Stats.Redistributions),
		)
	}
	c.opts.Recorder.ObserveResult(res)

	return res, nil
}

// FixPass runs one pass over the given regions, in order, and returns the
// live regions it touched (ascending) together with the work done. Run
// calls it until nothing is touched; it is exported for callers that want to
// drive passes themselves.
//
// Per region: empty regions are logged and skipped, land is left as built,
// water singletons are queued for pruning unless they are lakes, and larger
// water regions are split when disconnected and then have their limbs
// resolved. Queued singletons are pruned last.
func (c *Conditioner) FixPass(w *region.World, regions []int) ([]int, Stats, error) {
	if c.opts.err != nil {
		return nil, Stats{}, c.opts.err
	}
	if w == nil {
		return nil, Stats{}, ErrNilWorld
	}
	p := newPass(w, &c.opts)
	if err := p.run(regions); err != nil {
		return nil, p.stats, err
	}

	return p.next(), p.stats, nil
}
