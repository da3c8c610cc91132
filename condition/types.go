// Package condition provides tunable options, results and error definitions
// for the region conditioner.
package condition

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for conditioning.
var (
	// ErrNilWorld is returned if Run is given a nil world.
	ErrNilWorld = errors.New("condition: world is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("condition: invalid option supplied")
)

// Surgery kinds reported to a Recorder.
const (
	KindSplit        = "split"
	KindRedistribute = "redistribute"
	KindMerge        = "merge"
	KindPrune        = "prune"
)

// Defaults used by DefaultOptions.
const (
	DefaultMaxIterations = 4
	DefaultSmallRegion   = 3
)

// Recorder observes a conditioning run. Implementations must be cheap; they
// are called synchronously from the pass loop.
type Recorder interface {
	// ObservePass is called after pass n with the number of regions it
	// scheduled for the next pass.
	ObservePass(n int, affected int)
	// ObserveSurgery is called once per primitive applied, with a Kind* value.
	ObserveSurgery(kind string)
	// ObserveResult is called once when Run returns without error.
	ObserveResult(res Result)
}

type nopRecorder struct{}

func (nopRecorder) ObservePass(int, int)  {}
func (nopRecorder) ObserveSurgery(string) {}
func (nopRecorder) ObserveResult(Result)  {}

// Option configures a Conditioner via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the conditioner parameters.
type Options struct {
	// Ctx is checked for cancellation once before every pass.
	Ctx context.Context

	// MaxIterations caps the number of passes.
	MaxIterations int

	// SmallRegion is the size gate of limb resolution and pruning: regions
	// with at most this many children are "too small" to donate or receive.
	SmallRegion int

	Logger   *zap.Logger
	Recorder Recorder

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - MaxIterations = 4, SmallRegion = 3
//   - a no-op logger and recorder.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		SmallRegion:   DefaultSmallRegion,
		Logger:        zap.NewNop(),
		Recorder:      nopRecorder{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations sets the pass budget; n < 1 → ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSmallRegion sets the size gate; n < 1 → ErrOptionViolation.
func WithSmallRegion(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: SmallRegion must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.SmallRegion = n
	}
}

// WithLogger sets the logger; pass anomalies and non-convergence are logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder registers an observer for passes and surgeries.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// Status tells whether a run reached its fixpoint.
type Status int

const (
	// Converged means the last pass touched no region.
	Converged Status = iota
	// IterationLimitReached means the pass budget ran out first; the world
	// is best effort and Result.Remaining lists the still pending regions.
	IterationLimitReached
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimitReached:
		return "iteration-limit-reached"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Stats counts the work done by a run.
type Stats struct {
	Splits          int
	Redistributions int
	Merges          int
	Limbs           int
	Prunes          int
}

func (s *Stats) add(o Stats) {
	s.Splits += o.Splits
	s.Redistributions += o.Redistributions
	s.Merges += o.Merges
	s.Limbs += o.Limbs
	s.Prunes += o.Prunes
}

// Result is the outcome of Run.
type Result struct {
	Status     Status
	Iterations int
	// Remaining holds the region ids a further pass would have visited,
	// ascending; empty when Converged.
	Remaining []int
	Stats     Stats
}

// Limb is a thin strand of cells hanging off (or bridging) a region.
type Limb struct {
	Region int
	// Cells in discovery order.
	Cells []int
	// Start is the junction cell the limb hangs from, or -1.
	Start int
	// End is the degree-1 tip of the limb, or -1.
	End int
}
