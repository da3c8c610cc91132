package adjacency

import "github.com/katalvlaran/blobgraph/cellgraph"

// Graph is the read-only view the oracle needs of a partitioned cell graph.
type Graph interface {
	// Neighbours returns the neighbour ids of a cell.
	Neighbours(id int) []int
	// Site returns the site coordinate of a cell.
	Site(id int) cellgraph.Point
	// Owner returns the id of the region that currently owns a cell.
	Owner(id int) int
}

// Cost is the per-cell search state.
type Cost struct {
	G, H float64
}

// F returns the total estimated cost G+H.
func (c Cost) F() float64 { return c.G + c.H }

// Scratch holds search state keyed by cell id. Reachable clears it before
// returning, so one Scratch can be reused by sequential searches.
type Scratch map[int]Cost

// Options configures a single search.
type Options struct {
	// Scratch receives the per-cell costs; nil means a private map.
	Scratch Scratch
	// OnExpand is called for every cell the search settles, in order.
	OnExpand func(id int)
}

// Option represents a functional option for Reachable.
type Option func(*Options)

// WithScratch makes the search use s for its per-cell state.
func WithScratch(s Scratch) Option {
	return func(o *Options) {
		if s != nil {
			o.Scratch = s
		}
	}
}

// WithOnExpand registers a hook called for every settled cell. A failed
// search settles exactly the origin's territory component, which callers use
// to skip origins that cannot succeed either.
func WithOnExpand(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns options with a private scratch and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(int) {},
	}
}
