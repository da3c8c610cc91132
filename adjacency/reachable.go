package adjacency

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/blobgraph/cellgraph"
)

// Reachable reports whether a cell owned by target can be reached from origin
// while only stepping through cells owned by origin's region or by target.
//
// goal steers the search (h = distance to goal). Returns false for a nil
// graph. When origin itself is owned by target the answer is trivially true.
//
// Complexity: O((V + E) log V) over the two regions' cells.
func Reachable(g Graph, origin, target int, goal cellgraph.Point, opts ...Option) bool {
	if g == nil {
		return false
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Scratch == nil {
		cfg.Scratch = make(Scratch)
	}

	s := &search{
		g:       g,
		home:    g.Owner(origin),
		target:  target,
		goal:    goal,
		costs:   cfg.Scratch,
		closed:  make(map[int]bool),
		onStep:  cfg.OnExpand,
		pending: heap.New(func(a, b item) bool { return a.f < b.f }),
	}
	defer s.reset()

	return s.run(origin)
}

// item is one heap entry; stale entries are skipped on pop.
type item struct {
	id int
	f  float64
}

// search encapsulates the mutable state of one Reachable call.
type search struct {
	g       Graph
	home    int
	target  int
	goal    cellgraph.Point
	costs   Scratch
	closed  map[int]bool
	onStep  func(int)
	pending *heap.Heap[item]
}

// run drives the open set until target is popped or the set is empty.
func (s *search) run(origin int) bool {
	start := Cost{G: 0, H: s.g.Site(origin).Dist(s.goal)}
	s.costs[origin] = start
	s.pending.Push(item{id: origin, f: start.F()})

	for s.pending.Size() > 0 {
		cur, _ := s.pending.Pop()
		if s.closed[cur.id] {
			continue
		}
		s.closed[cur.id] = true
		if s.g.Owner(cur.id) == s.target {
			return true
		}
		s.onStep(cur.id)
		s.relax(cur.id)
	}

	return false
}

// relax pushes every admissible neighbour whose g improves.
func (s *search) relax(u int) {
	here := s.g.Site(u)
	gu := s.costs[u].G
	for _, v := range s.g.Neighbours(u) {
		if s.closed[v] {
			continue
		}
		owner := s.g.Owner(v)
		if owner != s.home && owner != s.target {
			continue
		}
		site := s.g.Site(v)
		ng := gu + here.Dist(site)
		if prev, seen := s.costs[v]; seen && ng >= prev.G {
			continue
		}
		c := Cost{G: ng, H: site.Dist(s.goal)}
		s.costs[v] = c
		s.pending.Push(item{id: v, f: c.F()})
	}
}

// reset clears the caller's scratch so nothing leaks into the next search.
func (s *search) reset() {
	for id := range s.costs {
		delete(s.costs, id)
	}
}
