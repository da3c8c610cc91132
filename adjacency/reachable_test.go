package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/blobgraph/adjacency"
	"github.com/katalvlaran/blobgraph/cellgraph"
)

// stripGraph is a 1×n strip of cells; owners[i] is the region of cell i.
type stripGraph struct {
	owners []int
}

func (s stripGraph) Neighbours(id int) []int {
	var out []int
	if id > 0 {
		out = append(out, id-1)
	}
	if id+1 < len(s.owners) {
		out = append(out, id+1)
	}
	return out
}

func (s stripGraph) Site(id int) cellgraph.Point { return cellgraph.Point{X: float64(id)} }
func (s stripGraph) Owner(id int) int            { return s.owners[id] }

func TestReachable_DirectNeighbour(t *testing.T) {
	g := stripGraph{owners: []int{1, 1, 2, 2}}
	assert.True(t, adjacency.Reachable(g, 0, 2, cellgraph.Point{X: 2.5}))
	assert.True(t, adjacency.Reachable(g, 3, 1, cellgraph.Point{X: 0.5}))
}

func TestReachable_BlockedByThirdRegion(t *testing.T) {
	// Region 3 sits between 1 and 2; the search may not cross it.
	g := stripGraph{owners: []int{1, 1, 3, 2, 2}}
	assert.False(t, adjacency.Reachable(g, 0, 2, cellgraph.Point{X: 3.5}))
	assert.True(t, adjacency.Reachable(g, 0, 3, cellgraph.Point{X: 2}))
}

func TestReachable_OriginOwnedByTarget(t *testing.T) {
	g := stripGraph{owners: []int{4, 4}}
	assert.True(t, adjacency.Reachable(g, 1, 4, cellgraph.Point{}))
}

func TestReachable_NilGraph(t *testing.T) {
	assert.False(t, adjacency.Reachable(nil, 0, 1, cellgraph.Point{}))
}

func TestReachable_ScratchIsClearedAndHookSeesHomeComponent(t *testing.T) {
	g := stripGraph{owners: []int{1, 1, 1, 3, 2}}
	scratch := adjacency.Scratch{}
	var expanded []int

	ok := adjacency.Reachable(g, 1, 2, cellgraph.Point{X: 4},
		adjacency.WithScratch(scratch),
		adjacency.WithOnExpand(func(id int) { expanded = append(expanded, id) }),
	)
	assert.False(t, ok)
	assert.Empty(t, scratch, "scratch must be reset on exit")
	assert.ElementsMatch(t, []int{0, 1, 2}, expanded)
}

func TestCost_F(t *testing.T) {
	assert.Equal(t, 3.5, adjacency.Cost{G: 1, H: 2.5}.F())
}
