package region

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blobgraph/cellgraph"
)

// strip builds a 1×n row of water cells; colour[i] picks the region of cell i.
func strip(t *testing.T, colour ...byte) *World {
	t.Helper()
	g := cellgraph.New()
	cols := make(map[int]color.RGBColor, len(colour))
	for i, c := range colour {
		require.NoError(t, g.AddCell(cellgraph.Cell{ID: i, Site: cellgraph.Point{X: float64(i)}}))
		if i > 0 {
			require.NoError(t, g.Link(i, i-1))
		}
		cols[i] = color.RGBColor{c, c, c, 0}
	}
	w, err := Build(g, cols)
	require.NoError(t, err)
	require.NoError(t, w.Check())

	return w
}

func TestMerge_EmptySourceOnlyDropsDanglingEdge(t *testing.T) {
	w := strip(t, 1, 1, 2, 3)
	require.NoError(t, w.Redistribute(1, []int{2}))
	a, b, c := w.regions[1], w.regions[2], w.regions[3]
	require.Zero(t, b.Len())

	// Leave a stale edge behind, as a buggy caller could.
	w.link(a, b)
	require.Error(t, w.Check())

	before := append([]int(nil), a.Children...)
	require.NoError(t, w.Merge(1, 2))
	assert.Equal(t, before, a.Children)
	assert.Equal(t, []int{3}, sortedSet(a.Neighbours))
	assert.Zero(t, b.Neighbours.Size())
	assert.Equal(t, []int{1}, sortedSet(c.Neighbours))
	assert.NoError(t, w.Check())
}

func TestCheck_DetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(w *World)
	}{
		{
			name: "DoubleOwnership",
			corrupt: func(w *World) {
				w.regions[2].Children = append(w.regions[2].Children, 0)
			},
		},
		{
			name: "StaleBackReference",
			corrupt: func(w *World) {
				w.cells[0].Region = 2
			},
		},
		{
			name: "FriendAlsoEnemy",
			corrupt: func(w *World) {
				w.cells[0].Enemies.Put(1)
			},
		},
		{
			name: "MissingFriend",
			corrupt: func(w *World) {
				w.cells[0].Friends.Remove(1)
			},
		},
		{
			name: "StaleBorder",
			corrupt: func(w *World) {
				w.regions[1].Border.Remove(1)
			},
		},
		{
			name: "AsymmetricAdjacency",
			corrupt: func(w *World) {
				w.regions[2].Neighbours.Remove(1)
			},
		},
		{
			name: "WrongColour",
			corrupt: func(w *World) {
				w.cells[2].Colour = color.RGBColor{9, 9, 9, 0}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := strip(t, 1, 1, 2)
			tc.corrupt(w)
			assert.ErrorIs(t, w.Check(), ErrInvariant)
		})
	}
}

func TestIsAdjacent_ReusesScratch(t *testing.T) {
	w := strip(t, 1, 1, 1, 2, 3)
	assert.False(t, w.IsAdjacent(1, 3))
	assert.True(t, w.IsAdjacent(1, 2))
	assert.Empty(t, w.scratch)
}
