package region_test

import (
	"testing"
	"unicode"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/region"
)

// layout builds a 4-connected grid from rows of runes. Every rune names a
// colour; lowercase runes are land. Cell id = y*width + x, site = (x, y).
func layout(t *testing.T, rows ...string) (*cellgraph.Graph, map[int]color.RGBColor) {
	t.Helper()
	g := cellgraph.New()
	colours := make(map[int]color.RGBColor)
	width := len(rows[0])
	for y, row := range rows {
		require.Len(t, row, width, "ragged layout")
		for x, ch := range row {
			id := y*width + x
			require.NoError(t, g.AddCell(cellgraph.Cell{
				ID:     id,
				Site:   cellgraph.Point{X: float64(x), Y: float64(y)},
				IsLand: unicode.IsLower(ch),
			}))
			colours[id] = color.RGBColor{byte(ch), 10, 20, 0}
			if x > 0 {
				require.NoError(t, g.Link(id, id-1))
			}
			if y > 0 {
				require.NoError(t, g.Link(id, id-width))
			}
		}
	}

	return g, colours
}

// world builds a World from a layout and fails the test on error.
func world(t *testing.T, opts []region.Option, rows ...string) *region.World {
	t.Helper()
	g, colours := layout(t, rows...)
	w, err := region.Build(g, colours, opts...)
	require.NoError(t, err)
	require.NoError(t, w.Check())

	return w
}

// children returns a copy of a region's child list.
func children(t *testing.T, w *region.World, rid int) []int {
	t.Helper()
	r, ok := w.Region(rid)
	require.True(t, ok, "region %d not found", rid)

	return append([]int(nil), r.Children...)
}
