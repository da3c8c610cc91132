package condition_test

import (
	"testing"
	"unicode"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/condition"
	"github.com/katalvlaran/blobgraph/region"
)

// world builds a 4-connected grid world from rows of runes. Every rune names
// a colour; lowercase runes are land. Cell id = y*width + x, site = (x, y).
func world(t *testing.T, rows ...string) *region.World {
	t.Helper()
	return grid(t, false, rows...)
}

// world8 is world with diagonal neighbours as well.
func world8(t *testing.T, rows ...string) *region.World {
	t.Helper()
	return grid(t, true, rows...)
}

func grid(t *testing.T, diagonal bool, rows ...string) *region.World {
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
			colours[id] = color.RGBColor{byte(ch), 40, 80, 0}
			if x > 0 {
				require.NoError(t, g.Link(id, id-1))
			}
			if y > 0 {
				require.NoError(t, g.Link(id, id-width))
			}
			if diagonal && y > 0 && x > 0 {
				require.NoError(t, g.Link(id, id-width-1))
			}
			if diagonal && y > 0 && x < width-1 {
				require.NoError(t, g.Link(id, id-width+1))
			}
		}
	}
	w, err := region.Build(g, colours)
	require.NoError(t, err)
	require.NoError(t, w.Check())

	return w
}

// requireConnected asserts every multi-cell region is friend-connected.
func requireConnected(t *testing.T, w *region.World) {
	t.Helper()
	for _, rid := range w.Regions() {
		r, _ := w.Region(rid)
		if r.Len() < 2 {
			continue
		}
		frag, err := w.CheckIfUnitary(rid)
		require.NoError(t, err)
		require.Empty(t, frag, "region %d is disjoint", rid)
	}
}

// recorder captures Recorder calls.
type recorder struct {
	passes  [][2]int
	surgery map[string]int
	results []condition.Result
}

func newRecorder() *recorder { return &recorder{surgery: make(map[string]int)} }

func (r *recorder) ObservePass(n, affected int) { r.passes = append(r.passes, [2]int{n, affected}) }
func (r *recorder) ObserveSurgery(kind string) { r.surgery[kind]++ }
func (r *recorder) ObserveResult(res condition.Result) {
	r.results = append(r.results, res)
}
