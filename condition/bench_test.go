package condition_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/condition"
	"github.com/katalvlaran/blobgraph/palette"
	"github.com/katalvlaran/blobgraph/region"
	"github.com/katalvlaran/blobgraph/tessellation"
	"github.com/katalvlaran/blobgraph/worldgen"
)

// benchWorld colours g from seed and builds a fresh world for one run.
func benchWorld(b *testing.B, g *cellgraph.Graph, seed int64) *region.World {
	b.Helper()
	p := palette.New(palette.ReserveFor(g.Len()) + g.Len())
	colours, err := worldgen.SeedColours(g, 8, 8, seed, p)
	if err != nil {
		b.Fatal(err)
	}
	w, err := region.Build(g, colours, region.WithPalette(p))
	if err != nil {
		b.Fatal(err)
	}

	return w
}

// BenchmarkRun measures a full conditioning run on a generated Voronoi world
// of a few thousand cells. World construction is excluded from the timing.
func BenchmarkRun(b *testing.B) {
	cfg := worldgen.DefaultConfig()
	cfg.Width, cfg.Height = 120, 120
	cfg.Radius = 2.5
	cfg.Seed = 11
	out, err := worldgen.Generate(context.Background(), cfg)
	if err != nil {
		b.Fatal(err)
	}
	c := condition.New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := benchWorld(b, out.Graph, int64(i))
		b.StartTimer()
		if _, err = c.Run(w); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Grid8 runs the conditioner on a 60×60 8-connected grid with a
// diagonal land band, the densest neighbourhood the tessellation offers.
func BenchmarkRun_Grid8(b *testing.B) {
	const n = 60
	g, err := tessellation.Grid(n, n, tessellation.Conn8, func(x, y int) bool {
		d := x - y
		return d > -6 && d < 6
	})
	if err != nil {
		b.Fatal(err)
	}
	c := condition.New()

	b.ReportAllocs()
	b.SetBytes(int64(g.Len()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := benchWorld(b, g, int64(i))
		b.StartTimer()
		if _, err = c.Run(w); err != nil {
			b.Fatal(err)
		}
	}
}
