package worldgen_test

import (
	"context"
	"math"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/condition"
	"github.com/katalvlaran/blobgraph/palette"
	"github.com/katalvlaran/blobgraph/tessellation"
	"github.com/katalvlaran/blobgraph/worldgen"
)

func smallConfig() worldgen.Config {
	cfg := worldgen.DefaultConfig()
	cfg.Width, cfg.Height = 40, 40
	cfg.Radius = 3
	cfg.Seed = 7
	cfg.Frequency = 0.08
	cfg.WaterSeeds, cfg.LandSeeds = 6, 6

	return cfg
}

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, worldgen.DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *worldgen.Config)
	}{
		{name: "ZeroWidth", mutate: func(c *worldgen.Config) { c.Width = 0 }},
		{name: "InfiniteHeight", mutate: func(c *worldgen.Config) { c.Height = math.Inf(1) }},
		{name: "RadiusTooLarge", mutate: func(c *worldgen.Config) { c.Radius = 1000 }},
		{name: "NegativeRadius", mutate: func(c *worldgen.Config) { c.Radius = -1 }},
		{name: "UnknownNoise", mutate: func(c *worldgen.Config) { c.Noise = "worley" }},
		{name: "ZeroFrequency", mutate: func(c *worldgen.Config) { c.Frequency = 0 }},
		{name: "NoOctaves", mutate: func(c *worldgen.Config) { c.Octaves = 0 }},
		{name: "SeaLevelAboveOne", mutate: func(c *worldgen.Config) { c.SeaLevel = 1.2 }},
		{name: "NoWaterSeeds", mutate: func(c *worldgen.Config) { c.WaterSeeds = 0 }},
		{name: "NoIterations", mutate: func(c *worldgen.Config) { c.MaxIterations = 0 }},
		{name: "NoSmallRegion", mutate: func(c *worldgen.Config) { c.SmallRegion = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := worldgen.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), worldgen.ErrInvalidConfig)
		})
	}
}

func TestSeedColours(t *testing.T) {
	// Left half land, right half water.
	g, err := tessellation.Grid(4, 6, tessellation.Conn4, func(x, y int) bool { return x < 3 })
	require.NoError(t, err)
	p := palette.New(10)

	colours, err := worldgen.SeedColours(g, 2, 3, 5, p)
	require.NoError(t, err)
	require.Len(t, colours, g.Len())

	waterCols, landCols := map[color.RGBColor]bool{}, map[color.RGBColor]bool{}
	for _, id := range g.IDs() {
		c, _ := g.Cell(id)
		col := colours[id]
		assert.True(t, p.Used(col), "colour of cell %d comes from the palette", id)
		if c.IsLand {
			landCols[col] = true
		} else {
			waterCols[col] = true
		}
	}
	assert.LessOrEqual(t, len(waterCols), 2)
	assert.LessOrEqual(t, len(landCols), 3)
	for col := range waterCols {
		assert.False(t, landCols[col], "land and water never share a colour")
	}
	assert.Equal(t, 8, p.Remaining(palette.Water))
	assert.Equal(t, 7, p.Remaining(palette.Land))

	again, err := worldgen.SeedColours(g, 2, 3, 5, palette.New(10))
	require.NoError(t, err)
	assert.Equal(t, colours, again, "same seed, same colouring")
}

func TestSeedColours_LandPatchesAreConnected(t *testing.T) {
	// A U-shaped island, a separate islet in the east, water elsewhere.
	mask := [][]bool{
		{true, false, true, false, true},
		{true, false, true, false, false},
		{true, true, true, false, true},
	}
	g, err := tessellation.FromMask(mask, tessellation.Conn4)
	require.NoError(t, err)

	for seed := int64(0); seed < 20; seed++ {
		p := palette.New(10)
		colours, err := worldgen.SeedColours(g, 1, 2, seed, p)
		require.NoError(t, err)
		require.Len(t, colours, g.Len())

		patches := map[color.RGBColor][]int{}
		for _, id := range g.IDs() {
			if c, _ := g.Cell(id); c.IsLand {
				patches[colours[id]] = append(patches[colours[id]], id)
			}
		}
		for col, ids := range patches {
			assert.True(t, connected(g, ids), "seed %d: patch %s is split", seed, palette.Hex(col))
		}
		// Two seeds plus one colour for every island that drew none.
		assert.GreaterOrEqual(t, len(patches), 3, "seed %d", seed)
		assert.Equal(t, 10-len(patches), p.Remaining(palette.Land), "seed %d", seed)
	}
}

// connected reports whether ids form one component of g restricted to ids.
func connected(g *cellgraph.Graph, ids []int) bool {
	in := make(map[int]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}
	seen := map[int]bool{ids[0]: true}
	stack := []int{ids[0]}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range g.Neighbours(id) {
			if in[nb] && !seen[nb] {
				seen[nb] = true
				stack = append(stack, nb)
			}
		}
	}

	return len(seen) == len(ids)
}

func TestSeedColours_Errors(t *testing.T) {
	_, err := worldgen.SeedColours(nil, 1, 1, 0, nil)
	assert.ErrorIs(t, err, worldgen.ErrNilGraph)

	g, err := tessellation.Grid(2, 2, tessellation.Conn4, nil)
	require.NoError(t, err)
	p := palette.New(1)
	_, err = worldgen.SeedColours(g, 3, 1, 0, p)
	assert.ErrorIs(t, err, palette.ErrPaletteExhausted)
}

func TestGenerate(t *testing.T) {
	for _, noise := range []string{worldgen.NoiseSimplex, worldgen.NoisePerlin} {
		t.Run(noise, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Noise = noise
			out, err := worldgen.Generate(context.Background(), cfg)
			require.NoError(t, err)

			require.NotNil(t, out.World)
			assert.NoError(t, out.World.Check())
			assert.Equal(t, out.Graph.Len(), len(out.World.Cells()))
			assert.GreaterOrEqual(t, out.Result.Iterations, 1)
			assert.LessOrEqual(t, out.Result.Iterations, cfg.MaxIterations)
			if out.Result.Status == condition.Converged {
				assert.Empty(t, out.Result.Remaining)
			}

			owned := 0
			for _, r := range out.World.Snapshot() {
				owned += len(r.Children)
			}
			assert.Equal(t, out.Graph.Len(), owned, "every cell is owned exactly once")

			if out.Result.Status != condition.Converged {
				return
			}
			for _, rid := range out.World.Regions() {
				r, _ := out.World.Region(rid)
				if r.Len() < 2 {
					continue
				}
				frag, err := out.World.CheckIfUnitary(rid)
				require.NoError(t, err)
				assert.Empty(t, frag, "region %d (land=%v) is disjoint", rid, r.IsLand)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := worldgen.Generate(context.Background(), smallConfig())
	require.NoError(t, err)
	b, err := worldgen.Generate(context.Background(), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, a.LandCells, b.LandCells)
	assert.Equal(t, a.Result, b.Result)
	assert.Equal(t, a.World.Snapshot(), b.World.Snapshot())
}

func TestGenerate_Errors(t *testing.T) {
	cfg := smallConfig()
	cfg.Octaves = 0
	_, err := worldgen.Generate(context.Background(), cfg)
	assert.ErrorIs(t, err, worldgen.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = worldgen.Generate(ctx, smallConfig())
	assert.ErrorIs(t, err, context.Canceled)
}
