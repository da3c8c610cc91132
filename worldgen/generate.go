package worldgen

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/condition"
	"github.com/katalvlaran/blobgraph/heightfield"
	"github.com/katalvlaran/blobgraph/palette"
	"github.com/katalvlaran/blobgraph/region"
	"github.com/katalvlaran/blobgraph/tessellation"
)

// Output is a generated, conditioned world.
type Output struct {
	Graph  *cellgraph.Graph
	World  *region.World
	Result condition.Result
	// LandCells is the number of cells above sea level.
	LandCells int
}

// Option configures Generate.
type Option func(*options)

type options struct {
	log      *zap.Logger
	recorder condition.Recorder
}

// WithLogger sets the logger handed to every stage.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRecorder forwards conditioning observations to r.
func WithRecorder(r condition.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// Generate runs the whole pipeline:
//
//	sites → Voronoi graph → land/water classification → seed colours
//	→ region.Build → condition.Run → region.Check
//
// The same Config always yields the same world. A conditioner that runs out
// of passes is reported through Output.Result, not as an error; a world that
// fails its structural check is an error.
func Generate(ctx context.Context, cfg Config, opts ...Option) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With(zap.Int64("seed", cfg.Seed))

	sites, err := tessellation.Sites(tessellation.Rect{X1: cfg.Width, Y1: cfg.Height}, cfg.Radius, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("worldgen: sample sites: %w", err)
	}
	g, err := tessellation.Voronoi(sites)
	if err != nil {
		return nil, fmt.Errorf("worldgen: tessellate: %w", err)
	}
	log.Debug("tessellated", zap.Int("cells", g.Len()))
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	land, err := heightfield.Classify(g, cfg.field(), cfg.SeaLevel)
	if err != nil {
		return nil, fmt.Errorf("worldgen: classify: %w", err)
	}
	log.Debug("classified", zap.Int("land", land), zap.Int("water", g.Len()-land))

	// Unseeded islands each take a land colour on top of the seeds.
	islands := len(components(g, true))
	reserve := palette.ReserveFor(g.Len()) + max(cfg.WaterSeeds, cfg.LandSeeds+islands)
	p := palette.New(reserve, palette.WithSeed(cfg.Seed))
	colours, err := SeedColours(g, cfg.WaterSeeds, cfg.LandSeeds, cfg.Seed, p)
	if err != nil {
		return nil, fmt.Errorf("worldgen: %w", err)
	}

	w, err := region.Build(g, colours, region.WithPalette(p), region.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("worldgen: build regions: %w", err)
	}
	log.Debug("regions built", zap.Int("regions", w.RegionCount()))

	copts := []condition.Option{
		condition.WithContext(ctx),
		condition.WithLogger(log),
		condition.WithMaxIterations(cfg.MaxIterations),
		condition.WithSmallRegion(cfg.SmallRegion),
	}
	if o.recorder != nil {
		copts = append(copts, condition.WithRecorder(o.recorder))
	}
	res, err := condition.New(copts...).Run(w)
	if err != nil {
		return nil, fmt.Errorf("worldgen: condition: %w", err)
	}
	if err = w.Check(); err != nil {
		return nil, fmt.Errorf("worldgen: %w", err)
	}

	return &Output{Graph: g, World: w, Result: res, LandCells: land}, nil
}

// field returns the configured height field.
func (c Config) field() heightfield.Field {
	var f heightfield.Field
	switch c.Noise {
	case NoisePerlin:
		f = heightfield.NewPerlin(c.Seed, c.Frequency, c.Octaves)
	default:
		f = heightfield.NewSimplex(c.Seed, c.Frequency, c.Octaves)
	}
	if !c.Falloff {
		return f
	}
	center := cellgraph.Point{X: c.Width / 2, Y: c.Height / 2}

	return heightfield.Multiply(f, heightfield.Radial(center, math.Min(c.Width, c.Height)/2))
}
