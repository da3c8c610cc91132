// SPDX-License-Identifier: MIT
// Package: blobgraph/worldgen
//
// config.go - pipeline configuration and deterministic defaults.
//
// Design:
//   • Config is the single source of truth for every pipeline knob.
//   • Defaults are deterministic and documented; no globals.
//   • Validate rejects bad values up front so Generate never fails halfway
//     on a parameter problem.
//
// Deterministic defaults:
//   • 100×100 map, site radius 4, seed 1
//   • simplex noise, frequency 0.04, 4 octaves, radial falloff on
//   • sea level 0.3
//   • 12 water seeds, 12 land seeds
//   • conditioner budget 4 passes, small-region gate 3

package worldgen

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/blobgraph/condition"
)

// Sentinel errors for world generation.
var (
	// ErrInvalidConfig indicates a Config value outside its documented range.
	ErrInvalidConfig = errors.New("worldgen: invalid config")
	// ErrNilGraph indicates SeedColours was given a nil graph.
	ErrNilGraph = errors.New("worldgen: graph is nil")
)

// Noise kinds accepted by Config.Noise.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
)

const (
	defaultWidth      = 100.0
	defaultHeight     = 100.0
	defaultRadius     = 4.0
	defaultSeed       = int64(1)
	defaultFrequency  = 0.04
	defaultOctaves    = 4
	defaultSeaLevel   = 0.3
	defaultWaterSeeds = 12
	defaultLandSeeds  = 12
)

// Config describes one generated world.
type Config struct {
	// Width and Height bound the sampled sites.
	Width, Height float64
	// Radius is the minimum distance between sites; it sets the cell size.
	Radius float64
	// Seed drives site sampling, noise, seed placement and the palette.
	Seed int64

	// Noise is NoiseSimplex or NoisePerlin.
	Noise     string
	Frequency float64
	Octaves   int
	// Falloff multiplies the noise by a radial falloff so land gathers in
	// the middle of the map.
	Falloff bool
	// SeaLevel is the land threshold in [0,1].
	SeaLevel float64

	// WaterSeeds and LandSeeds are the numbers of initial colours per type.
	WaterSeeds int
	LandSeeds  int

	// MaxIterations and SmallRegion are passed to the conditioner.
	MaxIterations int
	SmallRegion   int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Width:         defaultWidth,
		Height:        defaultHeight,
		Radius:        defaultRadius,
		Seed:          defaultSeed,
		Noise:         NoiseSimplex,
		Frequency:     defaultFrequency,
		Octaves:       defaultOctaves,
		Falloff:       true,
		SeaLevel:      defaultSeaLevel,
		WaterSeeds:    defaultWaterSeeds,
		LandSeeds:     defaultLandSeeds,
		MaxIterations: condition.DefaultMaxIterations,
		SmallRegion:   condition.DefaultSmallRegion,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !positive(c.Width) || !positive(c.Height):
		return fmt.Errorf("%w: map size must be positive, got %g×%g", ErrInvalidConfig, c.Width, c.Height)
	case !positive(c.Radius) || c.Radius > math.Min(c.Width, c.Height):
		return fmt.Errorf("%w: radius must lie in (0, %g], got %g", ErrInvalidConfig, math.Min(c.Width, c.Height), c.Radius)
	case c.Noise != NoiseSimplex && c.Noise != NoisePerlin:
		return fmt.Errorf("%w: unknown noise %q", ErrInvalidConfig, c.Noise)
	case !positive(c.Frequency):
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidConfig, c.Frequency)
	case c.Octaves < 1:
		return fmt.Errorf("%w: octaves must be ≥ 1, got %d", ErrInvalidConfig, c.Octaves)
	case math.IsNaN(c.SeaLevel) || c.SeaLevel < 0 || c.SeaLevel > 1:
		return fmt.Errorf("%w: sea level must lie in [0,1], got %g", ErrInvalidConfig, c.SeaLevel)
	case c.WaterSeeds < 1 || c.LandSeeds < 1:
		return fmt.Errorf("%w: seeds must be ≥ 1, got %d water, %d land", ErrInvalidConfig, c.WaterSeeds, c.LandSeeds)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations must be ≥ 1, got %d", ErrInvalidConfig, c.MaxIterations)
	case c.SmallRegion < 1:
		return fmt.Errorf("%w: small region must be ≥ 1, got %d", ErrInvalidConfig, c.SmallRegion)
	}

	return nil
}

// positive reports v > 0 for finite v.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
