// Package heightfield supplies the scalar fields that decide which cells are
// land: fractal simplex or Perlin noise, shaped by an optional radial falloff
// so generated maps read as islands, then thresholded onto a cell graph.
package heightfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/blobgraph/cellgraph"
)

// Sentinel errors for height fields.
var (
	// ErrNilGraph indicates Classify was given a nil graph.
	ErrNilGraph = errors.New("heightfield: graph is nil")
	// ErrNilField indicates a nil Field.
	ErrNilField = errors.New("heightfield: field is nil")
	// ErrThreshold indicates a threshold outside [0,1].
	ErrThreshold = errors.New("heightfield: threshold must lie in [0,1]")
)

// Field is a height map. At returns a value in [0,1].
type Field interface {
	At(x, y float64) float64
}

// FieldFunc adapts an ordinary function to Field.
type FieldFunc func(x, y float64) float64

// At calls f(x, y).
func (f FieldFunc) At(x, y float64) float64 { return f(x, y) }

// persistence is the amplitude ratio between successive octaves.
const persistence = 0.5

// NewSimplex returns fractal OpenSimplex noise: octaves layers, each at
// twice the frequency and half the amplitude of the previous one.
// octaves < 1 is treated as 1.
func NewSimplex(seed int64, frequency float64, octaves int) Field {
	noise := opensimplex.NewNormalized(seed)
	if octaves < 1 {
		octaves = 1
	}

	return FieldFunc(func(x, y float64) float64 {
		total, amplitude, norm, f := 0.0, 1.0, 0.0, frequency
		for i := 0; i < octaves; i++ {
			total += noise.Eval2(x*f, y*f) * amplitude
			norm += amplitude
			amplitude *= persistence
			f *= 2
		}

		return clamp01(total / norm)
	})
}

// NewPerlin returns Perlin noise with octaves layers (alpha 2, beta 2).
// Raw values in [-1,1] are mapped to [0,1].
func NewPerlin(seed int64, frequency float64, octaves int) Field {
	if octaves < 1 {
		octaves = 1
	}
	p := perlin.NewPerlin(2, 2, int32(octaves), seed)

	return FieldFunc(func(x, y float64) float64 {
		return clamp01((p.Noise2D(x*frequency, y*frequency) + 1) / 2)
	})
}

// Radial is 1 at center and falls off smoothly to 0 at radius and beyond.
func Radial(center cellgraph.Point, radius float64) Field {
	return FieldFunc(func(x, y float64) float64 {
		if radius <= 0 {
			return 0
		}
		d := center.Dist(cellgraph.Point{X: x, Y: y}) / radius
		if d >= 1 {
			return 0
		}

		return 1 - d*d*(3-2*d)
	})
}

// Multiply returns the point-wise product of fields; nil fields are skipped.
func Multiply(fields ...Field) Field {
	return FieldFunc(func(x, y float64) float64 {
		v := 1.0
		for _, f := range fields {
			if f != nil {
				v *= f.At(x, y)
			}
		}

		return v
	})
}

// Classify marks every cell of g as land when f at its site is at or above
// threshold, water otherwise, and returns the number of land cells.
func Classify(g *cellgraph.Graph, f Field, threshold float64) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if f == nil {
		return 0, ErrNilField
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return 0, fmt.Errorf("%w: %g", ErrThreshold, threshold)
	}

	land := 0
	for _, id := range g.IDs() {
		c, _ := g.Cell(id)
		isLand := f.At(c.Site.X, c.Site.Y) >= threshold
		if err := g.SetLand(id, isLand); err != nil {
			return land, err
		}
		if isLand {
			land++
		}
	}

	return land, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
