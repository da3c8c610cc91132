// SPDX-License-Identifier: MIT
// Package: blobgraph/region
//
// types.go - cell state, regions, options and sentinel errors.

package region

import (
	"errors"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/palette"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrNilGraph indicates Build was given a nil cell graph.
	ErrNilGraph = errors.New("region: cell graph is nil")

	// ErrInvalidCell indicates a malformed or unknown cell, or a cell that is
	// not where an operation expects it (e.g. not owned by the split region).
	ErrInvalidCell = errors.New("region: invalid cell")

	// ErrRegionNotFound indicates an operation referenced an unknown region id.
	ErrRegionNotFound = errors.New("region: region not found")

	// ErrRegionNotEmpty indicates Remove was called on a region that still
	// owns cells.
	ErrRegionNotEmpty = errors.New("region: region still owns cells")

	// ErrMissingColour indicates Build found a cell without a colour.
	ErrMissingColour = errors.New("region: cell has no colour")

	// ErrMixedRegion indicates one region would hold both land and water cells.
	ErrMixedRegion = errors.New("region: land and water cells in one region")

	// ErrSameRegion indicates a region was merged into itself.
	ErrSameRegion = errors.New("region: source and target are the same region")

	// ErrInvariant indicates Check found a violated structural invariant.
	ErrInvariant = errors.New("region: invariant violated")
)

// Cell is the live state of one cell of the subdivision.
//
// Region is the single source of truth for membership. Friends and Enemies
// partition Neighbours and are kept current by every primitive.
type Cell struct {
	ID     int
	Site   cellgraph.Point
	IsLand bool

	// Region is the id of the owning region.
	Region int
	// Colour mirrors the owning region's colour.
	Colour color.RGBColor
	// IsBranch is a diagnostic mark set by limb detection.
	IsBranch bool

	// Neighbours is the fixed adjacency from the cell graph, ascending.
	Neighbours []int
	// Friends are neighbours of the same type in the same region.
	Friends mapset.Set[int]
	// Enemies are all other neighbours.
	Enemies mapset.Set[int]
}

// Region is a group of same-type cells sharing one colour.
type Region struct {
	// ID is allocated by the World, increases monotonically and is never reused.
	ID     int
	Colour color.RGBColor
	IsLand bool
	// Center is the mean of the children's sites as of the last
	// RecalculateCenter; every primitive refreshes the regions it touches.
	Center cellgraph.Point

	// Children lists owned cell ids in insertion order.
	Children []int
	// Neighbours holds the ids of adjacent regions.
	Neighbours mapset.Set[int]
	// Border holds the children that have at least one enemy.
	Border mapset.Set[int]
}

// Len returns the number of children.
func (r *Region) Len() int { return len(r.Children) }

// RegionSummary is the read-only output view of one region.
type RegionSummary struct {
	ID         int
	Colour     color.RGBColor
	IsLand     bool
	Center     cellgraph.Point
	Children   []int
	Neighbours []int
}

// Option configures a World at Build time.
type Option func(*World)

// WithPalette sets the colour supplier used by Split. Colours assigned by
// Build are claimed in it. Without this option Build creates a palette with
// palette.ReserveFor(cells) colours per layer.
func WithPalette(p *palette.Palette) Option {
	return func(w *World) {
		if p != nil {
			w.palette = p
		}
	}
}

// WithLogger sets the logger used for surgery diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}
