// SPDX-License-Identifier: MIT
// Package: blobgraph/region
//
// build.go - the region graph builder.

package region

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/palette"
)

// Build partitions g into regions, one per distinct colour in colours.
//
// Steps:
//  1. Validate g and require a colour for every cell.
//  2. Walk cells in ascending id order; the first cell of a colour opens a new
//     region, later cells of that colour join it. Mixing land and water under
//     one colour is rejected with ErrMixedRegion.
//  3. Classify friends and enemies, collect border cells and region adjacency.
//  4. Compute region centers.
//
// Colours used here are claimed in the World's palette so Split never hands
// them out again. The result is not necessarily connected; see package
// condition.
func Build(g *cellgraph.Graph, colours map[int]color.RGBColor, opts ...Option) (*World, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCell, err)
	}

	w := newWorld()
	for _, opt := range opts {
		opt(w)
	}
	if w.palette == nil {
		w.palette = palette.New(palette.ReserveFor(g.Len()))
	}

	byColour := make(map[color.RGBColor]int)
	for _, id := range g.IDs() {
		src, _ := g.Cell(id)
		col, ok := colours[id]
		if !ok {
			return nil, fmt.Errorf("cell %d: %w", id, ErrMissingColour)
		}
		c := &Cell{
			ID:         id,
			Site:       src.Site,
			IsLand:     src.IsLand,
			Colour:     col,
			Neighbours: g.Neighbours(id),
			Friends:    mapset.New[int](),
			Enemies:    mapset.New[int](),
		}

		rid, seen := byColour[col]
		if !seen {
			r := w.newRegion(col, src.IsLand)
			w.palette.Claim(col)
			byColour[col] = r.ID
			rid = r.ID
		} else if w.regions[rid].IsLand != src.IsLand {
			return nil, fmt.Errorf("colour %s on cell %d: %w", palette.Hex(col), id, ErrMixedRegion)
		}
		c.Region = rid
		w.regions[rid].Children = append(w.regions[rid].Children, id)
		w.cells[id] = c
		w.order = append(w.order, id)
	}

	for _, id := range w.order {
		w.classify(w.cells[id])
	}
	for _, rid := range w.Regions() {
		r := w.regions[rid]
		r.Border.Each(func(cid int) {
			w.cells[cid].Enemies.Each(func(e int) {
				if other := w.cells[e].Region; other != rid {
					w.link(r, w.regions[other])
				}
			})
		})
		_ = w.RecalculateCenter(rid)
	}

	w.log.Debug("region graph built",
		zap.Int("cells", len(w.order)),
		zap.Int("regions", len(w.regions)),
	)

	return w, nil
}
