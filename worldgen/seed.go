package worldgen

import (
	"fmt"
	"math/rand"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/palette"
)

// SeedColours paints an initial colouring. Per type, up to n seed cells are
// drawn at random and each seed gets its own palette colour.
//
// Water cells take the colour of their nearest water seed (ties go to the
// earlier seed). Connectivity is ignored there: one colour can cover several
// separate patches, and thin strands appear where two seeds meet. This is the
// input the conditioner is built to repair.
//
// Land is left as built by the conditioner, so land colours are grown
// breadth-first from the land seeds through land adjacency instead. Every
// land colour is one connected patch; a land component that drew no seed
// gets a colour of its own.
//
// Seed colours come from p (a default palette when nil), so Split never
// hands them out again.
// Errors from p (palette.ErrPaletteExhausted) are returned wrapped.
func SeedColours(g *cellgraph.Graph, waterSeeds, landSeeds int, seed int64, p *palette.Palette) (map[int]color.RGBColor, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if p == nil {
		p = palette.New(palette.ReserveFor(g.Len()))
	}
	rnd := rand.New(rand.NewSource(seed))

	var water, land []cellgraph.Cell
	for _, id := range g.IDs() {
		c, _ := g.Cell(id)
		if c.IsLand {
			land = append(land, c)
		} else {
			water = append(water, c)
		}
	}

	out := make(map[int]color.RGBColor, g.Len())
	if err := paintNearest(out, water, waterSeeds, rnd, p); err != nil {
		return nil, err
	}
	if err := paintGrown(out, g, land, landSeeds, rnd, p); err != nil {
		return nil, err
	}

	return out, nil
}

// pickSeeds draws up to n distinct cells and a fresh colour for each.
func pickSeeds(cells []cellgraph.Cell, n int, layer palette.Layer, rnd *rand.Rand, p *palette.Palette) ([]cellgraph.Cell, []color.RGBColor, error) {
	if n > len(cells) {
		n = len(cells)
	}
	if n < 1 {
		n = 1
	}
	picks := rnd.Perm(len(cells))[:n]
	seeds := make([]cellgraph.Cell, n)
	colours := make([]color.RGBColor, n)
	for i, idx := range picks {
		seeds[i] = cells[idx]
		col, err := p.Next(layer)
		if err != nil {
			return nil, nil, fmt.Errorf("seed colours: %w", err)
		}
		colours[i] = col
	}

	return seeds, colours, nil
}

// paintNearest assigns nearest-seed colours to water cells.
func paintNearest(out map[int]color.RGBColor, cells []cellgraph.Cell, n int, rnd *rand.Rand, p *palette.Palette) error {
	if len(cells) == 0 {
		return nil
	}
	seeds, colours, err := pickSeeds(cells, n, palette.Water, rnd, p)
	if err != nil {
		return err
	}

	for _, c := range cells {
		best, bestDist := 0, c.Site.Dist(seeds[0].Site)
		for i := 1; i < len(seeds); i++ {
			if d := c.Site.Dist(seeds[i].Site); d < bestDist {
				best, bestDist = i, d
			}
		}
		out[c.ID] = colours[best]
	}

	return nil
}

// paintGrown floods land colours outwards from the seeds, one ring at a
// time, then gives each unreached land component its own colour.
func paintGrown(out map[int]color.RGBColor, g *cellgraph.Graph, cells []cellgraph.Cell, n int, rnd *rand.Rand, p *palette.Palette) error {
	if len(cells) == 0 {
		return nil
	}
	seeds, colours, err := pickSeeds(cells, n, palette.Land, rnd, p)
	if err != nil {
		return err
	}

	q := queue.New[int]()
	for i, s := range seeds {
		out[s.ID] = colours[i]
		q.Enqueue(s.ID)
	}
	grow(out, g, q)

	for _, comp := range components(g, true) {
		if _, done := out[comp[0]]; done {
			continue
		}
		col, err := p.Next(palette.Land)
		if err != nil {
			return fmt.Errorf("seed colours: island %d: %w", comp[0], err)
		}
		for _, id := range comp {
			out[id] = col
		}
	}

	return nil
}

// grow runs a multi-source breadth-first fill over same-type neighbours.
// Every cell takes the colour of the cell it was reached from, so each
// colour stays connected.
func grow(out map[int]color.RGBColor, g *cellgraph.Graph, q *queue.Queue[int]) {
	for !q.Empty() {
		id := q.Dequeue()
		c, _ := g.Cell(id)
		for _, nb := range g.Neighbours(id) {
			if _, done := out[nb]; done {
				continue
			}
			o, _ := g.Cell(nb)
			if o.IsLand != c.IsLand {
				continue
			}
			out[nb] = out[id]
			q.Enqueue(nb)
		}
	}
}

// components returns the connected components of the cells of one type,
// each in breadth-first order, ordered by their lowest id.
func components(g *cellgraph.Graph, isLand bool) [][]int {
	seen := make(map[int]bool)
	var comps [][]int
	for _, start := range g.IDs() {
		c, _ := g.Cell(start)
		if c.IsLand != isLand || seen[start] {
			continue
		}
		seen[start] = true
		comp := []int{start}
		q := queue.New[int]()
		q.Enqueue(start)
		for !q.Empty() {
			id := q.Dequeue()
			for _, nb := range g.Neighbours(id) {
				o, _ := g.Cell(nb)
				if seen[nb] || o.IsLand != isLand {
					continue
				}
				seen[nb] = true
				comp = append(comp, nb)
				q.Enqueue(nb)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
