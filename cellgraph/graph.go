package cellgraph

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Graph is an arena of cells with symmetric adjacency.
//
// cells maps id → Cell; adjacency maps id → set of neighbour ids. Every id in
// cells has an (possibly empty) adjacency entry.
type Graph struct {
	cells     map[int]Cell
	adjacency map[int]mapset.Set[int]
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		cells:     make(map[int]Cell),
		adjacency: make(map[int]mapset.Set[int]),
	}
}

// AddCell inserts c. The id must be non-negative and unused, and the site
// must be finite.
// Complexity: O(1).
func (g *Graph) AddCell(c Cell) error {
	if c.ID < 0 {
		return fmt.Errorf("%w: negative id %d", ErrInvalidCell, c.ID)
	}
	if !c.Site.finite() {
		return fmt.Errorf("%w: cell %d has non-finite site %v", ErrInvalidCell, c.ID, c.Site)
	}
	if _, ok := g.cells[c.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateCell, c.ID)
	}
	g.cells[c.ID] = c
	g.adjacency[c.ID] = mapset.New[int]()

	return nil
}

// Link records the undirected adjacency a–b. Linking an already linked pair
// is a no-op.
// Complexity: O(1).
func (g *Graph) Link(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	na, ok := g.adjacency[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCellNotFound, a)
	}
	nb, ok := g.adjacency[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCellNotFound, b)
	}
	na.Put(b)
	nb.Put(a)

	return nil
}

// SetLand updates the land/water flag of a cell.
func (g *Graph) SetLand(id int, land bool) error {
	c, ok := g.cells[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCellNotFound, id)
	}
	c.IsLand = land
	g.cells[id] = c

	return nil
}

// Cell returns the cell with the given id.
func (g *Graph) Cell(id int) (Cell, bool) {
	c, ok := g.cells[id]
	return c, ok
}

// Has reports whether id is present.
func (g *Graph) Has(id int) bool {
	_, ok := g.cells[id]
	return ok
}

// Len returns the number of cells.
func (g *Graph) Len() int { return len(g.cells) }

// IDs returns every cell id in ascending order.
// Complexity: O(V log V).
func (g *Graph) IDs() []int {
	ids := make([]int, 0, len(g.cells))
	for id := range g.cells {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Neighbours returns the neighbour ids of id in ascending order, or nil for
// an unknown id.
// Complexity: O(d log d).
func (g *Graph) Neighbours(id int) []int {
	set, ok := g.adjacency[id]
	if !ok {
		return nil
	}

	return sortedSet(set)
}

// Adjacent reports whether a and b are linked.
func (g *Graph) Adjacent(a, b int) bool {
	set, ok := g.adjacency[a]
	return ok && set.Has(b)
}

// Degree returns the number of neighbours of id (0 for unknown ids).
func (g *Graph) Degree(id int) int {
	set, ok := g.adjacency[id]
	if !ok {
		return 0
	}

	return set.Size()
}

// Validate checks that every stored neighbour exists and that adjacency is
// symmetric. Link maintains both properties; Validate guards graphs that were
// assembled by hand or decoded from elsewhere.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	for _, id := range g.IDs() {
		for _, nb := range g.Neighbours(id) {
			other, ok := g.adjacency[nb]
			if !ok {
				return fmt.Errorf("%w: %d lists missing neighbour %d", ErrCellNotFound, id, nb)
			}
			if !other.Has(id) {
				return fmt.Errorf("%w: %d→%d", ErrAsymmetricLink, id, nb)
			}
		}
	}

	return nil
}

// sortedSet returns the members of s in ascending order.
func sortedSet(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(k int) { out = append(out, k) })
	sort.Ints(out)

	return out
}
