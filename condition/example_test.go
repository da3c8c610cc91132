package condition_test

import (
	"fmt"

	"github.com/gookit/color"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/condition"
	"github.com/katalvlaran/blobgraph/region"
)

// ExampleConditioner_Run repairs two ponds that were painted with the same
// colour on either side of a land ridge.
func ExampleConditioner_Run() {
	rows := []string{
		"~~#~~",
		"~~#~~",
	}
	water := color.RGBColor{20, 90, 200, 0}
	ridge := color.RGBColor{120, 180, 60, 0}

	g := cellgraph.New()
	colours := make(map[int]color.RGBColor)
	for y, row := range rows {
		for x, ch := range row {
			id := y*len(row) + x
			land := ch == '#'
			_ = g.AddCell(cellgraph.Cell{ID: id, Site: cellgraph.Point{X: float64(x), Y: float64(y)}, IsLand: land})
			if x > 0 {
				_ = g.Link(id, id-1)
			}
			if y > 0 {
				_ = g.Link(id, id-len(row))
			}
			colours[id] = water
			if land {
				colours[id] = ridge
			}
		}
	}

	w, err := region.Build(g, colours)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	res, err := condition.New().Run(w)
	if err != nil {
		fmt.Println("condition:", err)
		return
	}

	fmt.Println(res.Status, "after", res.Iterations, "passes,", res.Stats.Splits, "split")
	for _, r := range w.Snapshot() {
		fmt.Printf("region %d land=%t cells=%v\n", r.ID, r.IsLand, r.Children)
	}

	// Output:
	// converged after 2 passes, 1 split
	// region 1 land=false cells=[0 1 5 6]
	// region 2 land=true cells=[2 7]
	// region 3 land=false cells=[3 4 8 9]
}
