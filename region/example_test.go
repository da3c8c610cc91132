package region_test

import (
	"fmt"

	"github.com/gookit/color"

	"github.com/katalvlaran/blobgraph/cellgraph"
	"github.com/katalvlaran/blobgraph/region"
)

// ExampleWorld_Split builds a 1×4 strip of water, then splits off its tail.
func ExampleWorld_Split() {
	g := cellgraph.New()
	colours := make(map[int]color.RGBColor)
	for i := 0; i < 4; i++ {
		_ = g.AddCell(cellgraph.Cell{ID: i, Site: cellgraph.Point{X: float64(i)}})
		if i > 0 {
			_ = g.Link(i, i-1)
		}
		colours[i] = color.RGBColor{30, 60, 200, 0}
	}

	w, err := region.Build(g, colours)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	tail, err := w.Split(1, []int{2, 3})
	if err != nil {
		fmt.Println("split:", err)
		return
	}

	for _, r := range w.Snapshot() {
		fmt.Printf("region %d: cells=%v neighbours=%v center=%.1f\n", r.ID, r.Children, r.Neighbours, r.Center.X)
	}
	fmt.Println("tail:", tail, "check:", w.Check())

	// Output:
	// region 1: cells=[0 1] neighbours=[2] center=0.5
	// region 2: cells=[2 3] neighbours=[1] center=2.5
	// tail: 2 check: <nil>
}
