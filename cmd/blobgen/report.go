package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gookit/color"

	"github.com/katalvlaran/blobgraph/palette"
	"github.com/katalvlaran/blobgraph/worldgen"
)

// writeReport prints a run summary followed by one row per region.
// Swatches are rendered as truecolor backgrounds when colourise is set.
func writeReport(w io.Writer, out *worldgen.Output, colourise bool) error {
	res := out.Result
	fmt.Fprintf(w, "cells:   %d (%d land)\n", out.Graph.Len(), out.LandCells)
	fmt.Fprintf(w, "regions: %d\n", out.World.RegionCount())
	fmt.Fprintf(w, "status:  %s after %d passes\n", res.Status, res.Iterations)
	fmt.Fprintf(w, "surgery: %d splits, %d redistributions, %d merges, %d limbs, %d prunes\n",
		res.Stats.Splits, res.Stats.Redistributions, res.Stats.Merges, res.Stats.Limbs, res.Stats.Prunes)
	if len(res.Remaining) > 0 {
		fmt.Fprintf(w, "pending: %v\n", res.Remaining)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tCELLS\tNEIGHBOURS\tCENTER\tCOLOUR")
	for _, r := range out.World.Snapshot() {
		kind := "water"
		if r.IsLand {
			kind = "land"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t(%.1f, %.1f)\t%s\n",
			r.ID, kind, len(r.Children), len(r.Neighbours), r.Center.X, r.Center.Y, swatch(r.Colour, colourise))
	}

	return tw.Flush()
}

// swatch renders c as its hex code, preceded by a coloured block.
func swatch(c color.RGBColor, colourise bool) string {
	hex := palette.Hex(c)
	if !colourise {
		return hex
	}

	return color.RGB(c[0], c[1], c[2], true).Sprint("    ") + " " + hex
}
