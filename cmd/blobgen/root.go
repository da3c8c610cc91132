package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blobgen",
		Short: "Generate worlds of connected land and water regions",
		Long: `blobgen samples a Voronoi map, splits it into land and water with a noise
field, paints seed colours and then conditions the water regions until every
region is a single connected blob without thin limbs.`,
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newVersionCmd())

	return root
}
