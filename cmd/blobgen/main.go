// Command blobgen generates a Voronoi world, conditions its regions and
// prints a summary of the result.
//
//	blobgen generate --seed 7 --width 200 --height 120
//	blobgen version
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
