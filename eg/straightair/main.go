// Command straightair solves the three-tile air/straight/corner pipe
// catalog from the console: a small main that builds one scene and dumps
// it to stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tilecraft/wfc3d"
	"github.com/tilecraft/wfc3d/geom"
	"github.com/tilecraft/wfc3d/rng"
)

func air() wfc3d.HorizontalConnection {
	return wfc3d.HorizontalConnection{Connection: "air", Symmetry: true}
}

func catalog() wfc3d.ProblemDescription[string] {
	return wfc3d.ProblemDescription[string]{
		Connections: []string{"air", "half", "full"},
		Dims:        geom.Dims{W: 6, H: 3, D: 6},
		Tiles: []wfc3d.Tile[string]{
			{
				ID:        "air",
				CanRotate: true,
				Up:        []wfc3d.VerticalConnection{{Connection: "air"}},
				Down:      []wfc3d.VerticalConnection{{Connection: "air"}},
				Forward:   []wfc3d.HorizontalConnection{air()},
				Backward:  []wfc3d.HorizontalConnection{air()},
				Left:      []wfc3d.HorizontalConnection{air()},
				Right:     []wfc3d.HorizontalConnection{air()},
			},
			{
				ID:        "straight",
				CanRotate: true,
				Up:        []wfc3d.VerticalConnection{{Connection: "air"}},
				Down:      []wfc3d.VerticalConnection{{Connection: "full"}},
				Left:      []wfc3d.HorizontalConnection{{Connection: "half", Flipped: false}},
				Right:     []wfc3d.HorizontalConnection{{Connection: "half", Flipped: true}},
				Forward:   []wfc3d.HorizontalConnection{air()},
				Backward:  []wfc3d.HorizontalConnection{air()},
			},
			{
				ID:        "corner",
				CanRotate: true,
				Up:        []wfc3d.VerticalConnection{{Connection: "air"}},
				Down:      []wfc3d.VerticalConnection{{Connection: "full"}},
				Left:      []wfc3d.HorizontalConnection{{Connection: "half", Flipped: false}},
				Right:     []wfc3d.HorizontalConnection{air()},
				Forward:   []wfc3d.HorizontalConnection{{Connection: "half", Flipped: true}},
				Backward:  []wfc3d.HorizontalConnection{air()},
			},
		},
	}
}

func main() {
	desc := catalog()
	solution, stats, err := wfc3d.Solve[string](rng.NewStd(42), desc)
	if err != nil {
		log.Fatalf("straightair: solve failed: %v", err)
	}

	fmt.Printf("solved %d cells in %d observations, %s\n",
		desc.Dims.Len(), stats.Observations, stats.Elapsed)
	for y := 0; y < desc.Dims.H; y++ {
		fmt.Printf("layer y=%d\n", y)
		solution.Grid.Dump(os.Stdout, y)
	}
}
