// Command unsat demonstrates wfc3d.ErrUnsatisfiable with a single-tile
// catalog: one tile whose four horizontal faces all carry the same
// non-symmetric, unflippable tag, so no two adjacent cells can ever agree.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/tilecraft/wfc3d"
	"github.com/tilecraft/wfc3d/geom"
	"github.com/tilecraft/wfc3d/rng"
)

func main() {
	desc := wfc3d.ProblemDescription[string]{
		Connections: []string{"x"},
		Dims:        geom.Dims{W: 2, H: 1, D: 1},
		Tiles: []wfc3d.Tile[string]{
			{
				ID:       "solo",
				Up:       []wfc3d.VerticalConnection{{Connection: "air"}},
				Down:     []wfc3d.VerticalConnection{{Connection: "air"}},
				Left:     []wfc3d.HorizontalConnection{{Connection: "x"}},
				Right:    []wfc3d.HorizontalConnection{{Connection: "x"}},
				Forward:  []wfc3d.HorizontalConnection{{Connection: "x"}},
				Backward: []wfc3d.HorizontalConnection{{Connection: "x"}},
			},
		},
	}

	_, _, err := wfc3d.Solve[string](rng.NewStd(1), desc)
	if errors.Is(err, wfc3d.ErrUnsatisfiable) {
		fmt.Println("catalog correctly reported unsatisfiable:", err)
		return
	}
	log.Fatalf("unsat: expected ErrUnsatisfiable, got %v", err)
}
