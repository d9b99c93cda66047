// Package wfc3d compiles a tile catalog and grid extent into a compiled
// description, then solves a 3D wave function collapse problem over it:
// every cell collapses to exactly one tile transformation such that every
// adjacent pair is mutually compatible across their shared face, or the
// catalog is reported unsatisfiable for that grid.
//
//	desc := wfc3d.ProblemDescription[string]{
//	    Dims:  geom.Dims{W: 8, H: 3, D: 8},
//	    Tiles: tiles,
//	}
//	solution, stats, err := wfc3d.Solve(rng.NewStd(seed), desc)
package wfc3d

import (
	"github.com/tilecraft/wfc3d/catalog"
	"github.com/tilecraft/wfc3d/compiler"
	"github.com/tilecraft/wfc3d/solver"
)

// ProblemDescription is the caller's input: a tile catalog plus the grid
// extent to solve. It is a thin alias over catalog.ProblemDescription so
// callers never need to import the catalog package just to build one.
type ProblemDescription[D any] = catalog.ProblemDescription[D]

// Tile re-exports catalog.Tile for the same reason.
type Tile[D any] = catalog.Tile[D]

// VerticalConnection and HorizontalConnection re-export the catalog
// connection types.
type (
	VerticalConnection   = catalog.VerticalConnection
	HorizontalConnection = catalog.HorizontalConnection
)

// Solution bundles the solved grid with the description and compiled
// tables needed to interpret each cell: the caller recovers per-cell
// transformation i via Grid's first set bit, then Compiled.Transformation[i].
type Solution[D any] struct {
	Grid        *solver.FieldGrid
	Description ProblemDescription[D]
	Compiled    *compiler.Compiled
}
