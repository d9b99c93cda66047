package wfc3d

import (
	"errors"
	"fmt"

	"github.com/tilecraft/wfc3d/compiler"
	"github.com/tilecraft/wfc3d/geom"
	"github.com/tilecraft/wfc3d/rng"
	"github.com/tilecraft/wfc3d/solver"
)

// Compile expands desc's tile catalog into transformations and the six
// adjacency tables. It is exposed directly for callers who want to inspect
// or cache a CompiledDescription without solving, and is also called
// internally by Solve.
func Compile[D any](desc ProblemDescription[D]) (*compiler.Compiled, error) {
	return compiler.Compile(desc)
}

// Solve compiles desc and runs the observation/propagation loop to
// completion, returning the solved grid bundled with the description and
// compiled tables, or an error if the catalog admits no solution for
// desc.Dims.
func Solve[D any](src rng.Source, desc ProblemDescription[D], attrs ...Attr) (*Solution[D], solver.Stats, error) {
	cfg := solverDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}

	if cfg.maxCells > 0 && desc.Dims.Len() > cfg.maxCells {
		return nil, solver.Stats{}, fmt.Errorf("%w: %d cells exceeds limit %d", ErrDimensions, desc.Dims.Len(), cfg.maxCells)
	}
	if _, err := geom.NewDims(desc.Dims.W, desc.Dims.H, desc.Dims.D, 0); err != nil {
		return nil, solver.Stats{}, fmt.Errorf("%w: %s", ErrDimensions, err)
	}

	compiled, err := Compile(desc)
	if err != nil {
		return nil, solver.Stats{}, err
	}

	grid, stats, err := solver.Solve(compiled, src, solver.Options{
		BoundarySeeding: cfg.boundarySeeding,
		TieBreak:        cfg.tieBreak,
	})
	if err != nil {
		if errors.Is(err, solver.ErrUnsatisfiable) {
			return nil, stats, fmt.Errorf("%w", ErrUnsatisfiable)
		}
		return nil, stats, err
	}

	return &Solution[D]{
		Grid:        grid,
		Description: desc,
		Compiled:    compiled,
	}, stats, nil
}
