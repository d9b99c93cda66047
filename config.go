package wfc3d

// config.go reduces the Solve API footprint using functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tilecraft/wfc3d/geom"
	"github.com/tilecraft/wfc3d/solver"
)

// SolverConfig holds the tunable attributes of a single Solve call.
type SolverConfig struct {
	maxCells        int
	boundarySeeding bool
	tieBreak        solver.TieBreak
}

// solverDefaults provides reasonable defaults when no options are given:
// boundary seeding on, first-in-scan tie-breaking, and a generous but
// finite cell limit.
var solverDefaults = SolverConfig{
	maxCells:        geom.MaxCells,
	boundarySeeding: true,
	tieBreak:        solver.TieBreakFirst,
}

// Attr defines an optional Solve attribute.
//
//	solution, stats, err := wfc3d.Solve(src, desc,
//	    wfc3d.WithMaxCells(1<<16),
//	    wfc3d.WithTieBreak(wfc3d.TieBreakRandom),
//	)
type Attr func(*SolverConfig)

// WithMaxCells overrides the implementation limit on W*H*D. A non-positive
// value disables the limit entirely.
func WithMaxCells(n int) Attr {
	return func(c *SolverConfig) { c.maxCells = n }
}

// WithBoundarySeeding toggles the boundary-seeding pass that constrains
// every cell on an external grid face before observation starts. Disabling
// it is for callers who intend to manage exterior-facing constraints
// themselves.
func WithBoundarySeeding(on bool) Attr {
	return func(c *SolverConfig) { c.boundarySeeding = on }
}

// TieBreak re-exports solver.TieBreak so callers don't need to import the
// solver package directly.
type TieBreak = solver.TieBreak

const (
	TieBreakFirst  = solver.TieBreakFirst
	TieBreakRandom = solver.TieBreakRandom
)

// WithTieBreak overrides how observation picks among several
// minimum-entropy cells.
func WithTieBreak(t TieBreak) Attr {
	return func(c *SolverConfig) { c.tieBreak = t }
}

// WithConfig applies every attribute of cfg wholesale, the bridge between a
// SolverConfig obtained via LoadSolverConfig and a Solve call:
//
//	cfg, err := wfc3d.LoadSolverConfig(r)
//	solution, stats, err := wfc3d.Solve(src, desc, wfc3d.WithConfig(cfg))
func WithConfig(cfg SolverConfig) Attr {
	return func(c *SolverConfig) { *c = cfg }
}

// solverConfigDoc is the YAML-decodable shape of LoadSolverConfig's input:
// solver tuning only, never a tile catalog. This is purely ops knobs, the
// way load/shd.go decodes a small shader-tuning document for the engine.
type solverConfigDoc struct {
	MaxCells        int    `yaml:"max_cells"`
	BoundarySeeding *bool  `yaml:"boundary_seeding"`
	TieBreak        string `yaml:"tie_break"`
}

// LoadSolverConfig decodes a small YAML document of solver tuning
// attributes. Unset fields keep solverDefaults' values, and so does a
// non-positive max_cells; an unknown tie_break is reported as an error.
func LoadSolverConfig(r io.Reader) (SolverConfig, error) {
	var doc solverConfigDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return SolverConfig{}, fmt.Errorf("wfc3d.LoadSolverConfig: %w", err)
	}

	cfg := solverDefaults
	if doc.MaxCells > 0 {
		cfg.maxCells = doc.MaxCells
	}
	if doc.BoundarySeeding != nil {
		cfg.boundarySeeding = *doc.BoundarySeeding
	}
	switch doc.TieBreak {
	case "", "first":
		cfg.tieBreak = solver.TieBreakFirst
	case "random":
		cfg.tieBreak = solver.TieBreakRandom
	default:
		return cfg, fmt.Errorf("wfc3d.LoadSolverConfig: unknown tie_break %q", doc.TieBreak)
	}
	return cfg, nil
}
