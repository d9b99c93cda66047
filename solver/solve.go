package solver

import (
	"time"

	"github.com/tilecraft/wfc3d/compiler"
	"github.com/tilecraft/wfc3d/geom"
	"github.com/tilecraft/wfc3d/rng"
)

// TieBreak selects how the observation step picks among several
// minimum-entropy cells. Under the default, the observed cell depends only
// on the grid state and the RNG picks only the transformation;
// TieBreakRandom also draws the cell itself from the injected RNG.
type TieBreak int

const (
	// TieBreakFirst picks the first minimum-popcount cell in scan order.
	TieBreakFirst TieBreak = iota
	// TieBreakRandom picks uniformly among every cell tied for minimum
	// popcount, consuming the RNG to do so.
	TieBreakRandom
)

// Options configures a single Solve call.
type Options struct {
	BoundarySeeding bool
	TieBreak        TieBreak
}

// Stats reports solver performance: observation count, the propagation
// queue's high-water mark, and wall-clock time, so a caller can log solve
// performance.
type Stats struct {
	Observations   int
	QueueHighWater int
	Elapsed        time.Duration
}

// Solve allocates a fresh FieldGrid sized from c.Dims, seeds boundary
// constraints, then alternates min-entropy observation and propagation
// until every cell has collapsed to a single transformation.
func Solve(c *compiler.Compiled, src rng.Source, opts Options) (*FieldGrid, Stats, error) {
	start := time.Now()
	grid := NewFieldGrid(c.Dims, c.AllDomain())

	if opts.BoundarySeeding {
		if err := seedBoundaries(grid, c); err != nil {
			return nil, Stats{Elapsed: time.Since(start)}, err
		}
	}
	if !grid.IsSatisfiable() {
		return nil, Stats{Elapsed: time.Since(start)}, ErrUnsatisfiable
	}

	stats := Stats{}
	for !grid.IsComplete() {
		point, ok := pickObservationCell(grid, src, opts.TieBreak)
		if !ok {
			break
		}

		domain := grid.Get(point)
		bits := domain.SetBits()
		chosen := bits[rng.Choose(src, len(bits))]

		singleton := domain.Clone()
		for _, b := range bits {
			if b != chosen {
				singleton.Clear(b)
			}
		}

		highWater, err := PropagatePoint(grid, c, point, singleton)
		if highWater > stats.QueueHighWater {
			stats.QueueHighWater = highWater
		}
		if err != nil {
			stats.Elapsed = time.Since(start)
			return nil, stats, err
		}
		stats.Observations++
	}

	stats.Elapsed = time.Since(start)
	return grid, stats, nil
}

// pickObservationCell scans the grid for cells with popcount > 1 and
// returns the one chosen by tieBreak. ok is false once every cell has
// collapsed.
func pickObservationCell(grid *FieldGrid, src rng.Source, tieBreak TieBreak) (geom.Point, bool) {
	var candidates []geom.Point
	best := -1

	for x := 0; x < grid.Dims.W; x++ {
		for y := 0; y < grid.Dims.H; y++ {
			for z := 0; z < grid.Dims.D; z++ {
				p := geom.Point{X: x, Y: y, Z: z}
				pc := grid.Get(p).PopCount()
				if pc <= 1 {
					continue
				}
				switch {
				case best == -1 || pc < best:
					best = pc
					candidates = []geom.Point{p}
				case pc == best:
					candidates = append(candidates, p)
				}
			}
		}
	}

	if len(candidates) == 0 {
		return geom.Point{}, false
	}
	if tieBreak == TieBreakRandom && len(candidates) > 1 {
		return candidates[rng.Choose(src, len(candidates))], true
	}
	return candidates[0], true
}
