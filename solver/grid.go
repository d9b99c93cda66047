// Package solver implements the wave function collapse observation and
// propagation loop: it turns a compiler.Compiled description into a fully
// collapsed FieldGrid, or reports that the catalog admits no solution.
package solver

import (
	"fmt"
	"io"

	"github.com/tilecraft/wfc3d/bitset"
	"github.com/tilecraft/wfc3d/geom"
)

// FieldGrid is a 3D array of per-cell domain bitsets: the set of
// transformations still possible at each cell. Domains only ever shrink
// during solving - update is the grid's sole mutator.
type FieldGrid struct {
	Dims  geom.Dims
	cells []bitset.Set
}

// NewFieldGrid allocates a grid where every cell starts as a clone of
// initial (normally the full domain of N transformations).
func NewFieldGrid(dims geom.Dims, initial bitset.Set) *FieldGrid {
	cells := make([]bitset.Set, dims.Len())
	for i := range cells {
		cells[i] = initial.Clone()
	}
	return &FieldGrid{Dims: dims, cells: cells}
}

// Get returns the domain at p.
func (g *FieldGrid) Get(p geom.Point) bitset.Set {
	return g.cells[p.Index(g.Dims)]
}

// ShouldUpdate reports whether tightening the cell at p to candidate would
// actually drop at least one bit, i.e. candidate is not a superset of the
// current domain.
func (g *FieldGrid) ShouldUpdate(p geom.Point, candidate bitset.Set) bool {
	return !candidate.IsSupersetOf(g.Get(p))
}

// Update replaces the domain at p with its intersection with candidate, if
// ShouldUpdate reports that doing so would change anything. It returns the
// (possibly unchanged) domain and whether an update occurred.
func (g *FieldGrid) Update(p geom.Point, candidate bitset.Set) (bitset.Set, bool) {
	if !g.ShouldUpdate(p, candidate) {
		return g.Get(p), false
	}
	idx := p.Index(g.Dims)
	g.cells[idx] = g.cells[idx].And(candidate)
	return g.cells[idx], true
}

// IsSatisfiable reports whether every cell still has at least one candidate
// transformation.
func (g *FieldGrid) IsSatisfiable() bool {
	for _, c := range g.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// IsComplete reports whether every cell has collapsed to exactly one
// transformation.
func (g *FieldGrid) IsComplete() bool {
	for _, c := range g.cells {
		if c.PopCount() != 1 {
			return false
		}
	}
	return true
}

// Dump writes a fixed-width ASCII projection of the y=layer slice to w: one
// line per z row, one three-character field per x column, showing the set bit's
// transformation index or '?' for an uncollapsed cell.
func (g *FieldGrid) Dump(w io.Writer, layer int) {
	for z := 0; z < g.Dims.D; z++ {
		for x := 0; x < g.Dims.W; x++ {
			c := g.Get(geom.Point{X: x, Y: layer, Z: z})
			if i, ok := c.FirstSet(); ok && c.PopCount() == 1 {
				fmt.Fprintf(w, "%3d", i)
			} else {
				fmt.Fprint(w, "  ?")
			}
		}
		fmt.Fprintln(w)
	}
}
