// Package geom holds the integer geometry shared by the compiler and the
// solver: grid extents, grid coordinates, and the rotation/direction
// arithmetic used to walk from one cell to its six neighbors.
package geom

import "fmt"

// MaxCells is the default implementation limit on W*H*D. Callers can raise
// or lower it through wfc3d.WithMaxCells; it exists so a mistyped extent
// doesn't silently try to allocate a grid that exhausts memory.
const MaxCells = 1 << 20

// Dims is a grid extent. W runs along x, H along y (vertical), D along z.
type Dims struct {
	W, H, D int
}

// NewDims validates width, height and depth are all positive and that the
// cell count fits within maxCells.
func NewDims(w, h, d, maxCells int) (Dims, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return Dims{}, fmt.Errorf("geom.NewDims: dimensions must be positive, got (%d, %d, %d)", w, h, d)
	}
	dims := Dims{W: w, H: h, D: d}
	if maxCells > 0 && dims.Len() > maxCells {
		return Dims{}, fmt.Errorf("geom.NewDims: %d cells exceeds limit %d", dims.Len(), maxCells)
	}
	return dims, nil
}

// Len returns the total number of cells in the grid.
func (d Dims) Len() int { return d.W * d.H * d.D }
