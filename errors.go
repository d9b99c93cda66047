package wfc3d

import "errors"

// ErrUnsatisfiable indicates boundary seeding or propagation emptied some
// cell's domain, or observation found a cell with an empty domain. No
// backtracking is attempted; the error surfaces at the first contradiction.
var ErrUnsatisfiable = errors.New("wfc3d: catalog admits no solution for the requested dimensions")

// ErrDimensions indicates the solver received dimensions that exceed the
// configured cell limit, or (reserved for future use) disagree with a
// separately supplied initial grid.
var ErrDimensions = errors.New("wfc3d: invalid or oversized dimensions")
