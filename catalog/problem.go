package catalog

import "github.com/tilecraft/wfc3d/geom"

// ProblemDescription is the caller's input: a tile catalog plus the grid
// extent to solve. Connections is informational - the compatibility
// predicates only ever compare the connection strings embedded directly in
// each face descriptor, so a tag referenced by a tile but missing from
// Connections is not itself an error.
type ProblemDescription[D any] struct {
	Connections []string
	Dims        geom.Dims
	Tiles       []Tile[D]
}
