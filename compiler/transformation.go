// Package compiler expands a tile catalog into a compact compiled
// description: a flat array of transformations (tile x rotation x optional
// flip) and, for each of the six cardinal directions, a per-transformation
// bitset naming all transformations that may legally sit on the far side of
// that face.
package compiler

import "github.com/tilecraft/wfc3d/geom"

// Transformation is a specific oriented instance of a catalog tile: a tile
// index paired with a rotation and an optional flip. It is identified
// solely by its position in Compiled.Transformation.
type Transformation struct {
	TileIndex int
	Rotation  geom.Rotation
	Flipped   bool
}

// rotationSet returns the rotations a tile expands into: all four unless
// canRotate is false, in which case only R0 is materialized.
func rotationSet(canRotate bool) []geom.Rotation {
	if !canRotate {
		return []geom.Rotation{geom.R0}
	}
	return geom.Rotations[:]
}
