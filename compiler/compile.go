package compiler

import (
	"fmt"

	"github.com/tilecraft/wfc3d/bitset"
	"github.com/tilecraft/wfc3d/catalog"
	"github.com/tilecraft/wfc3d/geom"
)

// Compiled is the compact, logically-immutable output of compilation: the
// flat transformation array, and six per-direction adjacency tables. Bit j
// of Up[i] (etc) is set iff transformation j may legally sit in that
// direction from transformation i.
type Compiled struct {
	Dims           geom.Dims
	Transformation []Transformation

	Up, Down, Left, Right, Forward, Backward []bitset.Set
}

// Len returns the transformation count N.
func (c *Compiled) Len() int { return len(c.Transformation) }

// AllDomain returns a fresh bitset with every transformation bit set.
func (c *Compiled) AllDomain() bitset.Set {
	return bitset.Full(c.Len())
}

// Table returns the adjacency table for the given direction.
func (c *Compiled) Table(dir geom.Direction) []bitset.Set {
	switch dir {
	case geom.Up:
		return c.Up
	case geom.Down:
		return c.Down
	case geom.Left:
		return c.Left
	case geom.Right:
		return c.Right
	case geom.Forward:
		return c.Forward
	case geom.Backward:
		return c.Backward
	}
	return nil
}

// Compile expands desc's tile catalog into transformations and builds the
// six adjacency tables. Complexity is O(N^2 * F^2) where F is the longest
// face list; N is bounded by 8 times the tile count.
func Compile[D any](desc catalog.ProblemDescription[D]) (*Compiled, error) {
	if len(desc.Tiles) == 0 {
		return nil, fmt.Errorf("compiler.Compile: catalog has no tiles")
	}

	transformation := materializeTransformations(desc.Tiles)

	c := &Compiled{
		Dims:           desc.Dims,
		Transformation: transformation,
	}

	c.Up = verticalTable(desc.Tiles, transformation, true)
	c.Down = verticalTable(desc.Tiles, transformation, false)

	c.Forward = horizontalTable(desc.Tiles, transformation, geom.Forward)
	c.Backward = horizontalTable(desc.Tiles, transformation, geom.Backward)
	c.Left = horizontalTable(desc.Tiles, transformation, geom.Left)
	c.Right = horizontalTable(desc.Tiles, transformation, geom.Right)

	return c, nil
}

// materializeTransformations lays out the flat transformation array in the
// stable order: for each tile in catalog order, its unflipped rotation set,
// then (if CanFlip) the same rotation set flipped.
func materializeTransformations[D any](tiles []catalog.Tile[D]) []Transformation {
	var out []Transformation
	for ti, tile := range tiles {
		rots := rotationSet(tile.CanRotate)
		for _, r := range rots {
			out = append(out, Transformation{TileIndex: ti, Rotation: r, Flipped: false})
		}
		if tile.CanFlip {
			for _, r := range rots {
				out = append(out, Transformation{TileIndex: ti, Rotation: r, Flipped: true})
			}
		}
	}
	return out
}

// verticalTable builds the up (up=true) or down (up=false) adjacency
// table. Vertical connections are rotation- and flip-independent.
func verticalTable[D any](tiles []catalog.Tile[D], transformation []Transformation, up bool) []bitset.Set {
	n := len(transformation)
	table := make([]bitset.Set, n)
	for i := range transformation {
		set := bitset.New(n)
		var iFaces []catalog.VerticalConnection
		if up {
			iFaces = tiles[transformation[i].TileIndex].Up
		} else {
			iFaces = tiles[transformation[i].TileIndex].Down
		}
		for j := range transformation {
			var jFaces []catalog.VerticalConnection
			if up {
				jFaces = tiles[transformation[j].TileIndex].Down
			} else {
				jFaces = tiles[transformation[j].TileIndex].Up
			}
			if anyVerticalConnected(iFaces, jFaces) {
				set.Set(j)
			}
		}
		table[i] = set
	}
	return table
}

func anyVerticalConnected(a, b []catalog.VerticalConnection) bool {
	for _, ac := range a {
		for _, bc := range b {
			if ac.IsConnected(bc) {
				return true
			}
		}
	}
	return false
}

// horizontalTable builds the adjacency table for horizontal world
// direction dir. For each pair (i, j), the face list actually consulted on
// each side is chosen by geom.FaceUnder, which maps the direction through
// that transformation's own facing rotation.
func horizontalTable[D any](tiles []catalog.Tile[D], transformation []Transformation, dir geom.Direction) []bitset.Set {
	n := len(transformation)
	opp := dir.Opposite()
	table := make([]bitset.Set, n)

	for i := range transformation {
		set := bitset.New(n)
		iTile := tiles[transformation[i].TileIndex]
		iFace := iTile.HorizontalFace(geom.FaceUnder(dir, transformation[i].Rotation))
		iFlipped := transformation[i].Flipped

		for j := range transformation {
			jTile := tiles[transformation[j].TileIndex]
			jFace := jTile.HorizontalFace(geom.FaceUnder(opp, transformation[j].Rotation))
			jFlipped := transformation[j].Flipped

			if anyHorizontalConnected(iFace, jFace, iFlipped, jFlipped) {
				set.Set(j)
			}
		}
		table[i] = set
	}
	return table
}

func anyHorizontalConnected(a, b []catalog.HorizontalConnection, aFlipped, bFlipped bool) bool {
	for _, ac := range a {
		for _, bc := range b {
			if ac.IsConnected(bc, aFlipped, bFlipped) {
				return true
			}
		}
	}
	return false
}
