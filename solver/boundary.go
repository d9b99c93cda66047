package solver

import (
	"github.com/tilecraft/wfc3d/bitset"
	"github.com/tilecraft/wfc3d/compiler"
	"github.com/tilecraft/wfc3d/geom"
)

// sentinelMask builds S_dir = { i | table[i] has bit 0 set }: the set of
// transformations whose dir-facing adjacency admits transformation 0, used
// as a stand-in for "this face touches the outside world".
func sentinelMask(c *compiler.Compiled, dir geom.Direction) bitset.Set {
	table := c.Table(dir)
	mask := bitset.New(c.Len())
	for i, set := range table {
		if set.Get(0) {
			mask.Set(i)
		}
	}
	return mask
}

// seedBoundaries propagates each face's sentinel mask into every cell on
// that face, all six faces, before observation begins (see DESIGN.md for
// why this seeds the down face too).
func seedBoundaries(grid *FieldGrid, c *compiler.Compiled) error {
	d := grid.Dims

	for _, face := range []struct {
		dir        geom.Direction
		x, y, z    int // -1 means "range over the full axis"
	}{
		{geom.Up, -1, d.H - 1, -1},
		{geom.Down, -1, 0, -1},
		{geom.Left, 0, -1, -1},
		{geom.Right, d.W - 1, -1, -1},
		{geom.Forward, -1, -1, d.D - 1},
		{geom.Backward, -1, -1, 0},
	} {
		mask := sentinelMask(c, face.dir)
		for _, p := range facePoints(d, face.x, face.y, face.z) {
			if _, err := PropagatePoint(grid, c, p, mask); err != nil {
				return err
			}
		}
	}
	return nil
}

// facePoints enumerates every point on a grid face: exactly one of x, y, z
// is fixed (>= 0), the other two range over their full extent.
func facePoints(d geom.Dims, x, y, z int) []geom.Point {
	xs := axisRange(d.W, x)
	ys := axisRange(d.H, y)
	zs := axisRange(d.D, z)

	points := make([]geom.Point, 0, len(xs)*len(ys)*len(zs))
	for _, px := range xs {
		for _, py := range ys {
			for _, pz := range zs {
				points = append(points, geom.Point{X: px, Y: py, Z: pz})
			}
		}
	}
	return points
}

func axisRange(extent, fixed int) []int {
	if fixed >= 0 {
		return []int{fixed}
	}
	out := make([]int, extent)
	for i := range out {
		out[i] = i
	}
	return out
}
