package catalog

import "github.com/tilecraft/wfc3d/geom"

// Tile is one entry in a human-authored catalog. D is opaque to the core:
// it is whatever the caller's asset loader used to name the tile (a string,
// a UUID, a database key). Each face carries a list of alternative
// connection labels: a face may advertise several tags, and it matches if
// any pair across two candidate faces succeeds.
type Tile[D any] struct {
	ID D

	Up, Down                       []VerticalConnection
	Left, Right, Forward, Backward []HorizontalConnection

	// CanRotate gates whether the compiler expands this tile into all four
	// yaw rotations (true) or only R0 (false, the zero value). CanFlip gates
	// whether the flipped half of the transformation array is materialized
	// for this tile.
	CanRotate bool
	CanFlip   bool
}

// HorizontalFace returns the face list named by dir, one of
// geom.Forward/Right/Backward/Left - the four faces geom.FaceUnder can
// return.
func (t Tile[D]) HorizontalFace(dir geom.Direction) []HorizontalConnection {
	switch dir {
	case geom.Forward:
		return t.Forward
	case geom.Right:
		return t.Right
	case geom.Backward:
		return t.Backward
	case geom.Left:
		return t.Left
	}
	return nil
}
