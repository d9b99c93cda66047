package geom

import "testing"

func TestNeighborBounds(t *testing.T) {
	dims := Dims{W: 2, H: 2, D: 2}
	origin := Point{X: 0, Y: 0, Z: 0}

	if _, ok := origin.Neighbor(Left, dims); ok {
		t.Error("left of x=0 should be out of bounds")
	}
	if _, ok := origin.Neighbor(Down, dims); ok {
		t.Error("down of y=0 should be out of bounds")
	}
	if _, ok := origin.Neighbor(Backward, dims); ok {
		t.Error("backward of z=0 should be out of bounds")
	}

	right, ok := origin.Neighbor(Right, dims)
	if !ok || right != (Point{X: 1, Y: 0, Z: 0}) {
		t.Errorf("Right neighbor = %+v, %v", right, ok)
	}

	far := Point{X: 1, Y: 1, Z: 1}
	if _, ok := far.Neighbor(Right, dims); ok {
		t.Error("right of x=W-1 should be out of bounds")
	}
}

func TestIndexLayout(t *testing.T) {
	dims := Dims{W: 3, H: 3, D: 3}
	p := Point{X: 1, Y: 2, Z: 1}
	want := 1 + 2*3*3 + 1*3
	if got := p.Index(dims); got != want {
		t.Errorf("Index() = %d, want %d", got, want)
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
}

func TestRotationNeg(t *testing.T) {
	cases := map[Rotation]Rotation{
		R0:   R180,
		R90:  R270,
		R180: R0,
		R270: R90,
	}
	for r, want := range cases {
		if got := r.Neg(); got != want {
			t.Errorf("%v.Neg() = %v, want %v", r, got, want)
		}
	}
}

func TestFaceUnderTable(t *testing.T) {
	if FaceUnder(Forward, R0) != Forward {
		t.Error("Q=forward, F=R0 should consult forward")
	}
	if FaceUnder(Forward, R90) != Left {
		t.Error("Q=forward, F=R90 should consult left")
	}
	if FaceUnder(Right, R90) != Forward {
		t.Error("Q=right, F=R90 should consult forward")
	}
	if FaceUnder(Left, R270) != Forward {
		t.Error("Q=left, F=R270 should consult forward")
	}
}
