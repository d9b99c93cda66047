package catalog

import "testing"

func TestVerticalConnectionEquality(t *testing.T) {
	a := VerticalConnection{Connection: "air"}
	b := VerticalConnection{Connection: "air"}
	c := VerticalConnection{Connection: "full"}

	if !a.IsConnected(b) {
		t.Error("equal tags should connect")
	}
	if a.IsConnected(c) {
		t.Error("different tags should not connect")
	}
}

func TestHorizontalConnectionAsymmetry(t *testing.T) {
	a := HorizontalConnection{Connection: "k", Symmetry: false, Flipped: false}
	b := HorizontalConnection{Connection: "k", Symmetry: false, Flipped: false}

	if a.IsConnected(b, false, false) {
		t.Error("two un-flipped non-symmetric connectors should not mate")
	}
	if !a.IsConnected(b, false, true) {
		t.Error("opposite-handedness non-symmetric connectors should mate")
	}
}

func TestHorizontalConnectionSymmetry(t *testing.T) {
	a := HorizontalConnection{Connection: "k", Symmetry: true, Flipped: false}
	b := HorizontalConnection{Connection: "k", Symmetry: false, Flipped: false}

	if !a.IsConnected(b, false, false) {
		t.Error("symmetric connector should mate regardless of flip")
	}
	if !a.IsConnected(b, true, true) {
		t.Error("symmetric connector should mate regardless of flip")
	}
}

func TestHorizontalConnectionTagMismatch(t *testing.T) {
	a := HorizontalConnection{Connection: "k", Symmetry: true}
	b := HorizontalConnection{Connection: "j", Symmetry: true}
	if a.IsConnected(b, false, false) {
		t.Error("mismatched tags should never connect, even when symmetric")
	}
}
