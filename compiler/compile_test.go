package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/wfc3d/catalog"
	"github.com/tilecraft/wfc3d/geom"
)

// basicStraightAirCatalog is a three-tile catalog: air, straight and corner
// tiles sharing the {air, half, full} connection vocabulary, rotation
// enabled, flipping disabled.
func basicStraightAirCatalog() catalog.ProblemDescription[int] {
	air := func() catalog.HorizontalConnection {
		return catalog.HorizontalConnection{Connection: "air", Symmetry: true}
	}
	return catalog.ProblemDescription[int]{
		Connections: []string{"air", "half", "full"},
		Dims:        geom.Dims{W: 3, H: 3, D: 3},
		Tiles: []catalog.Tile[int]{
			{
				ID:        0,
				CanRotate: true,
				CanFlip:   false,
				Up:        []catalog.VerticalConnection{{Connection: "air"}},
				Down:      []catalog.VerticalConnection{{Connection: "air"}},
				Forward:   []catalog.HorizontalConnection{air()},
				Backward:  []catalog.HorizontalConnection{air()},
				Left:      []catalog.HorizontalConnection{air()},
				Right:     []catalog.HorizontalConnection{air()},
			},
			{
				ID:        1, // straight
				CanRotate: true,
				CanFlip:   false,
				Up:        []catalog.VerticalConnection{{Connection: "air"}},
				Down:      []catalog.VerticalConnection{{Connection: "full"}},
				Left:      []catalog.HorizontalConnection{{Connection: "half", Flipped: false}},
				Right:     []catalog.HorizontalConnection{{Connection: "half", Flipped: true}},
				Forward:   []catalog.HorizontalConnection{air()},
				Backward:  []catalog.HorizontalConnection{air()},
			},
			{
				ID:        2, // corner
				CanRotate: true,
				CanFlip:   false,
				Up:        []catalog.VerticalConnection{{Connection: "air"}},
				Down:      []catalog.VerticalConnection{{Connection: "full"}},
				Left:      []catalog.HorizontalConnection{{Connection: "half", Flipped: false}},
				Right:     []catalog.HorizontalConnection{air()},
				Forward:   []catalog.HorizontalConnection{{Connection: "half", Flipped: true}},
				Backward:  []catalog.HorizontalConnection{air()},
			},
		},
	}
}

func TestCompileUpDownScenario(t *testing.T) {
	desc := basicStraightAirCatalog()
	c, err := Compile(desc)
	require.NoError(t, err)
	require.Equal(t, 12, c.Len())

	// Scenario 1: only air transformations (0..4) can sit above anything.
	wantAbove := []int{0, 1, 2, 3}
	for i := 0; i < 12; i++ {
		require.Equal(t, wantAbove, c.Up[i].SetBits(), "up[%d]", i)
	}

	// Scenario 2: anything may sit below air; nothing sits below straight/corner.
	for i := 0; i < 4; i++ {
		require.Equal(t, 12, c.Down[i].PopCount(), "down[%d] should be all-ones", i)
	}
	for i := 4; i < 12; i++ {
		require.True(t, c.Down[i].IsEmpty(), "down[%d] should be all-zeros", i)
	}
}

func TestCompileForwardRowZero(t *testing.T) {
	desc := basicStraightAirCatalog()
	c, err := Compile(desc)
	require.NoError(t, err)

	want := []int{0, 1, 2, 3, 4, 6, 8, 9}
	require.Equal(t, want, c.Forward[0].SetBits())
}

func TestCompileDeterministic(t *testing.T) {
	desc := basicStraightAirCatalog()
	a, err := Compile(desc)
	require.NoError(t, err)
	b, err := Compile(desc)
	require.NoError(t, err)

	require.Equal(t, a.Transformation, b.Transformation)
	for i := 0; i < a.Len(); i++ {
		require.True(t, a.Up[i].Equal(b.Up[i]))
		require.True(t, a.Down[i].Equal(b.Down[i]))
		require.True(t, a.Left[i].Equal(b.Left[i]))
		require.True(t, a.Right[i].Equal(b.Right[i]))
		require.True(t, a.Forward[i].Equal(b.Forward[i]))
		require.True(t, a.Backward[i].Equal(b.Backward[i]))
	}
}

func TestCompileEmptyCatalog(t *testing.T) {
	desc := catalog.ProblemDescription[int]{Dims: geom.Dims{W: 1, H: 1, D: 1}}
	_, err := Compile(desc)
	require.Error(t, err)
}

func TestCompileRotationOptOut(t *testing.T) {
	desc := catalog.ProblemDescription[int]{
		Dims: geom.Dims{W: 1, H: 1, D: 1},
		Tiles: []catalog.Tile[int]{
			{ID: 0, CanRotate: false, CanFlip: false},
		},
	}
	c, err := Compile(desc)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	require.Equal(t, geom.R0, c.Transformation[0].Rotation)
}
