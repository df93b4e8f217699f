package gridloc_test

import (
	"testing"

	"github.com/cassaundra/gridloc"
	"github.com/stretchr/testify/assert"
)

func TestPosition_Arithmetic(t *testing.T) {
	a := gridloc.Position{X: 3, Y: -2}
	b := gridloc.Position{X: -1, Y: 5}

	assert.Equal(t, gridloc.Position{X: 2, Y: 3}, a.Add(b))
	assert.Equal(t, gridloc.Position{X: 4, Y: -7}, a.Sub(b))
	assert.Equal(t, gridloc.Position{X: 9, Y: -6}, a.Scale(3))
}

func TestDirection_UnitVector(t *testing.T) {
	cases := []struct {
		dir  gridloc.Direction
		want gridloc.Position
	}{
		{gridloc.Right, gridloc.Position{X: 1, Y: 0}},
		{gridloc.Left, gridloc.Position{X: -1, Y: 0}},
		{gridloc.Up, gridloc.Position{X: 0, Y: 1}},
		{gridloc.Down, gridloc.Position{X: 0, Y: -1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.dir.UnitVector(), "direction %v", tc.dir)
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, gridloc.Left, gridloc.Right.Opposite())
	assert.Equal(t, gridloc.Right, gridloc.Left.Opposite())
	assert.Equal(t, gridloc.Down, gridloc.Up.Opposite())
	assert.Equal(t, gridloc.Up, gridloc.Down.Opposite())
}
