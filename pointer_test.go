package gridloc_test

import (
	"testing"

	"github.com/cassaundra/gridloc"
	"github.com/stretchr/testify/assert"
)

func TestPointer_MoveBy(t *testing.T) {
	p := gridloc.NewPointer()
	p.Direction = gridloc.Right
	p.MoveBy(5)
	assert.Equal(t, gridloc.Position{X: 5, Y: 0}, p.Position)

	p.Direction = gridloc.Up
	p.MoveBy(3)
	assert.Equal(t, gridloc.Position{X: 5, Y: 3}, p.Position)
}

func TestPointer_PositionStack(t *testing.T) {
	p := gridloc.NewPointer()
	p.Position = gridloc.Position{X: 1, Y: 1}

	p.PopPosition() // no-op on empty
	assert.Equal(t, 0, p.StackDepth())

	p.PushPosition()
	assert.Equal(t, 1, p.StackDepth())

	p.Position = gridloc.Position{X: 9, Y: 9}
	p.SwapPosition()
	assert.Equal(t, gridloc.Position{X: 1, Y: 1}, p.Position, "swap must exchange with the stack top")
	assert.Equal(t, 1, p.StackDepth(), "swap does not change stack depth")

	p.SwapPosition()
	assert.Equal(t, gridloc.Position{X: 9, Y: 9}, p.Position, "swapping twice restores the original")

	p.PopPosition()
	assert.Equal(t, 0, p.StackDepth())
	assert.Equal(t, gridloc.Position{X: 1, Y: 1}, p.Position)
}

func TestPointer_CloneView(t *testing.T) {
	p := gridloc.NewPointer()
	p.Position = gridloc.Position{X: 4, Y: -2}
	p.Direction = gridloc.Down
	p.Value = 42
	p.PushPosition()

	clone := gridloc.CloneView(p)
	assert.Equal(t, p.Position, clone.Position)
	assert.Equal(t, p.Direction, clone.Direction)
	assert.Equal(t, byte(0), clone.Value, "clone's value register must reset")
	assert.Equal(t, 0, clone.StackDepth(), "clone's position stack must be empty")
}
