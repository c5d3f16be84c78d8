package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/milk9111/wallrun/common"
)

func TestCharacterReset(t *testing.T) {
	c := NewCharacter(DefaultCharPhysicsParams())
	assert.False(t, c.Dashing())
	assert.Equal(t, common.DirRight, c.LookDir)

	c.Velocity = cp.Vector{X: 3, Y: 4}
	c.JumpCount = 2
	c.DashDuration = 1
	c.LookDir = common.DirLeft
	c.Penetration[common.Up] = 5
	c.Touch.Current = common.DirUp
	c.PressMove(common.DirLeft)
	assert.True(t, c.Dashing())

	c.Reset()
	assert.False(t, c.Dashing())
	assert.Equal(t, DashIdle, c.DashDuration)
	assert.Equal(t, cp.Vector{}, c.Velocity)
	assert.Zero(t, c.JumpCount)
	assert.Equal(t, [4]float64{}, c.Penetration)
	assert.Equal(t, TouchBuffer{}, c.Touch)
	assert.Equal(t, InputBuffer{}, c.Input)
	assert.Equal(t, common.DirLeft, c.LookDir, "look direction survives a reset")
}

func TestInputBuffer(t *testing.T) {
	var b InputBuffer
	b.Current = InputLatch{Dirs: common.DirLeft, Jump: true}
	assert.Equal(t, common.DirLeft, b.JustPressed())

	b.Swap()
	assert.Equal(t, InputLatch{}, b.Current)
	assert.True(t, b.Previous.Jump)

	b.Current.Dirs = common.DirLeft | common.DirRight
	assert.Equal(t, common.DirRight, b.JustPressed())
}

func TestTouchBufferAndClearContacts(t *testing.T) {
	c := NewCharacter(DefaultCharPhysicsParams())
	c.Touch.Current = common.DirDown
	c.Penetration[common.Down] = 1.5

	c.ClearContacts()
	assert.Equal(t, common.DirNone, c.Touch.Current)
	assert.Equal(t, common.DirDown, c.Touch.Previous)
	assert.Equal(t, [4]float64{}, c.Penetration)
}

func TestTriggerTransitions(t *testing.T) {
	tr := Trigger{}
	tr.Inside = true
	assert.True(t, tr.Entered())
	tr.PrevInside, tr.Inside = true, true
	assert.False(t, tr.Entered())
	assert.False(t, tr.Exited())
	tr.Inside = false
	assert.True(t, tr.Exited())
}

func TestTransformLerp(t *testing.T) {
	tr := Transform{X: 10, Y: 20}
	tr.Snapshot()
	tr.X, tr.Y = 20, 10
	x, y := tr.Lerp(0.5)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 15.0, y)

	tr.MoveTo(0, 0)
	x, y = tr.Lerp(0.5)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}
