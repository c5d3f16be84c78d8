package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
)

// DashIdle is the dash timer value of a character that is not dashing.
const DashIdle = 9999

// InputLatch is one tick worth of logical input.
type InputLatch struct {
	Dirs common.DirFlags
	Jump bool
	Dash bool
}

// InputBuffer keeps the current latch and the one from the previous tick.
type InputBuffer struct {
	Current  InputLatch
	Previous InputLatch
}

// Swap moves Current into Previous and clears Current.
func (b *InputBuffer) Swap() {
	b.Previous = b.Current
	b.Current = InputLatch{}
}

// JustPressed reports the directions held now but not on the previous tick.
func (b *InputBuffer) JustPressed() common.DirFlags {
	return b.Current.Dirs &^ b.Previous.Dirs
}

// TouchBuffer keeps contact flags for this tick and the previous one.
type TouchBuffer struct {
	Current  common.DirFlags
	Previous common.DirFlags
}

func (b *TouchBuffer) Swap() {
	b.Previous = b.Current
	b.Current = common.DirNone
}

// Character is the mutable physics state of a controllable body.
type Character struct {
	Physics *CharPhysicsParams

	Input       InputBuffer
	Touch       TouchBuffer
	Penetration [4]float64

	Velocity cp.Vector
	MoveDir  common.DirFlags
	LookDir  common.DirFlags

	JumpDuration int
	JumpCount    int
	WallJumpDir  common.DirFlags

	DashDuration int
	DashCount    int
}

// NewCharacter returns a reset character looking right.
func NewCharacter(params *CharPhysicsParams) *Character {
	c := &Character{Physics: params, LookDir: common.DirRight}
	c.Reset()
	return c
}

// Reset restores the spawn state. LookDir is kept.
func (c *Character) Reset() {
	c.Input = InputBuffer{}
	c.Touch = TouchBuffer{}
	c.Penetration = [4]float64{}
	c.Velocity = cp.Vector{}
	c.MoveDir = common.DirNone
	c.JumpDuration = 0
	c.JumpCount = 0
	c.WallJumpDir = common.DirNone
	c.DashDuration = DashIdle
	c.DashCount = 0
}

func (c *Character) PressMove(dirs common.DirFlags) {
	c.Input.Current.Dirs |= dirs
}

func (c *Character) PressJump(pressed bool) {
	c.Input.Current.Jump = pressed
}

func (c *Character) PressDash(pressed bool) {
	c.Input.Current.Dash = pressed
}

// Dashing reports whether a dash is in progress.
func (c *Character) Dashing() bool {
	return c.Physics != nil && c.DashDuration < c.Physics.DashTicks
}

// ClearContacts drops the resolver output of the last tick.
func (c *Character) ClearContacts() {
	c.Touch.Swap()
	c.Penetration = [4]float64{}
}

var CharacterComponent = NewComponent[Character]()
