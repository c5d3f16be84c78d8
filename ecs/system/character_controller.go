package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// CharacterControllerSystem integrates one tick of character physics:
// direction resolution, animation selection, dash and jump state machines
// and explicit Euler integration. It reads the contacts the tile resolver
// produced on the previous tick and clears them once done.
type CharacterControllerSystem struct{}

func NewCharacterControllerSystem() *CharacterControllerSystem {
	return &CharacterControllerSystem{}
}

func (s *CharacterControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Physics == nil || !ecs.IsEnabledRec(w, e) {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}
		anim, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())

		pos := stepCharacter(w, c, cp.Vector{X: t.X, Y: t.Y}, anim)
		if pos.X != t.X || pos.Y != t.Y {
			t.X, t.Y = pos.X, pos.Y
			col.Dirty = true
		}

		t.ScaleX = 1
		if c.LookDir == common.DirLeft {
			t.ScaleX = -1
		}

		c.Input.Swap()
		c.ClearContacts()
	})
}

// stepCharacter runs the state machine and returns the new position.
func stepCharacter(w *ecs.World, c *component.Character, pos cp.Vector, anim *component.Animator) cp.Vector {
	p := c.Physics
	touch := c.Touch.Current
	onGround := touch.Has(common.DirDown)
	onWall := touch.Has(common.DirHorizontal)
	dashing := c.Dashing()

	resolveMoveDir(c)

	if !dashing && anim != nil {
		selectCharacterClip(anim, c, onGround, onWall)
	}

	if !dashing && c.MoveDir != common.DirNone &&
		(c.WallJumpDir == common.DirNone || c.JumpDuration >= p.JumpTicks) {
		c.LookDir = c.MoveDir
	}
	if p.WallJump && !dashing && !onGround && onWall {
		c.LookDir = awayFrom(touch)
	}

	if onWall {
		c.DashDuration = p.DashTicks
	}
	if c.Input.Current.Dash && c.DashCount > 0 {
		c.DashDuration = 0
		c.DashCount--
		if anim != nil {
			anim.Play(component.ClipDash)
		}
		PlaySound(w, SoundDash)
	}
	c.Input.Current.Dash = false

	if c.DashDuration < p.DashTicks {
		sign := 1.0
		if c.LookDir == common.DirLeft {
			sign = -1
		}
		pos.X += sign * p.DashSpeed
		c.Velocity = cp.Vector{X: sign * p.MaxSpeed}
		c.DashDuration++
		return pos
	}

	var accel cp.Vector

	target := 0.0
	switch c.MoveDir {
	case common.DirLeft:
		target = -p.MaxSpeed
	case common.DirRight:
		target = p.MaxSpeed
	}
	if c.WallJumpDir == common.DirNone {
		limit := p.AirAccel
		if onGround {
			limit = p.GroundAccel
		}
		diff := target - c.Velocity.X
		if diff < 0 {
			accel.X = math.Max(-limit, diff)
		} else {
			accel.X = math.Min(limit, diff)
		}
	}

	wallHold := p.WallJump && onWall
	if c.JumpDuration >= p.JumpTicks && (onGround || wallHold) {
		c.JumpCount = p.NumJumps
		c.WallJumpDir = common.DirNone
		c.DashCount = p.NumDashes
	}
	if onGround {
		c.JumpDuration = p.JumpTicks
	}

	fallSpeed := p.MaxFallSpeed
	if wallHold {
		fallSpeed = p.MaxWallFallSpeed
	}
	accel.Y = math.Max(-p.Gravity, -fallSpeed-c.Velocity.Y)

	in := c.Input
	jumpPressed := p.Jump && in.Current.Jump && !in.Previous.Jump
	if jumpPressed && (onGround || wallHold || c.JumpCount > 0) {
		c.Velocity.Y = 0
		c.WallJumpDir = common.DirNone
		if p.WallJump && !onGround {
			c.WallJumpDir = awayFrom(touch)
		}
		c.JumpDuration = 0
		if !onGround && !wallHold {
			c.JumpCount--
		}
		if anim != nil {
			if c.WallJumpDir != common.DirNone {
				anim.Play(component.ClipWallJump)
			} else {
				anim.Play(component.ClipJump)
			}
		}
		PlaySound(w, SoundJump)
	}

	if c.JumpDuration < p.JumpTicks {
		if in.Current.Jump {
			c.Velocity.Y += p.JumpAccel
			switch c.WallJumpDir {
			case common.DirLeft:
				c.Velocity.X -= p.WallJumpAccel
			case common.DirRight:
				c.Velocity.X += p.WallJumpAccel
			}
			c.JumpDuration++
		} else {
			c.JumpDuration = p.JumpTicks
		}
	}
	if c.JumpDuration >= p.JumpTicks {
		c.WallJumpDir = common.DirNone
	}

	c.Velocity = c.Velocity.Add(accel)
	return pos.Add(c.Velocity)
}

// resolveMoveDir applies "newly pressed wins": a direction pressed this tick
// overrides one that was already held, and releasing both clears it.
func resolveMoveDir(c *component.Character) {
	held := c.Input.Current.Dirs
	pressed := c.Input.JustPressed()
	left := held.Has(common.DirLeft)
	right := held.Has(common.DirRight)

	switch {
	case pressed.Has(common.DirLeft) || (left && !right):
		c.MoveDir = common.DirLeft
	case pressed.Has(common.DirRight) || (right && !left):
		c.MoveDir = common.DirRight
	case !left && !right:
		c.MoveDir = common.DirNone
	}
}

// awayFrom returns the horizontal direction opposite to a wall contact.
func awayFrom(touch common.DirFlags) common.DirFlags {
	switch {
	case touch.Has(common.DirLeft):
		return common.DirRight
	case touch.Has(common.DirRight):
		return common.DirLeft
	}
	return common.DirNone
}
