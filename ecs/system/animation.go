package system

import (
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// AnimationSystem advances every enabled animator by one tick and writes the
// current frame into the entity's sprite.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimatorComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animator, sprite *component.Sprite) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		anim.Advance()
		if frame, ok := anim.Frame(); ok {
			sprite.TileIndex = frame
		}
	})
}

// selectCharacterClip picks the clip matching the motion state of a
// character that is not dashing.
func selectCharacterClip(anim *component.Animator, c *component.Character, onGround, onWall bool) {
	if onGround {
		if c.MoveDir == 0 {
			anim.Play(component.ClipIdle)
		} else {
			anim.Play(component.ClipWalk)
		}
	}

	if (anim.Is(component.ClipJump) || anim.Is(component.ClipWallJump) || anim.Is(component.ClipDash)) && anim.Done() {
		anim.Play(component.ClipIdle)
	}

	if !onGround && onWall && c.Physics.WallJump {
		anim.Play(component.ClipOnWall)
	}
	if anim.Is(component.ClipOnWall) && !onWall {
		anim.Play(component.ClipIdle)
	}
}
