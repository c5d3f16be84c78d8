package system

import (
	"github.com/milk9111/wallrun/common"
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// Action is a logical input.
type Action int

const (
	ActionQuit Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionDash
)

// InputSource reports the state of logical inputs for the current tick.
type InputSource interface {
	Held(a Action) bool
	JustPressed(a Action) bool
}

// InputSystem latches logical inputs into every enabled player character.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	var dirs common.DirFlags
	if i.source.Held(ActionLeft) {
		dirs |= common.DirLeft
	}
	if i.source.Held(ActionRight) {
		dirs |= common.DirRight
	}
	if i.source.Held(ActionDown) {
		dirs |= common.DirDown
	}
	if i.source.Held(ActionUp) {
		dirs |= common.DirUp
	}
	jump := i.source.Held(ActionJump)
	dash := i.source.JustPressed(ActionDash)

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.CharacterComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, c *component.Character) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		c.PressMove(dirs)
		c.PressJump(jump)
		c.PressDash(dash)
	})
}
