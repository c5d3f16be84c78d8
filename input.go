package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/wallrun/ecs/system"
)

// EbitenInput maps keyboard keys and the first standard gamepad to actions.
// Edge-triggered actions fire on at most one tick per frame.
type EbitenInput struct {
	keys     map[system.Action][]ebiten.Key
	buttons  map[system.Action][]ebiten.StandardGamepadButton
	consumed map[system.Action]bool
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		keys: map[system.Action][]ebiten.Key{
			system.ActionQuit:  {ebiten.KeyEscape},
			system.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
			system.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
			system.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
			system.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
			system.ActionJump:  {ebiten.KeySpace, ebiten.KeyX},
			system.ActionDash:  {ebiten.KeyZ, ebiten.KeyShiftLeft},
		},
		buttons: map[system.Action][]ebiten.StandardGamepadButton{
			system.ActionQuit:  {ebiten.StandardGamepadButtonCenterRight},
			system.ActionLeft:  {ebiten.StandardGamepadButtonLeftLeft},
			system.ActionRight: {ebiten.StandardGamepadButtonLeftRight},
			system.ActionUp:    {ebiten.StandardGamepadButtonLeftTop},
			system.ActionDown:  {ebiten.StandardGamepadButtonLeftBottom},
			system.ActionJump:  {ebiten.StandardGamepadButtonRightBottom},
			system.ActionDash:  {ebiten.StandardGamepadButtonRightLeft, ebiten.StandardGamepadButtonFrontBottomRight},
		},
		consumed: make(map[system.Action]bool),
	}
}

// BeginFrame re-arms edge-triggered actions. Call it once per ebiten update.
func (in *EbitenInput) BeginFrame() {
	clear(in.consumed)
}

const stickDeadzone = 0.4

func (in *EbitenInput) Held(a system.Action) bool {
	for _, k := range in.keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return false
	}
	id := gamepads[0]
	for _, b := range in.buttons[a] {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if math.Abs(x) > stickDeadzone {
		return (a == system.ActionLeft && x < 0) || (a == system.ActionRight && x > 0)
	}
	return false
}

func (in *EbitenInput) JustPressed(a system.Action) bool {
	if in.consumed[a] {
		return false
	}
	if in.justPressed(a) {
		in.consumed[a] = true
		return true
	}
	return false
}

func (in *EbitenInput) justPressed(a system.Action) bool {
	for _, k := range in.keys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return false
	}
	for _, b := range in.buttons[a] {
		if inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], b) {
			return true
		}
	}
	return false
}
