package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/engine"
	"github.com/milk9111/sketchjump/physics"
)

const stickDeadzone = 0.2

// Input samples keyboard, mouse and gamepad once per frame. The layout is
// fixed to the world size, so cursor positions are world coordinates.
type Input struct {
	// JumpRequiresPress limits jumps to the frame the key goes down.
	JumpRequiresPress bool

	drag engine.Drag
}

func NewInput(jumpRequiresPress bool) *Input {
	return &Input{JumpRequiresPress: jumpRequiresPress}
}

func (i *Input) Poll() engine.FrameInput {
	var in engine.FrameInput

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			left = left || leftX < 0
			right = right || leftX > 0
		}
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		jumpHeld = jumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	jump := jumpHeld
	if i.JumpRequiresPress {
		jump = jumpPressed
	}
	in.Move = physics.Input{Left: left, Right: right, Jump: jump}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Events = append(in.Events, engine.InputEvent{Kind: engine.InputReset})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Events = append(in.Events, engine.InputEvent{Kind: engine.InputClearDrawn})
	}

	mx, my := ebiten.CursorPosition()
	pt := cp.Vector{X: float64(mx), Y: float64(my)}
	in.Events = append(in.Events, i.drag.Sample(
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		pt,
	)...)
	return in
}

// Cancel drops a drag in progress, e.g. when the game pauses mid-gesture.
func (i *Input) Cancel() {
	i.drag.Cancel()
}
