package bigpicture

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// GamepadSource reads the first connected gamepad through ebiten's
// standard layout and presents it in the raw array layout the Sampler
// expects. It implements types.InputSource.
type GamepadSource struct {
	ids []ebiten.GamepadID // reused across polls to avoid allocations

	triggerDeadzone float64
}

// NewGamepadSource creates a gamepad-backed input source.
func NewGamepadSource() *GamepadSource {
	return &GamepadSource{triggerDeadzone: TriggerDeadzone}
}

// SetTriggerDeadzone overrides the analog trigger deadzone. Zero keeps
// the default.
func (g *GamepadSource) SetTriggerDeadzone(deadzone float64) {
	if deadzone > 0 {
		g.triggerDeadzone = deadzone
	}
}

// standard button for each digital raw button index (LT/RT are analog
// and read separately)
var standardButtons = []struct {
	raw int
	std ebiten.StandardGamepadButton
}{
	{types.ButtonA, ebiten.StandardGamepadButtonRightBottom},
	{types.ButtonB, ebiten.StandardGamepadButtonRightRight},
	{types.ButtonX, ebiten.StandardGamepadButtonRightLeft},
	{types.ButtonY, ebiten.StandardGamepadButtonRightTop},
	{types.ButtonLB, ebiten.StandardGamepadButtonFrontTopLeft},
	{types.ButtonRB, ebiten.StandardGamepadButtonFrontTopRight},
	{types.ButtonStart, ebiten.StandardGamepadButtonCenterRight},
	{types.ButtonLSClick, ebiten.StandardGamepadButtonLeftStick},
	{types.ButtonRSClick, ebiten.StandardGamepadButtonRightStick},
	{types.ButtonDPadUp, ebiten.StandardGamepadButtonLeftTop},
	{types.ButtonDPadDown, ebiten.StandardGamepadButtonLeftBottom},
	{types.ButtonDPadLeft, ebiten.StandardGamepadButtonLeftLeft},
	{types.ButtonDPadRight, ebiten.StandardGamepadButtonLeftRight},
}

// Sample polls the first connected gamepad. ok is false when none is
// connected, which makes the Sampler skip the tick and reset edge state.
func (g *GamepadSource) Sample() (types.ControllerState, bool) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	if len(g.ids) == 0 {
		return types.ControllerState{}, false
	}
	id := g.ids[0]

	var state types.ControllerState
	state.Axes[types.AxisLeftX] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	state.Axes[types.AxisLeftY] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	state.Axes[types.AxisRightX] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	state.Axes[types.AxisRightY] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)

	for _, m := range standardButtons {
		state.Buttons[m.raw] = ebiten.IsStandardGamepadButtonPressed(id, m.std)
	}

	// Analog triggers become booleans through the trigger deadzone
	lt := ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	rt := ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
	state.Buttons[types.ButtonLT] = TriggerActive(lt, g.triggerDeadzone)
	state.Buttons[types.ButtonRT] = TriggerActive(rt, g.triggerDeadzone)

	return state, true
}
