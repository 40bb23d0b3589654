package systems

import (
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateRound and UpdatePointerTarget in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	updatePointer(&input.Pointer)
}

// updatePointer tracks the left mouse button, falling back to the first
// active touch when the mouse is up.
func updatePointer(p *components.PointerData) {
	wasDown := p.Down

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		setPointer(p, wasDown, float64(x), float64(y))
		return
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		setPointer(p, wasDown, float64(x), float64(y))
		return
	}

	p.Down = false
	p.JustPressed = false
}

func setPointer(p *components.PointerData, wasDown bool, x, y float64) {
	p.Down = true
	p.JustPressed = !wasDown
	p.ScreenX = x
	p.ScreenY = y
}

// UpdatePointerTarget moves the player's target under the pointer while it is held.
func UpdatePointerTarget(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.Pointer.Down {
		return
	}
	SetTargetFromScreen(e, input.Pointer.ScreenX, input.Pointer.ScreenY)
}

// SetTargetFromScreen converts a screen point to playfield units and centres
// the player sprite on it.
func SetTargetFromScreen(e *ecs.ECS, screenX, screenY float64) {
	playerEntry, ok := GetPlayer(e)
	if !ok {
		return
	}

	vp := GetViewport(e)
	x, y := vp.ToPlayfield(screenX, screenY)

	player := components.Player.Get(playerEntry)
	player.TargetX = x - cfg.Player.Width/2
	player.TargetY = y - cfg.Player.Height/2
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
