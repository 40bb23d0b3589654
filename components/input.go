package components

import (
	cfg "github.com/automoto/skydodge/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData is the primary mouse button or first touch, in screen pixels.
type PointerData struct {
	Down        bool
	JustPressed bool
	ScreenX     float64
	ScreenY     float64
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  PointerData
}

var Input = donburi.NewComponentType[InputData]()
