package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData holds the transition animations drawn over the playfield.
// A nil tween is inactive.
type OverlayData struct {
	StartFade     *gween.Tween // start panel alpha, 1 to 0
	CountdownFade *gween.Tween // countdown backdrop alpha, 1 to 0
	Pop           *gween.Tween // countdown number scale
	PopupFade     *gween.Tween // result popup alpha, 0 to 1

	StartAlpha     float32
	CountdownAlpha float32
	PopScale       float32
	PopupAlpha     float32
	CountdownValue int
	ShowCountdown  bool
}

var Overlay = donburi.NewComponentType[OverlayData]()
