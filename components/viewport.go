package components

import (
	"github.com/automoto/skydodge/gamemath"
	"github.com/yohamta/donburi"
)

// ViewportData is the playfield-to-screen mapping from the last Draw.
type ViewportData struct {
	gamemath.Viewport
	ScreenWidth  int
	ScreenHeight int
}

var Viewport = donburi.NewComponentType[ViewportData]()
