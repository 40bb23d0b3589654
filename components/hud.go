package components

import "github.com/yohamta/donburi"

// HUDData mirrors the values the HUD displays. It is only written by event
// handlers so the HUD never reads gameplay components directly.
type HUDData struct {
	Score    int
	Lives    int
	TimeLeft int
	Best     int
	Final    int
}

var HUD = donburi.NewComponentType[HUDData]()
