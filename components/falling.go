package components

import "github.com/yohamta/donburi"

// FallingData moves an enemy or collectible down the playfield.
type FallingData struct {
	Speed   float64 // playfield units per frame
	Variant int     // sprite index
}

var Falling = donburi.NewComponentType[FallingData]()

// CloudData is a decorative cloud drifting to the right.
type CloudData struct {
	X, Y    float64
	Speed   float64
	Variant int
}

var Cloud = donburi.NewComponentType[CloudData]()
