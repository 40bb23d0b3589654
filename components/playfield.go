package components

import (
	"github.com/automoto/skydodge/assets"
	"github.com/yohamta/donburi"
)

type PlayfieldData struct {
	Layout *assets.Playfield
}

var Playfield = donburi.NewComponentType[PlayfieldData]()
