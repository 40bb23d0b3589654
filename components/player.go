package components

import (
	"github.com/automoto/skydodge/schedule"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX     float64
	SpawnY     float64
	TargetX    float64
	TargetY    float64
	Invincible bool
	BlinkTimer int // frames since the last hit, drives the flicker
	ShakeTimer int // frames of screen shake remaining

	InvincibleTimer *schedule.Timer
}

var Player = donburi.NewComponentType[PlayerData]()
