package components

import (
	cfg "github.com/automoto/skydodge/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context     *audio.Context
	MusicPlayer *audio.Player
	MusicVolume float64 // 0.0 - 1.0
	SFXVolume   float64 // 0.0 - 1.0
	Muted       bool
	Failed      bool // set after the first playback error; later cues are dropped
	PendingSFX  []cfg.SoundID
	MusicWanted bool // music should be audible once the context is ready
	RestartNext bool // rewind the music before the next play
}

var Audio = donburi.NewComponentType[AudioData]()
