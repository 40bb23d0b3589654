package systems

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once, on the first UpdateAudio
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
	audioErrOnce       sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every cue and the music loop at startup so the
// first play does not stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()

	if err := globalAudioLoader.PreloadSFX(); err != nil {
		log.Printf("Warning: Could not prepare sound effects: %v", err)
	}
	if _, err := globalAudioLoader.LoadMusic(); err != nil {
		log.Printf("Warning: Could not prepare music: %v", err)
	}
}

// UpdateAudio plays queued cues and brings the music player in line with the
// requested state.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if audioData.Failed {
		audioData.PendingSFX = audioData.PendingSFX[:0]
		return
	}

	initGlobalAudio()
	if audioData.Context == nil {
		audioData.Context = globalAudioContext
	}

	for _, soundID := range audioData.PendingSFX {
		if err := playSFX(audioData, soundID); err != nil {
			reportAudioError(audioData, err)
			break
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if err := syncMusic(audioData); err != nil {
		reportAudioError(audioData, err)
	}
}

func playSFX(audioData *components.AudioData, soundID cfg.SoundID) error {
	if audioData.Muted || audioData.SFXVolume <= 0 {
		return nil
	}

	pcm, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return err
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Synth.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player := audioData.Context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	return nil
}

func syncMusic(audioData *components.AudioData) error {
	if !audioData.MusicWanted {
		if audioData.MusicPlayer != nil && audioData.MusicPlayer.IsPlaying() {
			audioData.MusicPlayer.Pause()
		}
		return nil
	}

	if audioData.MusicPlayer == nil {
		pcm, err := globalAudioLoader.LoadMusic()
		if err != nil {
			return err
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := audioData.Context.NewPlayer(loop)
		if err != nil {
			return fmt.Errorf("failed to create music player: %w", err)
		}
		audioData.MusicPlayer = player
	}

	player := audioData.MusicPlayer
	if audioData.RestartNext {
		if err := player.SetPosition(0); err != nil {
			return fmt.Errorf("failed to rewind music: %w", err)
		}
		audioData.RestartNext = false
	}

	if audioData.Muted {
		player.SetVolume(0)
	} else {
		player.SetVolume(audioData.MusicVolume)
	}
	if !player.IsPlaying() {
		player.Play()
	}
	return nil
}

// reportAudioError logs the first failure and silences audio for the rest
// of the session.
func reportAudioError(audioData *components.AudioData, err error) {
	audioData.Failed = true
	audioData.MusicWanted = false
	audioErrOnce.Do(func() {
		log.Printf("Warning: Audio disabled: %v", err)
	})
}

// PlayHitCue queues the damage sound.
func PlayHitCue(e *ecs.ECS) {
	queueSFX(e, cfg.SoundHit)
}

// PlayCollectCue queues the pickup sound.
func PlayCollectCue(e *ecs.ECS) {
	queueSFX(e, cfg.SoundCollect)
}

// PlayCountdownCue queues the countdown beep.
func PlayCountdownCue(e *ecs.ECS) {
	queueSFX(e, cfg.SoundCountdown)
}

func queueSFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	if audioData.Muted || audioData.Failed {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayBackgroundMusic starts the music loop from the beginning.
func PlayBackgroundMusic(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.MusicWanted = true
	audioData.RestartNext = true
}

// PauseBackgroundMusic pauses the music loop where it is.
func PauseBackgroundMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).MusicWanted = false
}

// StopBackgroundMusic stops the music loop; the next play starts from the top.
func StopBackgroundMusic(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.MusicWanted = false
	audioData.RestartNext = true
}

// ToggleMute flips music and cue output and remembers the choice.
func ToggleMute(e *ecs.ECS) {
	SetMuted(e, !IsMuted(e))
	saveSettings(e)
}

// SetMuted silences or restores all audio without persisting the choice.
func SetMuted(e *ecs.ECS, muted bool) {
	audioData := GetOrCreateAudio(e)
	audioData.Muted = muted
	if muted {
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// IsMuted reports whether audio output is currently silenced.
func IsMuted(e *ecs.ECS) bool {
	return GetOrCreateAudio(e).Muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The audio device is not touched here.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: cfg.Audio.DefaultMusicVol,
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
