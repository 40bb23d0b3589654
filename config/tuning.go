package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig is the subset of gameplay values that may be overridden from a
// YAML file. Sections left out of the file keep their compiled-in defaults.
type TuningConfig struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Cloud       CloudConfig       `yaml:"cloud"`
	Round       RoundConfig       `yaml:"round"`
	ScreenShake ScreenShakeConfig `yaml:"screenShake"`
}

// CurrentTuning snapshots the active tuning values.
func CurrentTuning() TuningConfig {
	return TuningConfig{
		Playfield:   Playfield,
		Player:      Player,
		Enemy:       Enemy,
		Collectible: Collectible,
		Cloud:       Cloud,
		Round:       Round,
		ScreenShake: ScreenShake,
	}
}

// Apply makes t the active tuning.
func (t TuningConfig) Apply() {
	Playfield = t.Playfield
	Player = t.Player
	Enemy = t.Enemy
	Collectible = t.Collectible
	Cloud = t.Cloud
	Round = t.Round
	ScreenShake = t.ScreenShake
}

// LoadTuning reads a YAML override file on top of the current values and
// applies it. Nothing is applied when the file is unreadable or invalid.
func LoadTuning(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}

	tuning, err := ParseTuning(data)
	if err != nil {
		return err
	}
	tuning.Apply()
	return nil
}

// ParseTuning decodes YAML over the current values and validates the result.
func ParseTuning(data []byte) (TuningConfig, error) {
	tuning := CurrentTuning()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return TuningConfig{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(&tuning); err != nil {
		return TuningConfig{}, fmt.Errorf("invalid tuning config: %w", err)
	}
	return tuning, nil
}

func validateTuning(t *TuningConfig) error {
	if t.Playfield.Width <= 0 || t.Playfield.Height <= 0 {
		return fmt.Errorf("playfield size must be positive, got %vx%v", t.Playfield.Width, t.Playfield.Height)
	}
	if t.Playfield.CullMargin < 0 {
		return fmt.Errorf("playfield.cullMargin must be >= 0, got %v", t.Playfield.CullMargin)
	}

	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if t.Player.Width > t.Playfield.Width || t.Player.Height > t.Playfield.Height {
		return fmt.Errorf("player does not fit inside the playfield")
	}
	if t.Player.StartingLives < 1 {
		return fmt.Errorf("player.startingLives must be >= 1, got %d", t.Player.StartingLives)
	}
	if t.Player.FollowFactor <= 0 || t.Player.FollowFactor > 1 {
		return fmt.Errorf("player.followFactor must be in (0, 1], got %v", t.Player.FollowFactor)
	}
	if t.Player.BlinkFrames < 1 {
		return fmt.Errorf("player.blinkFrames must be >= 1, got %d", t.Player.BlinkFrames)
	}

	if t.Enemy.MinSpeed <= 0 || t.Enemy.MaxSpeed < t.Enemy.MinSpeed {
		return fmt.Errorf("enemy speed range [%v, %v) is invalid", t.Enemy.MinSpeed, t.Enemy.MaxSpeed)
	}
	if t.Enemy.SpawnInterval <= 0 {
		return fmt.Errorf("enemy.spawnInterval must be positive")
	}
	if t.Enemy.Variants < 1 {
		return fmt.Errorf("enemy.variants must be >= 1, got %d", t.Enemy.Variants)
	}
	if t.Enemy.SpawnMarginX >= t.Playfield.Width {
		return fmt.Errorf("enemy.spawnMarginX must be smaller than the playfield width")
	}

	if t.Collectible.Speed <= 0 {
		return fmt.Errorf("collectible.speed must be positive")
	}
	if t.Collectible.SpawnInterval <= 0 {
		return fmt.Errorf("collectible.spawnInterval must be positive")
	}
	if t.Collectible.Variants < 1 {
		return fmt.Errorf("collectible.variants must be >= 1, got %d", t.Collectible.Variants)
	}
	if t.Collectible.Points < 0 {
		return fmt.Errorf("collectible.points must be >= 0, got %d", t.Collectible.Points)
	}
	if t.Collectible.SpawnMarginX >= t.Playfield.Width {
		return fmt.Errorf("collectible.spawnMarginX must be smaller than the playfield width")
	}

	if t.Cloud.WrapX <= t.Cloud.ResetX {
		return fmt.Errorf("cloud.wrapX must be greater than cloud.resetX")
	}

	if t.Round.Duration < 1 {
		return fmt.Errorf("round.duration must be >= 1, got %d", t.Round.Duration)
	}
	if t.Round.CountdownFrom < 1 {
		return fmt.Errorf("round.countdownFrom must be >= 1, got %d", t.Round.CountdownFrom)
	}
	if t.Round.Tick <= 0 {
		return fmt.Errorf("round.tick must be positive")
	}
	if t.Round.StartFade < 0 || t.Round.CountdownFade < 0 || t.Round.PopupFade < 0 || t.Round.PopDuration < 0 {
		return fmt.Errorf("round fade durations must be >= 0")
	}

	if t.ScreenShake.Duration < 0 {
		return fmt.Errorf("screenShake.duration must be >= 0, got %d", t.ScreenShake.Duration)
	}

	return nil
}
