package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTuning_OverridesOnlyGivenFields(t *testing.T) {
	data := []byte(`
enemy:
  spawnInterval: 450ms
  maxSpeed: 9
round:
  duration: 45
`)
	tuning, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}

	if tuning.Enemy.SpawnInterval != 450*time.Millisecond {
		t.Errorf("Enemy.SpawnInterval = %v, want 450ms", tuning.Enemy.SpawnInterval)
	}
	if tuning.Enemy.MaxSpeed != 9 {
		t.Errorf("Enemy.MaxSpeed = %v, want 9", tuning.Enemy.MaxSpeed)
	}
	if tuning.Enemy.MinSpeed != Enemy.MinSpeed {
		t.Errorf("Enemy.MinSpeed = %v, want default %v", tuning.Enemy.MinSpeed, Enemy.MinSpeed)
	}
	if tuning.Round.Duration != 45 {
		t.Errorf("Round.Duration = %d, want 45", tuning.Round.Duration)
	}
	if tuning.Player.StartingLives != Player.StartingLives {
		t.Errorf("Player.StartingLives = %d, want default %d", tuning.Player.StartingLives, Player.StartingLives)
	}
}

func TestParseTuning_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "enemy: [1, 2"},
		{"zero lives", "player:\n  startingLives: 0\n"},
		{"inverted speeds", "enemy:\n  minSpeed: 8\n  maxSpeed: 4\n"},
		{"zero round", "round:\n  duration: 0\n"},
		{"follow factor above one", "player:\n  followFactor: 1.5\n"},
		{"bad duration", "round:\n  tick: soon\n"},
		{"wrap before reset", "cloud:\n  wrapX: -500\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.yaml)); err == nil {
				t.Errorf("ParseTuning(%q) succeeded, want error", tt.yaml)
			}
		})
	}
}

func TestLoadTuning_AppliesAndRestores(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("collectible:\n  points: 50\n"), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if Collectible.Points != 50 {
		t.Errorf("Collectible.Points = %d, want 50", Collectible.Points)
	}
}

func TestLoadTuning_MissingFileLeavesDefaults(t *testing.T) {
	before := CurrentTuning()
	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadTuning on missing file succeeded, want error")
	}
	if CurrentTuning() != before {
		t.Error("tuning changed after failed load")
	}
}

func TestRoundStateID_String(t *testing.T) {
	if RoundCountdown.String() != "countdown" {
		t.Errorf("RoundCountdown.String() = %q", RoundCountdown.String())
	}
	if !RoundGameOver.Ended() || RoundPlaying.Ended() {
		t.Error("Ended() mismatch")
	}
}
