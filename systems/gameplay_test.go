package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/gamemath"
	"github.com/automoto/skydodge/systems/factory"
	"github.com/automoto/skydodge/tags"
	"github.com/yohamta/donburi"
)

func TestSpawner_RateGated(t *testing.T) {
	tw := newTestWorld(t, 0)
	sched := GetScheduler(tw.e)

	start := 2 * time.Second
	sched.AdvanceTo(start)
	UpdateSpawner(tw.e)
	UpdateSpawner(tw.e)
	if n := tw.count(tags.Enemy.Each); n != 1 {
		t.Fatalf("enemies = %d, want 1", n)
	}
	if n := tw.count(tags.Collectible.Each); n != 1 {
		t.Fatalf("collectibles = %d, want 1", n)
	}

	// Exactly one interval later is not enough
	sched.AdvanceTo(start + cfg.Enemy.SpawnInterval)
	UpdateSpawner(tw.e)
	if n := tw.count(tags.Enemy.Each); n != 1 {
		t.Errorf("enemies at exactly one interval = %d, want 1", n)
	}

	sched.AdvanceTo(start + cfg.Enemy.SpawnInterval + time.Millisecond)
	UpdateSpawner(tw.e)
	if n := tw.count(tags.Enemy.Each); n != 2 {
		t.Errorf("enemies = %d, want 2", n)
	}
	if n := tw.count(tags.Collectible.Each); n != 1 {
		t.Errorf("collectibles = %d, want 1", n)
	}
}

func TestSpawner_Ranges(t *testing.T) {
	tw := newTestWorld(t, 0)
	sched := GetScheduler(tw.e)

	for i := 1; i <= 200; i++ {
		sched.AdvanceTo(time.Duration(i) * 2 * time.Second)
		UpdateSpawner(tw.e)
	}

	tags.Enemy.Each(tw.e.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		f := components.Falling.Get(e)
		if obj.X < 0 || obj.X >= cfg.Playfield.Width-cfg.Enemy.SpawnMarginX {
			t.Errorf("enemy x = %v out of range", obj.X)
		}
		if obj.Y != cfg.Enemy.SpawnY {
			t.Errorf("enemy y = %v, want %v", obj.Y, cfg.Enemy.SpawnY)
		}
		if f.Speed < cfg.Enemy.MinSpeed || f.Speed >= cfg.Enemy.MaxSpeed {
			t.Errorf("enemy speed = %v out of range", f.Speed)
		}
		if f.Variant < 0 || f.Variant >= cfg.Enemy.Variants {
			t.Errorf("enemy variant = %d out of range", f.Variant)
		}
	})
	tags.Collectible.Each(tw.e.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		f := components.Falling.Get(e)
		if obj.X < 0 || obj.X >= cfg.Playfield.Width-cfg.Collectible.SpawnMarginX {
			t.Errorf("collectible x = %v out of range", obj.X)
		}
		if f.Speed != cfg.Collectible.Speed {
			t.Errorf("collectible speed = %v, want %v", f.Speed, cfg.Collectible.Speed)
		}
		if f.Variant < 0 || f.Variant >= cfg.Collectible.Variants {
			t.Errorf("collectible variant = %d out of range", f.Variant)
		}
	})
}

func TestFalling_CulledPastBottom(t *testing.T) {
	tw := newTestWorld(t, 0)
	enemy := factory.CreateEnemy(tw.e, 100, -200, 5, 0)

	for i := 0; i < 464; i++ {
		UpdateFalling(tw.e)
	}
	if !enemy.Valid() {
		t.Fatal("enemy culled too early")
	}
	if got := components.Object.Get(enemy).Y; got != 2120 {
		t.Errorf("y = %v, want 2120", got)
	}

	UpdateFalling(tw.e)
	if enemy.Valid() {
		t.Error("enemy should be culled once past height + margin")
	}
	if n := tw.count(tags.Enemy.Each); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
}

func TestFalling_AdvancesPulse(t *testing.T) {
	tw := newTestWorld(t, 0)
	for i := 0; i < 10; i++ {
		UpdateFalling(tw.e)
	}
	want := 10 * cfg.Collectible.PulseStep
	if got := tw.round().Pulse; math.Abs(got-want) > 1e-9 {
		t.Errorf("pulse = %v, want %v", got, want)
	}
}

type spawn struct {
	enemy  bool
	dx, dy float64
}

func TestCollisions(t *testing.T) {
	tests := []struct {
		name       string
		spawns     []spawn
		lives      int
		invincible bool
		wantLives  int
		wantScore  int
		wantRemain int
		wantState  cfg.RoundStateID
	}{
		{name: "enemy overlap", spawns: []spawn{{true, 50, 50}}, wantLives: 2},
		{name: "enemy touching edge", spawns: []spawn{{true, cfg.Player.Width, 0}}, wantLives: 3, wantRemain: 1},
		{name: "enemy while invincible", spawns: []spawn{{true, 0, 0}}, invincible: true, wantLives: 3, wantRemain: 1},
		{name: "collectible overlap", spawns: []spawn{{false, -60, 100}}, wantLives: 3, wantScore: 20},
		{name: "collectible while invincible", spawns: []spawn{{false, 0, 0}}, invincible: true, wantLives: 3, wantScore: 20},
		{name: "collectible touching corner", spawns: []spawn{{false, -cfg.Collectible.Width, -cfg.Collectible.Height}}, wantLives: 3, wantRemain: 1},
		{name: "far away", spawns: []spawn{{true, 400, -900}}, wantLives: 3, wantRemain: 1},
		{name: "hit and pickup in one frame", spawns: []spawn{{true, 20, 20}, {false, 40, 40}}, wantLives: 2, wantScore: 20},
		{name: "fatal hit still collects", spawns: []spawn{{false, 40, 40}, {true, 20, 20}}, lives: 1, wantLives: 0, wantScore: 20, wantState: cfg.RoundGameOver},
		{name: "one hit per frame", spawns: []spawn{{true, 0, 0}, {true, 30, 0}, {false, 0, 30}}, wantLives: 2, wantScore: 20, wantRemain: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t, 0)
			tw.startPlaying(t)
			tw.clearSpawns()

			player, lives, obj := tw.player()
			player.Invincible = tt.invincible
			if tt.lives > 0 {
				lives.Lives = tt.lives
			}

			for _, sp := range tt.spawns {
				x, y := obj.X+sp.dx, obj.Y+sp.dy
				if sp.enemy {
					factory.CreateEnemy(tw.e, x, y, 0, 0)
				} else {
					item := factory.CreateCollectible(tw.e, x, y, 0)
					components.Falling.Get(item).Speed = 0
				}
			}

			UpdateCollisions(tw.e)

			if lives.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", lives.Lives, tt.wantLives)
			}
			if got := tw.round().Score; got != tt.wantScore {
				t.Errorf("score = %d, want %d", got, tt.wantScore)
			}
			if got := tw.round().Score; got%cfg.Collectible.Points != 0 || got < 0 {
				t.Errorf("score %d is not a non-negative multiple of %d", got, cfg.Collectible.Points)
			}
			remain := tw.count(tags.Enemy.Each) + tw.count(tags.Collectible.Each)
			if remain != tt.wantRemain {
				t.Errorf("remaining = %d, want %d", remain, tt.wantRemain)
			}

			wantState := tt.wantState
			if wantState == cfg.RoundIdle {
				wantState = cfg.RoundPlaying
			}
			if got := tw.round().State; got != wantState {
				t.Errorf("state = %v, want %v", got, wantState)
			}
			if wantState.Ended() && tw.round().FinalScore != tt.wantScore {
				t.Errorf("final score = %d, want %d", tw.round().FinalScore, tt.wantScore)
			}
		})
	}
}

// Overlaps thinner than one unit across a space cell boundary still count.
func TestCollisions_SliverAcrossCellBoundary(t *testing.T) {
	tests := []struct {
		name    string
		enemy   bool
		playerX float64
		otherX  float64
	}{
		{name: "enemy", enemy: true, playerX: 420.5, otherX: 600},
		{name: "collectible", playerX: 420.5, otherX: 600},
		{name: "enemy on the left", enemy: true, playerX: 600.5, otherX: 440.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t, 0)
			tw.startPlaying(t)
			tw.clearSpawns()

			_, lives, obj := tw.player()
			obj.X, obj.Y = tt.playerX, 1000
			obj.Update()

			if tt.enemy {
				factory.CreateEnemy(tw.e, tt.otherX, 1000, 0, 0)
			} else {
				item := factory.CreateCollectible(tw.e, tt.otherX, 1000, 0)
				components.Falling.Get(item).Speed = 0
			}

			UpdateCollisions(tw.e)

			if tt.enemy && lives.Lives != 2 {
				t.Errorf("lives = %d, want 2", lives.Lives)
			}
			if !tt.enemy && tw.round().Score != cfg.Collectible.Points {
				t.Errorf("score = %d, want %d", tw.round().Score, cfg.Collectible.Points)
			}
			if remain := tw.count(tags.Enemy.Each) + tw.count(tags.Collectible.Each); remain != 0 {
				t.Errorf("remaining = %d, want 0", remain)
			}
		})
	}
}

func TestCollisions_HitFeedbackAndRecovery(t *testing.T) {
	tw := newTestWorld(t, 0)
	tw.startPlaying(t)
	tw.clearSpawns()
	tw.holdSpawner()

	player, lives, obj := tw.player()
	factory.CreateEnemy(tw.e, obj.X, obj.Y, 0, 0)
	factory.CreateEnemy(tw.e, obj.X+20, obj.Y, 0, 1)

	tw.step(1)
	if lives.Lives != 2 {
		t.Fatalf("lives = %d, want 2 (one hit per invincibility window)", lives.Lives)
	}
	if !player.Invincible {
		t.Fatal("player should be invincible after a hit")
	}
	if player.ShakeTimer != cfg.ScreenShake.Duration {
		t.Errorf("shake = %d, want %d", player.ShakeTimer, cfg.ScreenShake.Duration)
	}
	if got := GetHUD(tw.e).Lives; got != 2 {
		t.Errorf("HUD lives = %d, want 2", got)
	}

	hits := 0
	for _, id := range GetOrCreateAudio(tw.e).PendingSFX {
		if id == cfg.SoundHit {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("hit cues = %d, want 1", hits)
	}

	tw.step(cfg.ScreenShake.Duration)
	if player.ShakeTimer != 0 {
		t.Errorf("shake after %d frames = %d, want 0", cfg.ScreenShake.Duration, player.ShakeTimer)
	}

	// The second enemy is still overlapping and lands once invincibility ends
	tw.step(60 - 1 - cfg.ScreenShake.Duration)
	if lives.Lives != 2 {
		t.Errorf("lives during invincibility = %d, want 2", lives.Lives)
	}
	tw.step(1)
	if lives.Lives != 1 {
		t.Errorf("lives after invincibility = %d, want 1", lives.Lives)
	}
}

func TestPlayer_EasesAndClamps(t *testing.T) {
	tw := newTestWorld(t, 0)
	player, _, obj := tw.player()

	player.TargetX, player.TargetY = 0, obj.Y
	startX := obj.X
	UpdatePlayer(tw.e)
	if want := startX * (1 - cfg.Player.FollowFactor); math.Abs(obj.X-want) > 1e-9 {
		t.Errorf("x = %v, want %v", obj.X, want)
	}

	player.TargetX, player.TargetY = -500, 5000
	for i := 0; i < 200; i++ {
		UpdatePlayer(tw.e)
	}
	if obj.X != 0 {
		t.Errorf("x = %v, want 0", obj.X)
	}
	if want := cfg.Playfield.Height - cfg.Player.Height; obj.Y != want {
		t.Errorf("y = %v, want %v", obj.Y, want)
	}
}

func TestPlayerAlpha_Blinks(t *testing.T) {
	p := &components.PlayerData{}
	if got := PlayerAlpha(p); got != 1 {
		t.Errorf("alpha when vulnerable = %v, want 1", got)
	}

	p.Invincible = true
	tests := []struct {
		blink int
		want  float32
	}{
		{0, cfg.Player.BlinkAlpha},
		{cfg.Player.BlinkFrames - 1, cfg.Player.BlinkAlpha},
		{cfg.Player.BlinkFrames, 1},
		{2 * cfg.Player.BlinkFrames, cfg.Player.BlinkAlpha},
	}
	for _, tt := range tests {
		p.BlinkTimer = tt.blink
		if got := PlayerAlpha(p); got != tt.want {
			t.Errorf("blink %d: alpha = %v, want %v", tt.blink, got, tt.want)
		}
	}
}

func TestPointerTarget_UsesViewport(t *testing.T) {
	tw := newTestWorld(t, 0)

	entry, _ := components.Viewport.First(tw.e.World)
	components.Viewport.SetValue(entry, components.ViewportData{
		Viewport: gamemath.Viewport{Scale: 0.5, OffsetX: 10, OffsetY: 20},
	})

	input := getOrCreateInput(tw.e)
	input.Pointer = components.PointerData{Down: true, ScreenX: 10 + 270, ScreenY: 20 + 480}
	UpdatePointerTarget(tw.e)

	player, _, _ := tw.player()
	wantX := 540 - cfg.Player.Width/2
	wantY := 960 - cfg.Player.Height/2
	if player.TargetX != wantX || player.TargetY != wantY {
		t.Errorf("target = (%v,%v), want (%v,%v)", player.TargetX, player.TargetY, wantX, wantY)
	}

	input.Pointer.Down = false
	input.Pointer.ScreenX = 0
	UpdatePointerTarget(tw.e)
	if player.TargetX != wantX {
		t.Error("target moved while the pointer was up")
	}
}

func TestClouds_Wrap(t *testing.T) {
	tw := newTestWorld(t, 0)
	clouds := factory.CreateClouds(tw.e, []assets.CloudSpawn{
		{X: cfg.Cloud.WrapX - 0.1, Y: 100, Speed: 0.3},
		{X: 0, Y: 500, Speed: 0.2},
	})

	UpdateClouds(tw.e)

	if got := components.Cloud.Get(clouds[0]).X; got != cfg.Cloud.ResetX {
		t.Errorf("wrapped cloud x = %v, want %v", got, cfg.Cloud.ResetX)
	}
	if got := components.Cloud.Get(clouds[1]).X; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("cloud x = %v, want 0.2", got)
	}
}

func TestMute_DropsCues(t *testing.T) {
	tw := newTestWorld(t, 0)
	defer SetMuted(tw.e, false)

	SetMuted(tw.e, true)
	PlayHitCue(tw.e)
	PlayCollectCue(tw.e)
	if n := len(GetOrCreateAudio(tw.e).PendingSFX); n != 0 {
		t.Errorf("queued %d cues while muted", n)
	}

	SetMuted(tw.e, false)
	PlayCollectCue(tw.e)
	if n := len(GetOrCreateAudio(tw.e).PendingSFX); n != 1 {
		t.Errorf("queued %d cues, want 1", n)
	}
}

type recordingSettings struct {
	saved []SavedSettings
}

func (r *recordingSettings) LoadSettings() *SavedSettings { return nil }

func (r *recordingSettings) SaveSettings(s *SavedSettings) error {
	r.saved = append(r.saved, *s)
	return nil
}

func TestToggleMute_PersistsPreference(t *testing.T) {
	tw := newTestWorld(t, 0)
	rec := &recordingSettings{}
	UseSettingsStore(rec)
	defer UseSettingsStore(nil)
	defer SetMuted(tw.e, false)

	SetMuted(tw.e, false)
	ToggleMute(tw.e)

	if !IsMuted(tw.e) || !CurrentSettings(tw.e).Muted {
		t.Fatal("toggle did not mute")
	}
	if len(rec.saved) != 1 || !rec.saved[0].Muted {
		t.Errorf("saved %+v, want one muted entry", rec.saved)
	}

	ToggleMute(tw.e)
	if IsMuted(tw.e) || CurrentSettings(tw.e).Muted {
		t.Error("second toggle did not unmute")
	}
}

func TestMute_IsPerWorld(t *testing.T) {
	a := newTestWorld(t, 0)
	b := newTestWorld(t, 0)

	SetMuted(a.e, true)
	if !CurrentSettings(a.e).Muted {
		t.Error("muted world reports sound on")
	}
	if IsMuted(b.e) || CurrentSettings(b.e).Muted {
		t.Error("muting one world muted another")
	}
	PlayCollectCue(b.e)
	if n := len(GetOrCreateAudio(b.e).PendingSFX); n != 1 {
		t.Errorf("unmuted world queued %d cues, want 1", n)
	}
}
