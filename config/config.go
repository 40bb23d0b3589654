package config

import (
	"image/color"
	"time"
)

// PlayfieldConfig describes the logical drawing surface. All entity
// coordinates are expressed in playfield units regardless of window size.
type PlayfieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cullMargin"` // distance below the bottom edge before falling entities are dropped
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Lives
	StartingLives int `yaml:"startingLives"`

	// Movement
	FollowFactor float64 `yaml:"followFactor"` // fraction of the remaining distance covered per frame

	// Damage response
	InvincibleFor time.Duration `yaml:"invincibleFor"`
	BlinkFrames   int           `yaml:"blinkFrames"` // frames per visibility phase while invincible
	BlinkAlpha    float32       `yaml:"blinkAlpha"`
}

// EnemyConfig contains spawn and motion settings for falling hazards
type EnemyConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	MinSpeed      float64       `yaml:"minSpeed"`
	MaxSpeed      float64       `yaml:"maxSpeed"` // exclusive
	SpawnY        float64       `yaml:"spawnY"`
	SpawnMarginX  float64       `yaml:"spawnMarginX"` // spawn x is drawn from [0, width-margin)
	SpawnInterval time.Duration `yaml:"spawnInterval"`
	Variants      int           `yaml:"variants"`
}

// CollectibleConfig contains spawn, motion and scoring settings for pickups
type CollectibleConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	Speed         float64       `yaml:"speed"`
	SpawnY        float64       `yaml:"spawnY"`
	SpawnMarginX  float64       `yaml:"spawnMarginX"`
	SpawnInterval time.Duration `yaml:"spawnInterval"`
	Variants      int           `yaml:"variants"`
	Points        int           `yaml:"points"`

	// Glow pulse
	PulseStep      float64 `yaml:"pulseStep"` // radians added to the shared pulse per frame
	GlowMinSize    float64 `yaml:"glowMinSize"`
	GlowSizeRange  float64 `yaml:"glowSizeRange"`
	GlowMinAlpha   float64 `yaml:"glowMinAlpha"`
	GlowAlphaRange float64 `yaml:"glowAlphaRange"`
}

// CloudConfig contains settings for the decorative background clouds
type CloudConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Alpha    float32 `yaml:"alpha"`
	Variants int     `yaml:"variants"`
	WrapX    float64 `yaml:"wrapX"`  // clouds past this x re-enter on the left
	ResetX   float64 `yaml:"resetX"` // x a wrapped cloud restarts from
}

// RoundConfig contains timing for a single round and its transitions
type RoundConfig struct {
	Duration      int           `yaml:"duration"`      // seconds on the game clock
	CountdownFrom int           `yaml:"countdownFrom"` // first number shown by the countdown
	Tick          time.Duration `yaml:"tick"`          // countdown and game clock period
	StartFade     time.Duration `yaml:"startFade"`     // start panel fade before the countdown begins
	CountdownFade time.Duration `yaml:"countdownFade"` // overlay fade between countdown end and play
	PopupFade     time.Duration `yaml:"popupFade"`
	PopDuration   time.Duration `yaml:"popDuration"`
	PopScale      float64       `yaml:"popScale"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Duration  int     `yaml:"duration"`  // frames
	Intensity float64 `yaml:"intensity"` // offset radius in playfield units
	Frequency float64 `yaml:"frequency"` // radians per frame
}

// IdleDecorConfig controls the drifting bubbles drawn outside of play
type IdleDecorConfig struct {
	Bubbles     int
	Spacing     float64
	BaseY       float64
	BaseRadius  float64
	RadiusStep  float64 // added per bubble, cycling every three
	SwayX       float64
	SwayY       float64
	SwayPeriodX float64 // ms per radian
	SwayPeriodY float64
	Color       color.RGBA
}

// HUDConfig contains HUD layout and colours
type HUDConfig struct {
	Margin       float64
	HeartSize    float64
	HeartSpacing float64
	PanelColor   color.RGBA
	TextColor    color.RGBA
	TimerColor   color.RGBA
	LowTimeColor color.RGBA
	LowTime      int // seconds at which the timer switches colour
}

// SpaceConfig sizes the broad-phase collision grid
type SpaceConfig struct {
	CellWidth  int
	CellHeight int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	TPS          int
	AppName      string // storage namespace for persisted data
}

// FrameDuration is the game time covered by one update tick.
func FrameDuration() time.Duration {
	return time.Second / time.Duration(C.TPS)
}

// Global configuration instances
var C *Config
var Playfield PlayfieldConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Cloud CloudConfig
var Round RoundConfig
var ScreenShake ScreenShakeConfig
var IdleDecor IdleDecorConfig
var HUD HUDConfig
var Space SpaceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	SkyTop       = color.RGBA{R: 0xa7, G: 0xec, B: 0xff, A: 255}
	SkyBottom    = color.RGBA{R: 0xff, G: 0xf6, B: 0xff, A: 255}
	GlowYellow   = color.RGBA{R: 255, G: 255, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DeepBlue     = color.RGBA{R: 20, G: 40, B: 90, A: 255}
)

func init() {
	C = &Config{
		Title:        "SkyDodge",
		WindowWidth:  540,
		WindowHeight: 960,
		TPS:          60,
		AppName:      "skydodge",
	}

	Playfield = PlayfieldConfig{
		Width:      1080,
		Height:     1920,
		CullMargin: 200,
	}

	Player = PlayerConfig{
		StartX: 1080/2 - 120,
		StartY: 1500,

		Width:  180,
		Height: 180,

		StartingLives: 3,

		FollowFactor: 0.2,

		InvincibleFor: 1000 * time.Millisecond,
		BlinkFrames:   5,
		BlinkAlpha:    0.2,
	}

	Enemy = EnemyConfig{
		Width:         160,
		Height:        160,
		MinSpeed:      4,
		MaxSpeed:      7,
		SpawnY:        -200,
		SpawnMarginX:  200,
		SpawnInterval: 900 * time.Millisecond,
		Variants:      3,
	}

	Collectible = CollectibleConfig{
		Width:         120,
		Height:        120,
		Speed:         5,
		SpawnY:        -200,
		SpawnMarginX:  150,
		SpawnInterval: 1500 * time.Millisecond,
		Variants:      2,
		Points:        20,

		PulseStep:      0.07,
		GlowMinSize:    20,
		GlowSizeRange:  40,
		GlowMinAlpha:   0.4,
		GlowAlphaRange: 0.6,
	}

	Cloud = CloudConfig{
		Width:    420,
		Height:   220,
		Alpha:    0.85,
		Variants: 3,
		WrapX:    1300,
		ResetX:   -400,
	}

	Round = RoundConfig{
		Duration:      30,
		CountdownFrom: 3,
		Tick:          time.Second,
		StartFade:     600 * time.Millisecond,
		CountdownFade: 300 * time.Millisecond,
		PopupFade:     320 * time.Millisecond,
		PopDuration:   200 * time.Millisecond,
		PopScale:      1.4,
	}

	ScreenShake = ScreenShakeConfig{
		Duration:  20,
		Intensity: 20,
		Frequency: 0.6,
	}

	IdleDecor = IdleDecorConfig{
		Bubbles:     6,
		Spacing:     150,
		BaseY:       300,
		BaseRadius:  80,
		RadiusStep:  10,
		SwayX:       30,
		SwayY:       40,
		SwayPeriodX: 2000,
		SwayPeriodY: 1700,
		Color:       color.RGBA{R: 15, G: 15, B: 15, A: 15}, // white at 6%, premultiplied
	}

	HUD = HUDConfig{
		Margin:       40,
		HeartSize:    56,
		HeartSpacing: 12,
		PanelColor:   color.RGBA{R: 0, G: 0, B: 0, A: 110},
		TextColor:    White,
		TimerColor:   White,
		LowTimeColor: LightRed,
		LowTime:      5,
	}

	Space = SpaceConfig{
		CellWidth:  60,
		CellHeight: 60,
	}
}
