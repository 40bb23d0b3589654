package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCountdown
	SoundHit
	SoundCollect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SynthConfig describes the procedurally generated cues and music loop
type SynthConfig struct {
	Cues              map[SoundID]CueConfig
	VolumeMultipliers map[SoundID]float64
	MusicNotes        []float64 // Hz, one per beat; 0 is a rest
	MusicBeatMs       int
	MusicGain         float64
}

// CueConfig is one short synthesized effect: a tone sliding from StartHz to EndHz.
type CueConfig struct {
	StartHz    float64
	EndHz      float64
	DurationMs int
	Gain       float64
	Square     bool
}

var Audio AudioConfig
var Synth SynthConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   0.9,
	}

	Synth = SynthConfig{
		Cues: map[SoundID]CueConfig{
			SoundCountdown: {StartHz: 880, EndHz: 880, DurationMs: 120, Gain: 0.5, Square: true},
			SoundHit:       {StartHz: 220, EndHz: 70, DurationMs: 260, Gain: 0.7, Square: true},
			SoundCollect:   {StartHz: 660, EndHz: 1320, DurationMs: 160, Gain: 0.5},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.2,
		},
		// C major arpeggio phrase, looped.
		MusicNotes: []float64{
			523.25, 659.25, 783.99, 659.25,
			587.33, 698.46, 880.00, 698.46,
			523.25, 659.25, 783.99, 1046.50,
			783.99, 659.25, 587.33, 0,
		},
		MusicBeatMs: 220,
		MusicGain:   0.25,
	}
}
