package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/automoto/skydodge/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// All audio is synthesized at startup and rendered to 16-bit little-endian
// stereo PCM, the format ebiten's audio players consume directly.

const pcmBytesPerSample = 4

// AudioLoader synthesizes and caches cue and music PCM.
type AudioLoader struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	sfxCache map[config.SoundID][]byte
	music    []byte
}

// NewAudioLoader creates a loader that renders at the given sample rate.
func NewAudioLoader(sampleRate int) *AudioLoader {
	return &AudioLoader{
		rate:     beep.SampleRate(sampleRate),
		sfxCache: make(map[config.SoundID][]byte),
	}
}

// PreloadSFX renders every configured cue so the first play has no latency.
func (l *AudioLoader) PreloadSFX() error {
	for id := range config.Synth.Cues {
		if _, err := l.LoadSFX(id); err != nil {
			return err
		}
	}
	return nil
}

// LoadSFX returns the PCM for a cue, rendering it on first use.
func (l *AudioLoader) LoadSFX(id config.SoundID) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pcm, ok := l.sfxCache[id]; ok {
		return pcm, nil
	}

	cue, ok := config.Synth.Cues[id]
	if !ok {
		return nil, fmt.Errorf("no synth definition for sound %d", id)
	}

	pcm, err := RenderPCM(newCue(cue, l.rate))
	if err != nil {
		return nil, fmt.Errorf("failed to render sound %d: %w", id, err)
	}
	l.sfxCache[id] = pcm
	return pcm, nil
}

// LoadMusic returns the PCM for one pass of the background loop.
func (l *AudioLoader) LoadMusic() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.music != nil {
		return l.music, nil
	}

	pcm, err := RenderPCM(newMusic(config.Synth, l.rate))
	if err != nil {
		return nil, fmt.Errorf("failed to render music: %w", err)
	}
	l.music = pcm
	return pcm, nil
}

// RenderPCM drains a finite streamer into 16-bit little-endian stereo PCM.
func RenderPCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			var b [pcmBytesPerSample]byte
			binary.LittleEndian.PutUint16(b[0:], uint16(toInt16(frame[0])))
			binary.LittleEndian.PutUint16(b[2:], uint16(toInt16(frame[1])))
			out = append(out, b[:]...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// sweep is an oscillator whose frequency slides linearly over its duration.
type sweep struct {
	startHz, endHz float64
	square         bool
	phase          float64
	pos, total     int
	rate           beep.SampleRate
}

func newSweep(startHz, endHz float64, d time.Duration, square bool, rate beep.SampleRate) *sweep {
	return &sweep{
		startHz: startHz,
		endHz:   endHz,
		square:  square,
		total:   rate.N(d),
		rate:    rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		var val float64
		if s.square {
			// soften the square with a little sine so it is not too harsh
			if s.phase < 0.5 {
				val = 0.6
			} else {
				val = -0.6
			}
			val += 0.4 * math.Sin(2*math.Pi*s.phase)
		} else {
			val = math.Sin(2 * math.Pi * s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.pos) / float64(s.total)
		freq := s.startHz + (s.endHz-s.startHz)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a streamer.
type envelope struct {
	s               beep.Streamer
	pos             int
	attack, release int
	total           int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func newCue(c config.CueConfig, rate beep.SampleRate) beep.Streamer {
	d := time.Duration(c.DurationMs) * time.Millisecond
	osc := newSweep(c.StartHz, c.EndHz, d, c.Square, rate)
	shaped := newEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
	return withGain(shaped, c.Gain)
}

func newMusic(sc config.SynthConfig, rate beep.SampleRate) beep.Streamer {
	beat := time.Duration(sc.MusicBeatMs) * time.Millisecond

	lead := make([]beep.Streamer, 0, len(sc.MusicNotes))
	bass := make([]beep.Streamer, 0, len(sc.MusicNotes))
	for i, hz := range sc.MusicNotes {
		if hz <= 0 {
			lead = append(lead, beep.Silence(rate.N(beat)))
			bass = append(bass, beep.Silence(rate.N(beat)))
			continue
		}
		note := newEnvelope(newSweep(hz, hz, beat, false, rate), beat, 10*time.Millisecond, beat*2/3, rate)
		lead = append(lead, note)

		// bass holds the root of each bar an octave down
		root := sc.MusicNotes[i-i%4]
		if root <= 0 {
			root = hz
		}
		low := newEnvelope(newSweep(root/2, root/2, beat, true, rate), beat, 10*time.Millisecond, beat/3, rate)
		bass = append(bass, withGain(low, 0.35))
	}

	return withGain(beep.Mix(beep.Seq(lead...), beep.Seq(bass...)), sc.MusicGain)
}
