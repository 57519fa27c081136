package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a UI feedback sound
type Cue uint8

const (
	// CueSelect is the short blip on selection change
	CueSelect Cue = iota

	// CueEngage is the two-note confirmation when a selection is
	// engaged
	CueEngage

	// CueError is the buzz for an engage with nothing selected
	CueError
)

const sampleRate = beep.SampleRate(44100)

// Engine plays short generated cues through the speaker. All failures
// degrade to silence; the map never depends on audio.
type Engine struct {
	ready atomic.Bool
	muted atomic.Bool
}

// NewEngine initializes the speaker. The error is informational; the
// returned engine is always usable (silently, on failure).
func NewEngine() (*Engine, error) {
	e := &Engine{}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*20)); err != nil {
		return e, fmt.Errorf("speaker init: %w", err)
	}
	e.ready.Store(true)
	return e, nil
}

// SetMuted toggles cue playback
func (e *Engine) SetMuted(m bool) {
	e.muted.Store(m)
}

// Play fires a cue without blocking the frame loop
func (e *Engine) Play(c Cue) {
	if !e.ready.Load() || e.muted.Load() {
		return
	}
	speaker.Play(cueStreamer(c))
}

func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueEngage:
		n1 := tone(660, 70*time.Millisecond, WaveSine, 0.5)
		n2 := tone(990, 110*time.Millisecond, WaveSine, 0.5)
		return beep.Seq(n1, n2)
	case CueError:
		return tone(110, 120*time.Millisecond, WaveSquare, 0.3)
	default:
		return tone(880, 60*time.Millisecond, WaveSine, 0.4)
	}
}

func tone(freq float64, d time.Duration, wave WaveType, vol float64) beep.Streamer {
	osc := NewOscillator(freq, d, wave, sampleRate)
	env := NewEnvelope(osc, d, 5*time.Millisecond, 25*time.Millisecond, sampleRate)
	return newVolume(env, vol)
}
