// Package audio synthesizes and plays the game's sound cues through the
// system speaker. Cues are generated on the fly, so no asset files ship
// with the binary.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator whose frequency slides linearly from
// `from` to `to` over its duration.
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
}

// newTone creates a tone. Equal from and to give a plain note.
func newTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{from: from, to: to, wave: wave, rate: rate, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = -1
			if t.phase < 0.5 {
				v = 1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.total)
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release samples so
// notes start and stop without clicks.
type envelope struct {
	streamer beep.Streamer
	attack   int
	release  int
	total    int
	pos      int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if e.attack > 0 && e.pos < e.attack {
			g = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			g = math.Max(float64(left), 0) / float64(e.release)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note is a shaped tone.
func note(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newTone(from, to, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// cueStream builds the waveform for a cue. Unknown cues return nil.
func cueStream(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueJump:
		// Rising chirp
		return note(320, 660, 120*time.Millisecond, WaveSquare, rate)
	case core.CueCoin:
		// B5 then E6
		return beep.Seq(
			note(987.77, 987.77, 60*time.Millisecond, WaveSquare, rate),
			note(1318.51, 1318.51, 140*time.Millisecond, WaveSquare, rate),
		)
	case core.CueGameOver:
		return note(440, 110, 600*time.Millisecond, WaveSaw, rate)
	case core.CueStart:
		// C5 E5 G5
		return beep.Seq(
			note(523.25, 523.25, 90*time.Millisecond, WaveSine, rate),
			note(659.25, 659.25, 90*time.Millisecond, WaveSine, rate),
			note(783.99, 783.99, 160*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
}

// withVolume scales a stream by a linear volume in [0, 1].
// effects.Volume works in log space, so zero maps to silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
