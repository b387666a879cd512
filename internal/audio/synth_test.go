package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never finished")
	return nil
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, newTone(440, 440, 100*time.Millisecond, WaveSine, rate))

	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("got %d samples, expected %d", len(samples), rate.N(100*time.Millisecond))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d invalid: %v", i, s)
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 60 * time.Millisecond
	samples := drain(t, newEnvelope(newTone(1000, 1000, d, WaveSquare, rate), d, 5*time.Millisecond, 20*time.Millisecond, rate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at attack start", samples[0][0])
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("last sample = %v, expected near silence after release", last)
	}
	if p := peak(samples); p < 0.99 {
		t.Errorf("peak = %v, expected full level in the sustain", p)
	}
}

func TestCueStreams(t *testing.T) {
	for _, cue := range []core.Cue{core.CueJump, core.CueCoin, core.CueGameOver, core.CueStart} {
		t.Run(string(cue), func(t *testing.T) {
			s := cueStream(cue, sampleRate)
			if s == nil {
				t.Fatal("expected a stream")
			}
			samples := drain(t, s)
			if len(samples) == 0 {
				t.Fatal("cue produced no samples")
			}
			if d := sampleRate.D(len(samples)); d > time.Second {
				t.Errorf("cue lasts %v, expected under a second", d)
			}
			if p := peak(samples); p < 0.5 || p > 1 {
				t.Errorf("peak = %v, expected an audible signal within range", p)
			}
		})
	}

	if cueStream(core.Cue("bogus"), sampleRate) != nil {
		t.Error("unknown cue should have no stream")
	}
}

func TestWithVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond

	half := drain(t, withVolume(newTone(440, 440, d, WaveSquare, rate), 0.5))
	if p := peak(half); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("peak at half volume = %v, expected 0.5", p)
	}

	silent := drain(t, withVolume(newTone(440, 440, d, WaveSquare, rate), 0))
	if p := peak(silent); p != 0 {
		t.Errorf("peak at zero volume = %v, expected silence", p)
	}
}
