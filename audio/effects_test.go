package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns the samples produced and the peak level
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := buf[j][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never drained")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	d := 60 * time.Millisecond
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, d, wave, testRate))
		if n != testRate.N(d) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, testRate.N(d), n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: expected unity peak, got %f", wave, peak)
		}
	}
}

func TestSquareWaveLevels(t *testing.T) {
	osc := NewOscillator(441, 10*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 100)
	osc.Stream(buf)
	// One period is 100 samples: first half high, second half low
	if buf[0][0] != 1 || buf[49][0] != 1 {
		t.Errorf("Expected high first half, got %f and %f", buf[0][0], buf[49][0])
	}
	if buf[51][0] != -1 || buf[99][0] != -1 {
		t.Errorf("Expected low second half, got %f and %f", buf[51][0], buf[99][0])
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant 1.0
	env := NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	mid := n / 2
	if buf[mid][0] != 1 {
		t.Errorf("Expected full level in sustain, got %f", buf[mid][0])
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("Expected near-silent last sample, got %f", last)
	}
}

func TestSilentVolume(t *testing.T) {
	s := newVolume(NewOscillator(440, 20*time.Millisecond, WaveSine, testRate), 0)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

func TestSoundEffectsFinish(t *testing.T) {
	cfg := DefaultAudioConfig()
	for _, st := range []SoundType{SoundEat, SoundFeed, SoundSpawn} {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %s", st)
		}
		n, _ := drain(t, s)
		if n == 0 {
			t.Errorf("Expected samples for %s", st)
		}
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundKill.String() != "kill" {
		t.Errorf("Expected kill, got %s", SoundKill.String())
	}
	if SoundType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", SoundType(99).String())
	}
}
