package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/serpent/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; attack and release overlap is clipped to the sustain point
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silenced instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// cue is one enveloped tone
func cue(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	release := time.Duration(float64(d) * parameter.CueReleaseRatio)
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.CueAttackDuration, release, rate)
}

// CreateEatSound is a short bright blip
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := cue(parameter.EatCueFreq, parameter.EatCueDuration, WaveSine, rate)
	return newVolume(s, cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateKillSound is a low saw growl over noise
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	growl := cue(parameter.KillCueFreq, parameter.KillCueDuration, WaveSaw, rate)
	noise := cue(0, parameter.KillCueDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(growl, 0.7), newVolume(noise, 0.3))
	return newVolume(mixed, cfg.EffectVolumes[SoundKill]*cfg.MasterVolume)
}

// CreateFeedSound is a short square click
func CreateFeedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := cue(parameter.FeedCueFreq, parameter.FeedCueDuration, WaveSquare, rate)
	return newVolume(s, cfg.EffectVolumes[SoundFeed]*cfg.MasterVolume)
}

// CreateSpawnSound is a rising two-note chime
func CreateSpawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := parameter.SpawnCueDuration / 2
	seq := beep.Seq(
		cue(parameter.SpawnCueFreq, half, WaveSine, rate),
		cue(parameter.SpawnCueFreq*1.5, half, WaveSine, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundSpawn]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundFeed:
		return CreateFeedSound(cfg)
	case SoundSpawn:
		return CreateSpawnSound(cfg)
	default:
		return nil
	}
}
