package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0,1]
	AudioDefaultVolume = 0.5
)

// Cue shapes
const (
	EatCueFreq        = 880.0
	EatCueDuration    = 60 * time.Millisecond
	KillCueFreq       = 110.0
	KillCueDuration   = 250 * time.Millisecond
	FeedCueFreq       = 440.0
	FeedCueDuration   = 40 * time.Millisecond
	SpawnCueFreq      = 660.0
	SpawnCueDuration  = 120 * time.Millisecond
	CueAttackDuration = 5 * time.Millisecond
	CueReleaseRatio   = 0.4
)
