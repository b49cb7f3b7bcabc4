package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundKill                   // Rival killed
	SoundFeed                   // Cannibal bite
	SoundSpawn                  // Respawn after death
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"eat", "kill", "feed", "spawn"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ErrAudioDisabled is returned by Initialize when configuration turned audio off
var ErrAudioDisabled = errors.New("audio disabled by configuration")
