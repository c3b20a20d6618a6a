package audio

import "errors"

// SoundType identifies a game cue
type SoundType int

const (
	SoundEat      SoundType = iota // Food consumed
	SoundGameOver                  // Collision
	SoundTurn                      // Heading changed
	soundTypeCount
)

// String returns the cue name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	case SoundTurn:
		return "turn"
	default:
		return "unknown"
	}
}

// ErrAudioDisabled is returned by Init when sound is turned off in config
var ErrAudioDisabled = errors.New("audio disabled")
