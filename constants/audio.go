package constants

import "time"

// Audio engine
const (
	// SampleRate for all generated cues
	SampleRate = 44100

	// SpeakerBuffer is the speaker latency buffer
	SpeakerBuffer = 100 * time.Millisecond

	// DefaultVolume is the master volume in [0,1]
	DefaultVolume = 0.6
)

// Eat sound timing (two-note chime)
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 140 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 100 * time.Millisecond
)

// Game over sound timing (falling buzz)
const (
	GameOverSoundStepDuration = 120 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundRelease      = 80 * time.Millisecond
)

// Turn tick timing (short click)
const (
	TurnSoundDuration = 15 * time.Millisecond
	TurnSoundAttack   = 2 * time.Millisecond
	TurnSoundRelease  = 10 * time.Millisecond
)
