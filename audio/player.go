package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// Player plays game cues through the system speaker
// An uninitialized or muted player silently drops every cue, so drivers never branch on audio availability
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [soundTypeCount]int
}

// NewPlayer creates a player at the given master volume in [0,1]
func NewPlayer(volume float64) *Player {
	return &Player{
		rate:   beep.SampleRate(constants.SampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker; on failure the player stays silent
func (p *Player) Init(enabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !enabled {
		return ErrAudioDisabled
	}
	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker ready at %d Hz, volume %.2f", p.rate, p.volume)
	return nil
}

// Play queues a cue; no-op when silent
func (p *Player) Play(t SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Effect(t, p.rate, p.volume)
	if s == nil {
		return
	}
	p.played[t]++

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Active reports whether cues reach the speaker
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}

// Played returns how many times a cue was sent to the speaker
func (p *Player) Played(t SoundType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return p.played[t]
}

// Close drops pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
