package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ray-caster/parameter"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the bump tone through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastBump    time.Time
	cooldown    time.Duration
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:    &beep.Mixer{},
		cooldown: parameter.BumpCooldown,
	}
}

// Initialize sets up the speaker, a no-op when already initialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears queued sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Speaker has no Close; an empty mixer plays silence
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted suppresses all further sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayBump queues a short thud, at most once per cooldown
// Returns true if a tone was queued
func (sm *SoundManager) PlayBump() bool {
	return sm.playBumpAt(time.Now())
}

func (sm *SoundManager) playBumpAt(now time.Time) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if !sm.lastBump.IsZero() && now.Sub(sm.lastBump) < sm.cooldown {
		return false
	}
	sm.lastBump = now

	streamer := beep.Take(sampleRate.N(parameter.BumpDuration),
		NewBumpGenerator(sampleRate, parameter.BumpFrequency, parameter.BumpDuration))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}
