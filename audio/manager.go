package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// CueManager owns the speaker and mixes cues into it
// All methods are safe without a working audio device; cues are then dropped
type CueManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      [cueCount]int
}

// NewCueManager creates a manager at volume in [0,1]
func NewCueManager(volume float64) *CueManager {
	return &CueManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}

// Initialize opens the speaker; a second call is a no-op
func (m *CueManager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferTime)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences pending cues
func (m *CueManager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// SetVolume changes the volume of subsequent cues
func (m *CueManager) SetVolume(v float64) {
	m.mu.Lock()
	m.volume = clampVolume(v)
	m.mu.Unlock()
}

// SetMuted suppresses cues without closing the speaker
func (m *CueManager) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Play queues cue; it reports whether the cue reached the mixer
func (m *CueManager) Play(cue Cue) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted || m.volume == 0 {
		return false
	}
	s := NewCueStreamer(cue, m.volume, sampleRate)
	if s == nil {
		return false
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	m.played[cue]++
	return true
}

// Played returns how many times cue reached the mixer
func (m *CueManager) Played(cue Cue) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return m.played[cue]
}
