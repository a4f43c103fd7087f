package audio

import (
	"io"
	"log"
	"sync"
	"time"

	"snake-arena/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// SoundManager owns the speaker and mixes cues into it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[Cue]int
	logger      *log.Logger
}

func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
		logger: logger,
	}
}

// Initialize opens the speaker. A failure leaves the manager usable but
// silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		sm.logger.Printf("audio disabled: %v", err)
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted drops cues without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	sm.played[c]++
	speaker.Lock()
	sm.mixer.Add(BuildCue(c, sampleRate))
	speaker.Unlock()
}

// HandleOutcome plays every cue a tick produced
func (sm *SoundManager) HandleOutcome(out game.TickOutcome) {
	for _, c := range CuesFor(out) {
		sm.Play(c)
	}
}

// Played returns how many times c reached the speaker
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}
