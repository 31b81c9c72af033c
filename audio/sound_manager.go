// Package audio synthesizes the game's sound cues through a beep mixer
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays one-shot cues on a shared mixer
// Every method is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Eat plays a short high blip
func (sm *SoundManager) Eat() {
	sm.play(func() beep.Streamer {
		sine, err := generators.SineTone(sampleRate, parameter.EatToneHz)
		if err != nil {
			return nil
		}
		return beep.Take(sampleRate.N(parameter.EatDuration), beep.StreamerFunc(envelope(sine, sampleRate.N(parameter.EatDuration))))
	})
}

// EnemySpawn plays a rising buzz
func (sm *SoundManager) EnemySpawn() {
	sm.play(func() beep.Streamer {
		return beep.Take(sampleRate.N(parameter.SpawnDuration),
			NewSweepGenerator(sampleRate, parameter.SpawnToneHz, parameter.SpawnToneHz*2, parameter.SpawnDuration))
	})
}

// GameOver plays a falling low buzz
func (sm *SoundManager) GameOver() {
	sm.play(func() beep.Streamer {
		return beep.Take(sampleRate.N(parameter.GameOverDuration),
			NewSweepGenerator(sampleRate, parameter.GameOverToneHz*2, parameter.GameOverToneHz, parameter.GameOverDuration))
	})
}

// Victory plays an ascending arpeggio
func (sm *SoundManager) Victory() {
	sm.play(func() beep.Streamer {
		return NewArpeggio(sampleRate, parameter.VictoryArpeggio[:], parameter.VictoryDuration)
	})
}

// play builds and queues a cue only when initialized
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := build()
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// noteDuration splits total evenly across n notes
func noteDuration(total time.Duration, n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return total / time.Duration(n)
}
