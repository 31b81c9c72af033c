package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue shapes
const (
	EatToneHz        = 880
	EatDuration      = 60 * time.Millisecond
	SpawnToneHz      = 220
	SpawnDuration    = 250 * time.Millisecond
	GameOverToneHz   = 110
	GameOverDuration = 400 * time.Millisecond
	VictoryDuration  = 600 * time.Millisecond
)

// VictoryArpeggio is played note by note on victory
var VictoryArpeggio = [...]float64{523.25, 659.25, 783.99, 1046.5}
