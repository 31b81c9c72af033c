package parameter

import "time"

// Loop Timing
const (
	// TickRate is the base simulation rate in ticks per second
	TickRate = 10

	// MaxTickRate caps the speed ramp
	MaxTickRate = 30

	// RestartDelay is how long the end-of-run banner stays up before an automatic restart
	RestartDelay = 2 * time.Second

	// CommandQueueSize is the buffered capacity between the input poller and the loop
	CommandQueueSize = 64
)

// Logging
const (
	// LogDir holds the rotating debug log
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "vi-snake.log"

	// LogMaxSizeMB rotates the log past this size
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept
	LogMaxBackups = 3

	// LogMaxAgeDays drops rotated files older than this
	LogMaxAgeDays = 7
)
