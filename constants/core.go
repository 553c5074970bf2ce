package constants

import "time"

// Event Loop Timing
const (
	// TickInterval is the default period of the ticker producer
	TickInterval = 200 * time.Millisecond

	// InputPollTimeout bounds how long a backend read blocks before checking for stop
	InputPollTimeout = 100 * time.Millisecond
)

// Keys
const (
	// QuitRune ends the application
	QuitRune = 'q'
)

// Logging
const (
	// DefaultLogPath is where -debug writes when -log is not given
	DefaultLogPath = "logs/cvterm.log"
)
