package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond

	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100
)

// Click Sound
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
	ClickFrequency     = 1200.0
	ClickVolume        = 0.25
)
