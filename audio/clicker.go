package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cvterm/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Output is the device the mixer plays into
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
}

// speakerOutput plays through the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

// Clicker plays the tab-switch click through a shared mixer
type Clicker struct {
	mu          sync.Mutex
	out         Output
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewClicker creates a clicker for the system speaker
func NewClicker() *Clicker {
	return NewClickerWith(speakerOutput{})
}

// NewClickerWith creates a clicker playing into out
func NewClickerWith(out Output) *Clicker {
	return &Clicker{
		out:   out,
		mixer: &beep.Mixer{},
		rate:  sampleRate,
	}
}

// Initialize opens the output device and starts the mixer
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := c.out.Init(c.rate, c.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	c.out.Play(c.mixer)
	c.initialized = true
	return nil
}

// Click queues one click; a no-op until Initialize succeeds
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	s, err := NewClick(c.rate)
	if err != nil {
		slog.Debug("click synthesis failed", "rate", int(c.rate), "error", err)
		return
	}
	// Speaker callbacks read the mixer concurrently
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Pending returns the number of clicks still playing
func (c *Clicker) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return c.mixer.Len()
}

// Cleanup drops queued sounds; further clicks are ignored
func (c *Clicker) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
