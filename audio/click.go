// Package audio plays the optional tab-switch click. Audio is best effort: when the
// output device cannot be opened the application runs silently.
package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/cvterm/constants"
)

// envelope applies a linear attack and release to a streamer of known length
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}

func (e *envelope) gain(pos int) float64 {
	switch {
	case e.attack > 0 && pos < e.attack:
		return float64(pos) / float64(e.attack)
	case e.release > 0 && pos >= e.total-e.release:
		return math.Max(0, float64(e.total-pos)/float64(e.release))
	}
	return 1
}

// NewClick returns a short enveloped sine blip at sr
func NewClick(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, constants.ClickFrequency)
	if err != nil {
		return nil, err
	}

	total := sr.N(constants.ClickSoundDuration)
	env := &envelope{
		s:       beep.Take(total, tone),
		total:   total,
		attack:  sr.N(constants.ClickSoundAttack),
		release: sr.N(constants.ClickSoundRelease),
	}
	return &effects.Volume{
		Streamer: env,
		Base:     2,
		Volume:   math.Log2(constants.ClickVolume),
	}, nil
}
