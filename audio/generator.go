package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ray-caster/parameter"
)

// BumpGenerator generates a low thud with a fast attack and exponential decay
type BumpGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

// NewBumpGenerator creates a bump generator that fades out over length
func NewBumpGenerator(sr beep.SampleRate, freq float64, length time.Duration) *BumpGenerator {
	secs := length.Seconds()
	if secs <= 0 {
		secs = parameter.BumpDuration.Seconds()
	}
	return &BumpGenerator{
		sr:    sr,
		freq:  freq,
		decay: 5 / secs, // ~-43 dB at the end of the tone
	}
}

func (g *BumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack avoids a click at onset
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*g.decay)

		// Fundamental plus a sub-octave for weight
		sample := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(math.Pi*g.freq*t)
		sample *= envelope * parameter.BumpVolume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BumpGenerator) Err() error {
	return nil
}
