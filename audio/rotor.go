package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/eniklas/nachtmission/parameter"
)

// RotorGenerator is an endless blade hum whose pitch follows the rotor speed
type RotorGenerator struct {
	sr    beep.SampleRate
	phase float64

	// Normalized speed in [0, 1] stored as float64 bits
	level atomic.Uint64
}

// NewRotorGenerator creates a silent hum at idle pitch
func NewRotorGenerator(sr beep.SampleRate) *RotorGenerator {
	return &RotorGenerator{sr: sr}
}

// SetLevel sets the normalized rotor speed, 0 = idle, 1 = full
func (g *RotorGenerator) SetLevel(level float64) {
	g.level.Store(math.Float64bits(math.Max(0, math.Min(1, level))))
}

// Level returns the normalized rotor speed
func (g *RotorGenerator) Level() float64 {
	return math.Float64frombits(g.level.Load())
}

func (g *RotorGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	level := g.Level()
	freq := parameter.RotorHumBaseFreq + (parameter.RotorHumMaxFreq-parameter.RotorHumBaseFreq)*level
	amp := parameter.RotorHumAmplitude * (0.3 + 0.7*level)

	for i := range samples {
		// Blade chop: a sine fundamental with a sharp second harmonic
		v := math.Sin(2*math.Pi*g.phase) + 0.4*math.Sin(4*math.Pi*g.phase)
		sample := amp * v

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
	}
	return len(samples), true
}

func (g *RotorGenerator) Err() error {
	return nil
}
