package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain streams s to exhaustion and returns the sample count and peak
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("sound did not finish")
	return 0, 0
}

func TestGetSoundEffectCoversEverySound(t *testing.T) {
	for snd := core.SoundType(0); snd < core.SoundTypeCount; snd++ {
		s := GetSoundEffect(snd, 1, testRate)
		require.NotNil(t, s, "sound %d", snd)

		n, peak := drain(t, s)
		assert.Positive(t, n, "sound %d", snd)
		assert.Less(t, n, testRate.N(parameter.ExplosionSoundDuration)+1, "sound %d", snd)
		assert.Positive(t, peak, "sound %d", snd)
	}
}

func TestGetSoundEffectUnknown(t *testing.T) {
	assert.Nil(t, GetSoundEffect(core.SoundTypeCount, 1, testRate))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, GetSoundEffect(core.SoundShot, 0, testRate))
	assert.Zero(t, peak)
}

func TestShotLength(t *testing.T) {
	n, _ := drain(t, CreateShotSound(testRate, parameter.ShotFreq))
	assert.Equal(t, testRate.N(parameter.ShotSoundDuration), n)
}

func TestEnvelopeRamps(t *testing.T) {
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	attack := testRate.N(10 * time.Millisecond)
	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.5, buf[attack/2][0], 0.01)
	assert.Equal(t, 1.0, buf[n/2][0])
	assert.Less(t, buf[n-1][0], 0.01)
}

func TestRotorGenerator(t *testing.T) {
	g := NewRotorGenerator(testRate)

	g.SetLevel(2)
	assert.Equal(t, 1.0, g.Level())
	g.SetLevel(-1)
	assert.Equal(t, 0.0, g.Level())

	buf := make([][2]float64, 4096)
	n, ok := g.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)

	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, parameter.RotorHumAmplitude*1.4)
}
