package audio

import (
	"github.com/gopxl/beep"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/parameter"
)

// CreateExplosionSound generates a noise burst over a low rumble
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.ExplosionSoundDuration, WaveNoise, rate)
	rumble := NewOscillator(parameter.ExplosionRumbleFreq, parameter.ExplosionSoundDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5))
	return newDecay(mixed, parameter.ExplosionDecayRate, rate)
}

// CreateImpactSound generates a short thud for rounds hitting the ground
func CreateImpactSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.ImpactSoundDuration, WaveNoise, rate)
	return NewEnvelope(noise, parameter.ImpactSoundDuration, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
}

// CreateShotSound generates a square blip, lower for enemy guns
func CreateShotSound(rate beep.SampleRate, freq float64) beep.Streamer {
	osc := NewOscillator(freq, parameter.ShotSoundDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
}

// CreateMissileSound generates a falling whistle
func CreateMissileSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.MissileStartFreq, parameter.MissileEndFreq, parameter.MissileSoundDuration, WaveSine, rate)
	return NewEnvelope(osc, parameter.MissileSoundDuration, parameter.MissileSoundAttack, parameter.MissileSoundRelease, rate)
}

// CreateScreamSound generates a descending saw wail
func CreateScreamSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.ScreamStartFreq, parameter.ScreamEndFreq, parameter.ScreamSoundDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.ScreamSoundDuration, parameter.ScreamSoundAttack, parameter.ScreamSoundRelease, rate)
}

// CreateBoardSound generates a short ding
func CreateBoardSound(rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(880.0, parameter.BoardSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.BoardSoundDuration, parameter.BoardSoundAttack, parameter.BoardSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, parameter.BoardSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.BoardSoundDuration, parameter.BoardSoundAttack, parameter.BoardSoundOvertoneRelease, rate)

	return beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
}

// CreateUnloadSound generates a two-note chime
func CreateUnloadSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, parameter.UnloadSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.UnloadSoundNote1Duration, parameter.UnloadSoundAttack, parameter.UnloadSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.UnloadSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.UnloadSoundNote2Duration, parameter.UnloadSoundAttack, parameter.UnloadSoundNote2Release, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// GetSoundEffect returns the streamer for a sound at the given master volume
// Unknown sounds return nil
func GetSoundEffect(snd core.SoundType, master float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch snd {
	case core.SoundExplosion:
		s = CreateExplosionSound(rate)
	case core.SoundGroundImpact:
		s = CreateImpactSound(rate)
	case core.SoundShot:
		s = CreateShotSound(rate, parameter.ShotFreq)
	case core.SoundEnemyShot:
		s = CreateShotSound(rate, parameter.EnemyShotFreq)
	case core.SoundMissile:
		s = CreateMissileSound(rate)
	case core.SoundScream:
		s = CreateScreamSound(rate)
	case core.SoundBoard:
		s = CreateBoardSound(rate)
	case core.SoundUnload:
		s = CreateUnloadSound(rate)
	default:
		return nil
	}
	return newVolume(s, parameter.SoundVolumes[snd]*master)
}
