package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed one-shot sounds
	AudioMaxVoices = 24
)

// Explosion Sound
const (
	ExplosionSoundDuration = 900 * time.Millisecond
	ExplosionDecayRate     = 5.0  // Exponential decay per second
	ExplosionRumbleFreq    = 55.0 // Hz
)

// Ground Impact Sound
const (
	ImpactSoundDuration = 120 * time.Millisecond
	ImpactSoundAttack   = 2 * time.Millisecond
	ImpactSoundRelease  = 90 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
	ShotFreq          = 420.0
	EnemyShotFreq     = 220.0
)

// Missile Sound
const (
	MissileSoundDuration = 700 * time.Millisecond
	MissileSoundAttack   = 50 * time.Millisecond
	MissileSoundRelease  = 300 * time.Millisecond
	MissileStartFreq     = 900.0
	MissileEndFreq       = 250.0
)

// Scream Sound
const (
	ScreamSoundDuration = 500 * time.Millisecond
	ScreamSoundAttack   = 20 * time.Millisecond
	ScreamSoundRelease  = 250 * time.Millisecond
	ScreamStartFreq     = 1100.0
	ScreamEndFreq       = 500.0
)

// Board Sound
const (
	BoardSoundDuration           = 400 * time.Millisecond
	BoardSoundAttack             = 5 * time.Millisecond
	BoardSoundFundamentalRelease = 350 * time.Millisecond
	BoardSoundOvertoneRelease    = 150 * time.Millisecond
)

// Unload Sound
const (
	UnloadSoundNote1Duration = 80 * time.Millisecond
	UnloadSoundNote2Duration = 240 * time.Millisecond
	UnloadSoundAttack        = 5 * time.Millisecond
	UnloadSoundNote1Release  = 40 * time.Millisecond
	UnloadSoundNote2Release  = 180 * time.Millisecond
)

// Rotor hum
const (
	// RotorHumBaseFreq is the blade pass frequency at the configured idle speed
	RotorHumBaseFreq  = 18.0
	RotorHumMaxFreq   = 45.0
	RotorHumAmplitude = 0.12
)

// Per sound mix levels, scaled by the master volume
var SoundVolumes = [...]float64{
	0.9,  // Explosion
	0.35, // GroundImpact
	0.3,  // Shot
	0.3,  // EnemyShot
	0.5,  // Missile
	0.45, // Scream
	0.4,  // Board
	0.4,  // Unload
}
