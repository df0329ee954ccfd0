package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// Player synthesizes the simulation's sound requests through the speaker
// Visual effects are left to the renderer
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rotor       *RotorGenerator
	rotorCtrl   *beep.Ctrl
	rate        beep.SampleRate
	volume      float64
	initialized bool

	muted   atomic.Bool
	played  atomic.Int64
	dropped atomic.Int64

	log zerolog.Logger
}

// NewPlayer creates a player; nothing reaches the speaker until Initialize
func NewPlayer(cfg config.Audio, log zerolog.Logger) *Player {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	p := &Player{
		mixer:  &beep.Mixer{},
		rotor:  NewRotorGenerator(rate),
		rate:   rate,
		volume: cfg.Volume,
		log:    log.With().Str("component", "audio").Logger(),
	}
	p.muted.Store(!cfg.Enabled)
	p.rotorCtrl = &beep.Ctrl{Streamer: p.rotor, Paused: !cfg.Enabled}
	p.mixer.Add(p.rotorCtrl)
	return p
}

// Initialize opens the speaker and starts mixing
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info().Int("sample_rate", int(p.rate)).Msg("audio started")
	return nil
}

// Close silences the mixer
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
	p.log.Info().Int64("played", p.played.Load()).Int64("dropped", p.dropped.Load()).Msg("audio stopped")
}

// withMixer serializes mixer access against the speaker goroutine
func (p *Player) withMixer(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (p *Player) PlayEffect(core.EffectType, vmath.Vec3F) {}

// PlaySound queues a one-shot sound, dropping it when too many are playing
func (p *Player) PlaySound(snd core.SoundType, _ vmath.Vec3F) {
	if p.muted.Load() {
		return
	}
	s := GetSoundEffect(snd, p.volume, p.rate)
	if s == nil {
		return
	}

	p.withMixer(func() {
		// The rotor hum is always one of the streamers
		if p.mixer.Len() > parameter.AudioMaxVoices {
			p.dropped.Add(1)
			return
		}
		p.mixer.Add(s)
		p.played.Add(1)
	})
}

// SetRotorSpeed maps a rotor speed within [minSpeed, maxSpeed] onto the hum pitch
func (p *Player) SetRotorSpeed(speed, minSpeed, maxSpeed float64) {
	level := 0.0
	if maxSpeed > minSpeed {
		level = (speed - minSpeed) / (maxSpeed - minSpeed)
	}
	p.rotor.SetLevel(level)
}

// ToggleMute flips mute, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	on := p.muted.Load()
	p.muted.Store(!on)
	p.withMixer(func() { p.rotorCtrl.Paused = !on })
	return on
}

// Muted reports whether sounds are suppressed
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Voices returns the number of active streamers including the rotor hum
func (p *Player) Voices() int {
	n := 0
	p.withMixer(func() { n = p.mixer.Len() })
	return n
}

// Played returns sounds queued since creation
func (p *Player) Played() int64 {
	return p.played.Load()
}
