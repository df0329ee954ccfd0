package engine

import (
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/vmath"
)

// EffectPlayer is the presentation collaborator for fire-and-forget effects
// Implementations must not block the tick
type EffectPlayer interface {
	PlayEffect(fx core.EffectType, pos vmath.Vec3F)
	PlaySound(snd core.SoundType, pos vmath.Vec3F)
}

// ScoreEvent is what the score/UI collaborator receives
type ScoreEvent struct {
	Type     event.EventType
	Counters event.Counters
	Pos      vmath.Vec3F
	Outcome  core.Outcome // Set for EventGameOver
}

// ScoreListener consumes score-relevant events
type ScoreListener interface {
	OnScoreEvent(ev ScoreEvent)
}

// NopEffects discards every request
type NopEffects struct{}

func (NopEffects) PlayEffect(core.EffectType, vmath.Vec3F) {}
func (NopEffects) PlaySound(core.SoundType, vmath.Vec3F)   {}

// NopListener discards every score event
type NopListener struct{}

func (NopListener) OnScoreEvent(ScoreEvent) {}

// MultiListener fans a score event out to several listeners in order
type MultiListener []ScoreListener

func (m MultiListener) OnScoreEvent(ev ScoreEvent) {
	for _, l := range m {
		l.OnScoreEvent(ev)
	}
}

// MultiEffects fans effect requests out to several players in order
type MultiEffects []EffectPlayer

func (m MultiEffects) PlayEffect(fx core.EffectType, pos vmath.Vec3F) {
	for _, p := range m {
		p.PlayEffect(fx, pos)
	}
}

func (m MultiEffects) PlaySound(snd core.SoundType, pos vmath.Vec3F) {
	for _, p := range m {
		p.PlaySound(snd, pos)
	}
}
