package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// requestEffect queues a visual effect; the EffectSystem materialises it
func requestEffect(w *engine.World, fx core.EffectType, pos vmath.Vec3F) {
	w.PushEvent(event.EventEffectRequest, &event.EffectRequestPayload{Type: fx, Pos: pos})
}

func requestSound(w *engine.World, snd core.SoundType, pos vmath.Vec3F) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Type: snd, Pos: pos})
}

// bigExplosion is the standard destruction feedback
func bigExplosion(w *engine.World, pos vmath.Vec3F) {
	requestEffect(w, core.EffectBigExplosion, pos)
	requestSound(w, core.SoundExplosion, pos)
}

// EffectSystem turns effect and sound requests into effect entities with a
// scheduled removal and forwards them to the presentation collaborator
type EffectSystem struct {
	world *engine.World

	statEffects *atomic.Int64
	statSounds  *atomic.Int64

	enabled bool
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{
		world:       world,
		statEffects: world.Resources.Status.Ints.Get("effect.spawned"),
		statSounds:  world.Resources.Status.Ints.Get("effect.sounds"),
	}
	s.Init()
	return s
}

func (s *EffectSystem) Init() {
	s.statEffects.Store(0)
	s.statSounds.Store(0)
	s.enabled = true
}

func (s *EffectSystem) Name() string { return "effect" }

func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEffectRequest,
		event.EventSoundRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *EffectSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
		return
	}
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventEffectRequest:
		if p, ok := ev.Payload.(*event.EffectRequestPayload); ok {
			spawnEffect(s.world, p.Type, p.Pos)
			s.world.Resources.Effects.PlayEffect(p.Type, p.Pos)
			s.statEffects.Add(1)
		}
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.world.Resources.Effects.PlaySound(p.Type, p.Pos)
			s.statSounds.Add(1)
		}
	}
}

// Update is event driven only
func (s *EffectSystem) Update() {}
