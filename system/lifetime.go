package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
)

// LifetimeSystem runs scheduled removals keyed to gameplay time
// Effects and other one-shot entities carry a TimerComponent instead of a suspended task
type LifetimeSystem struct {
	world *engine.World

	enabled bool
}

func NewLifetimeSystem(world *engine.World) engine.System {
	s := &LifetimeSystem{world: world}
	s.Init()
	return s
}

func (s *LifetimeSystem) Init() {
	s.enabled = true
}

func (s *LifetimeSystem) Name() string { return "lifetime" }

func (s *LifetimeSystem) Priority() int { return parameter.PriorityLifetime }

func (s *LifetimeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *LifetimeSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}
}

func (s *LifetimeSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.Delta
	var toDestroy []core.Entity

	for _, entity := range s.world.Components.Timer.GetAllEntities() {
		timer, ok := s.world.Components.Timer.GetComponent(entity)
		if !ok || !s.world.Alive(entity) {
			continue
		}

		timer.Remaining -= dt
		if timer.Remaining <= 0 {
			toDestroy = append(toDestroy, entity)
			continue
		}
		s.world.Components.Timer.SetComponent(entity, component.TimerComponent{Remaining: timer.Remaining})
	}

	for _, e := range toDestroy {
		s.world.DestroyEntity(e)
	}
}
