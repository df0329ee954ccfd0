package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// TankSystem drives tanks along X toward the helicopter
// Tanks hold a dead zone around the target and never cross into the strip
// before the river; they halt for the crash sequence
type TankSystem struct {
	world *engine.World

	statCount *atomic.Int64

	suspended bool
	enabled   bool
}

func NewTankSystem(world *engine.World) engine.System {
	s := &TankSystem{
		world:     world,
		statCount: world.Resources.Status.Ints.Get("tank.count"),
	}
	s.Init()
	return s
}

func (s *TankSystem) Init() {
	s.statCount.Store(0)
	s.suspended = false
	s.enabled = true
}

func (s *TankSystem) Name() string {
	return "tank"
}

func (s *TankSystem) Priority() int {
	return parameter.PriorityTank
}

func (s *TankSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChopperCrashed,
		event.EventChopperRecovered,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *TankSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	case event.EventChopperCrashed:
		s.suspended = true
	case event.EventChopperRecovered:
		s.suspended = false
	}
}

func (s *TankSystem) Update() {
	entities := s.world.Components.Tank.GetAllEntities()
	s.statCount.Store(int64(len(entities)))

	chopper := s.world.Resources.Chopper
	if !s.enabled || s.suspended || !chopper.Alive {
		return
	}

	dt := s.world.Resources.Time.Delta
	cfg := s.world.Resources.Config.Tank
	limit := s.world.Resources.Config.World.LeftRiverBoundary - cfg.Territory

	for _, e := range entities {
		if !s.world.Alive(e) {
			continue
		}
		tank, ok := s.world.Components.Tank.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		tank.Heading = 0
		dist := k.Pos.X - chopper.Pos.X
		if d := vmath.Abs(dist); d > cfg.MinDistance && d < cfg.MaxDistance {
			switch {
			case dist < 0 && k.Pos.X < limit:
				tank.Heading = 1
			case dist > 0:
				tank.Heading = -1
			}
		}
		k.Pos.X += tank.Heading * cfg.Speed * dt

		s.world.Components.Tank.SetComponent(e, tank)
		s.world.Components.Kinetic.SetComponent(e, k)
	}
}
