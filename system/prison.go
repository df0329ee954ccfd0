package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// PrisonSystem releases captives from damaged prisons and flattens prison
// colliders while the helicopter is crashing so the wreck lands on the roof
type PrisonSystem struct {
	world *engine.World

	statReleased *atomic.Int64
	statDamaged  *atomic.Int64

	enabled bool
}

func NewPrisonSystem(world *engine.World) engine.System {
	s := &PrisonSystem{
		world:        world,
		statReleased: world.Resources.Status.Ints.Get("prison.released"),
		statDamaged:  world.Resources.Status.Ints.Get("prison.damaged"),
	}
	s.Init()
	return s
}

func (s *PrisonSystem) Init() {
	s.statReleased.Store(0)
	s.statDamaged.Store(0)
	s.enabled = true
}

func (s *PrisonSystem) Name() string { return "prison" }

func (s *PrisonSystem) Priority() int { return parameter.PriorityPrison }

func (s *PrisonSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChopperCrashed,
		event.EventChopperRecovered,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *PrisonSystem) HandleEvent(ev event.GameEvent) {
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
		s.resize(parameter.PrisonCrashHalfY)
	case event.EventChopperRecovered:
		s.resize(parameter.PrisonHalfY)
	}
}

// resize swaps every prison collider height
func (s *PrisonSystem) resize(halfY float64) {
	for _, e := range s.world.Components.Prison.GetAllEntities() {
		if !s.world.Alive(e) {
			continue
		}
		col, ok := s.world.Components.Collider.GetComponent(e)
		if !ok {
			continue
		}
		col.Boxes = prisonBoxes(halfY)
		s.world.Components.Collider.SetComponent(e, col)
	}
}

func (s *PrisonSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.Delta
	interval := s.world.Resources.Config.Prisoner.EmergeInterval
	damaged := 0

	for _, e := range s.world.Components.Prison.GetAllEntities() {
		if !s.world.Alive(e) {
			continue
		}
		p, ok := s.world.Components.Prison.GetComponent(e)
		if !ok || !p.Damaged {
			continue
		}
		damaged++
		if p.Captives <= 0 {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		if p.EmergeTimer >= interval {
			p.EmergeTimer = 0
			p.Captives--
			s.release(k.Pos)
		} else {
			p.EmergeTimer += dt
		}
		s.world.Components.Prison.SetComponent(e, p)
	}

	s.statDamaged.Store(int64(damaged))
}

// release walks one prisoner out in front of the prison
func (s *PrisonSystem) release(prisonPos vmath.Vec3F) {
	pos := vmath.V3F(prisonPos.X, parameter.PrisonerY, prisonPos.Z-parameter.PrisonEmergeDepth)
	spawnPrisoner(s.world, pos, newEmergingPrisoner(s.world))
	s.statReleased.Add(1)
}

