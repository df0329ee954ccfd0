package system

import (
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/vmath"
)

// collisionEntry holds cached body data for soft collision processing
type collisionEntry struct {
	entity core.Entity
	kind   core.Kind
	pos    vmath.Vec3F
	boxes  []physics.Box
}

// SoftCollisionRule defines a single soft collision interaction
type SoftCollisionRule struct {
	// SpeedScale multiplies tank speed for the push
	SpeedScale float64
}

// SoftCollisionMatrix maps [Source][Target] → Rule
// Source pushes Target away along X; nil entry = no interaction
type SoftCollisionMatrix [core.KindCount][core.KindCount]*SoftCollisionRule

// SoftCollisionSystem keeps ground vehicles from driving into each other
type SoftCollisionSystem struct {
	world *engine.World

	// Rebuilt each tick
	bodies []collisionEntry

	matrix SoftCollisionMatrix

	enabled bool
}

// NewSoftCollisionSystem creates the vehicle separation system
func NewSoftCollisionSystem(world *engine.World) engine.System {
	s := &SoftCollisionSystem{
		world:  world,
		bodies: make([]collisionEntry, 0, 8),
	}

	s.initMatrix()
	s.Init()
	return s
}

// initMatrix populates the collision rule matrix
func (s *SoftCollisionSystem) initMatrix() {
	// Tank pushes Tank (bidirectional via the symmetric entry)
	s.matrix[core.KindTank][core.KindTank] = &SoftCollisionRule{SpeedScale: 1}

	// Stationary turret pushes Tank; turrets never move
	s.matrix[core.KindTurret][core.KindTank] = &SoftCollisionRule{SpeedScale: 1}
}

func (s *SoftCollisionSystem) Init() {
	s.bodies = s.bodies[:0]
	s.enabled = true
}

func (s *SoftCollisionSystem) Name() string {
	return "soft_collision"
}

func (s *SoftCollisionSystem) Priority() int {
	return parameter.PrioritySoftCollision
}

func (s *SoftCollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SoftCollisionSystem) HandleEvent(ev event.GameEvent) {
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
	}
}

func (s *SoftCollisionSystem) Update() {
	if !s.enabled {
		return
	}

	s.collect()
	if len(s.bodies) < 2 {
		return
	}

	step := s.world.Resources.Config.Tank.Speed * s.world.Resources.Time.Delta
	pushes := make(map[core.Entity]float64)

	for i := range s.bodies {
		src := &s.bodies[i]
		for j := range s.bodies {
			if i == j {
				continue
			}
			tgt := &s.bodies[j]
			rule := s.matrix[src.kind][tgt.kind]
			if rule == nil {
				continue
			}
			if !physics.AnyOverlap(src.pos, src.boxes, tgt.pos, tgt.boxes) {
				continue
			}
			dir := 1.0
			if tgt.pos.X < src.pos.X || (tgt.pos.X == src.pos.X && tgt.entity < src.entity) {
				dir = -1
			}
			pushes[tgt.entity] += dir * rule.SpeedScale * step
		}
	}

	for e, dx := range pushes {
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		k.Pos.X += dx
		s.world.Components.Kinetic.SetComponent(e, k)
	}
}

// collect caches ground vehicles that take part in separation
func (s *SoftCollisionSystem) collect() {
	s.bodies = s.bodies[:0]
	for _, e := range s.world.Components.Turret.GetAllEntities() {
		kind, ok := s.world.Kind(e)
		if !ok {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		col, ok := s.world.Components.Collider.GetComponent(e)
		if !ok || !col.Enabled {
			continue
		}
		s.bodies = append(s.bodies, collisionEntry{entity: e, kind: kind, pos: k.Pos, boxes: col.Boxes})
	}
}
