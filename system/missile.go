package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/vmath"
)

// MissileSystem carries attached missiles under their jet
// Launched missiles are projectiles and belong to the ProjectileSystem
type MissileSystem struct {
	world   *engine.World
	enabled bool
}

func NewMissileSystem(world *engine.World) engine.System {
	s := &MissileSystem{world: world}
	s.Init()
	return s
}

func (s *MissileSystem) Init() {
	s.enabled = true
}

func (s *MissileSystem) Name() string { return "missile" }

func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *MissileSystem) HandleEvent(ev event.GameEvent) {
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

func (s *MissileSystem) Update() {
	if !s.enabled {
		return
	}

	var orphans []core.Entity
	for _, m := range s.world.Components.Missile.GetAllEntities() {
		if !s.world.Alive(m) {
			continue
		}
		mc, ok := s.world.Components.Missile.GetComponent(m)
		if !ok || !mc.Attached {
			continue
		}
		// Launcher is looked up by id; a dead jet leaves the missile orphaned
		if !s.world.Alive(mc.Jet) {
			orphans = append(orphans, m)
			continue
		}
		jk, ok := s.world.Components.Kinetic.GetComponent(mc.Jet)
		if !ok {
			orphans = append(orphans, m)
			continue
		}
		k, _ := s.world.Components.Kinetic.GetComponent(m)
		k.Pos = vmath.V3FAdd(jk.Pos, missileOffset(mc.Slot))
		k.Vel = jk.Vel
		s.world.Components.Kinetic.SetComponent(m, k)
	}

	for _, m := range orphans {
		s.world.DestroyEntity(m)
	}
}

// launchMissiles detaches every missile still under the jet and sends it
// along the jet heading with a one-shot downward kick; gravity takes over after
func launchMissiles(w *engine.World, j *component.JetComponent, k *core.Kinetic) int {
	speed := w.Resources.Config.Jet.MissileSpeed
	launched := 0

	for slot, m := range j.Missiles {
		if !w.Alive(m) {
			continue
		}
		mc, ok := w.Components.Missile.GetComponent(m)
		if !ok || !mc.Attached {
			continue
		}
		mc.Attached = false
		w.Components.Missile.SetComponent(m, mc)

		w.Components.Kinetic.SetComponent(m, core.Kinetic{
			Pos:     vmath.V3FAdd(k.Pos, missileOffset(slot)),
			Vel:     vmath.V3F(j.Heading*speed, -parameter.JetMissileDrop, 0),
			Gravity: true,
		})
		w.Components.Projectile.SetComponent(m, component.ProjectileComponent{Source: core.KindJet, Missile: true})
		w.Components.Collider.SetComponent(m, component.ColliderComponent{
			Boxes:   []physics.Box{{Half: vmath.V3F(parameter.MissileHalfX, parameter.MissileHalfYZ, parameter.MissileHalfYZ)}},
			Enabled: true,
		})
		launched++
	}
	return launched
}
