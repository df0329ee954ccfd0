package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// PrisonerSystem walks prisoners out of damaged prisons, lets free prisoners
// wander or run for a landed helicopter, and marches rescued ones into the base
type PrisonerSystem struct {
	engine.SystemBase

	statEntered *atomic.Int64

	enabled bool
}

func NewPrisonerSystem(world *engine.World) engine.System {
	s := &PrisonerSystem{
		SystemBase:  engine.NewSystemBase(world, "prisoner"),
		statEntered: world.Resources.Status.Ints.Get("prisoner.entered_base"),
	}
	s.Init()
	return s
}

func (s *PrisonerSystem) Init() {
	s.statEntered.Store(0)
	s.enabled = true
}

func (s *PrisonerSystem) Name() string { return "prisoner" }

func (s *PrisonerSystem) Priority() int { return parameter.PriorityPrisoner }

func (s *PrisonerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *PrisonerSystem) HandleEvent(ev event.GameEvent) {
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

func (s *PrisonerSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.Dt()
	var arrived []core.Entity

	for _, e := range s.Component.Prisoner.GetAllEntities() {
		if !s.World.Alive(e) {
			continue
		}
		p, ok := s.Component.Prisoner.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.Component.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		switch p.State {
		case component.PrisonerEmerging:
			s.wander(&p, &k, dt)
			s.walk(&p, &k, dt)
			if k.Pos.Z == p.FinalZ {
				p.State = component.PrisonerFree
				s.Component.Collider.SetComponent(e, component.ColliderComponent{
					Boxes:   prisonerBoxes(parameter.PrisonerLaneHalfZ),
					Enabled: true,
				})
			}
		case component.PrisonerFree:
			if s.shouldChase() {
				s.chase(&p, &k)
			} else {
				s.wander(&p, &k, dt)
			}
			s.walk(&p, &k, dt)
		case component.PrisonerRescued:
			s.walk(&p, &k, dt)
			if k.Pos.Z == p.FinalZ {
				p.State = component.PrisonerEnteringBase
				p.Dir = core.DirForward
				p.FinalZ = s.Resource.Config.World.BaseWallZ
				p.ZSpeedFactor = 1
			}
		case component.PrisonerEnteringBase:
			s.walk(&p, &k, dt)
			if k.Pos.Z == p.FinalZ {
				arrived = append(arrived, e)
			}
		}

		s.Component.Prisoner.SetComponent(e, p)
		s.Component.Kinetic.SetComponent(e, k)
	}

	for _, e := range arrived {
		k, _ := s.Component.Kinetic.GetComponent(e)
		if s.World.DestroyEntity(e) {
			s.statEntered.Add(1)
			s.World.PushEvent(event.EventPrisonerEnteredBase, &event.PrisonerPayload{
				Entity:   e,
				Pos:      k.Pos,
				Counters: s.Resource.Score.Counters(),
			})
		}
	}
}

// shouldChase reports whether free prisoners run for the helicopter:
// landed in enemy territory, intact, with room onboard
func (s *PrisonerSystem) shouldChase() bool {
	ch := s.Resource.Chopper
	return ch.Alive && ch.Grounded && !ch.Crashing &&
		s.Resource.Config.World.InEnemyTerritory(ch.Pos.X) &&
		ch.HasRoom()
}

func (s *PrisonerSystem) chase(p *component.PrisonerComponent, k *core.Kinetic) {
	cx := s.Resource.Chopper.Pos.X
	switch {
	case cx < k.Pos.X:
		p.Dir = core.DirLeft
	case cx > k.Pos.X:
		p.Dir = core.DirRight
	}
}

// wander keeps the prisoner inside enemy territory and rerolls direction on a random interval
func (s *PrisonerSystem) wander(p *component.PrisonerComponent, k *core.Kinetic, dt float64) {
	world := s.Resource.Config.World
	switch {
	case k.Pos.X < world.LeftBoundary:
		p.Dir = core.DirRight
	case k.Pos.X > world.LeftRiverBoundary:
		p.Dir = core.DirLeft
	default:
		p.DirTimer -= dt
		if p.DirTimer <= 0 {
			p.Dir = randomDirection(s.Resource.Rand)
			p.DirTimer = randomDirTimer(s.World)
		}
	}
}

// walk advances X by direction and Z toward FinalZ, snapping once close
func (s *PrisonerSystem) walk(p *component.PrisonerComponent, k *core.Kinetic, dt float64) {
	speed := s.Resource.Config.Prisoner.Speed
	k.Pos.X += p.Dir.Sign() * speed * dt

	if k.Pos.Z == p.FinalZ {
		return
	}
	if vmath.Abs(k.Pos.Z-p.FinalZ) < parameter.PrisonerSnapDistance {
		k.Pos.Z = p.FinalZ
		// Arrival forces a fresh direction roll
		p.DirTimer = 0
		return
	}
	step := speed * p.ZSpeedFactor * dt
	if vmath.Abs(k.Pos.Z-p.FinalZ) <= step {
		k.Pos.Z = p.FinalZ
		p.DirTimer = 0
		return
	}
	k.Pos.Z -= vmath.Sign(k.Pos.Z-p.FinalZ) * step
}

func randomDirection(r *vmath.FastRand) core.Direction {
	return core.Direction(r.Intn(3) - 1)
}

func randomDirTimer(w *engine.World) float64 {
	cfg := w.Resources.Config.Prisoner
	return w.Resources.Rand.Range(cfg.MinDirChange, cfg.MaxDirChange)
}

// newEmergingPrisoner walks out of a prison toward the ground lane
func newEmergingPrisoner(w *engine.World) component.PrisonerComponent {
	return component.PrisonerComponent{
		State:        component.PrisonerEmerging,
		Dir:          randomDirection(w.Resources.Rand),
		DirTimer:     randomDirTimer(w),
		FinalZ:       parameter.PrisonerLaneZ,
		ZSpeedFactor: 1,
	}
}

// killPrisoner removes a prisoner that has not reached safety and scores it as killed
// Returns false if the prisoner was already gone or rescued
func killPrisoner(w *engine.World, e core.Entity, pos vmath.Vec3F) bool {
	p, ok := w.Components.Prisoner.GetComponent(e)
	if !ok || p.Rescued() {
		return false
	}
	if !w.DestroyEntity(e) {
		return false
	}
	scoreKill(w, e, pos)
	requestSound(w, core.SoundScream, pos)
	requestEffect(w, core.EffectSmallExplosion, vmath.V3FAdd(pos, vmath.V3F(0, parameter.PrisonerKillLift, 0)))
	return true
}
