package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
)

// ProjectileSystem integrates bullets and launched missiles and resolves
// their contact with the ground
// Body-to-body impacts belong to the CollisionSystem
type ProjectileSystem struct {
	world *engine.World

	statCount      *atomic.Int64
	statGroundHits *atomic.Int64

	enabled bool
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{
		world:          world,
		statCount:      world.Resources.Status.Ints.Get("projectile.count"),
		statGroundHits: world.Resources.Status.Ints.Get("projectile.ground_hits"),
	}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.statCount.Store(0)
	s.statGroundHits.Store(0)
	s.enabled = true
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
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

func (s *ProjectileSystem) Update() {
	entities := s.world.Components.Projectile.GetAllEntities()
	s.statCount.Store(int64(len(entities)))
	if !s.enabled || len(entities) == 0 {
		return
	}

	dt := s.world.Resources.Time.Delta
	world := s.world.Resources.Config.World
	var toDestroy []core.Entity

	for _, e := range entities {
		if !s.world.Alive(e) {
			continue
		}
		p, ok := s.world.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		p.Age += dt
		if p.Age > parameter.ProjectileMaxAge {
			toDestroy = append(toDestroy, e)
			continue
		}

		physics.Integrate(&k, world.Gravity, dt)

		if k.Pos.X < world.LeftBoundary-parameter.ProjectileFarMargin ||
			k.Pos.X > world.RightBoundary+parameter.ProjectileFarMargin ||
			k.Pos.Y > world.Ceiling+parameter.ProjectileFarMargin {
			toDestroy = append(toDestroy, e)
			continue
		}

		if floor := world.TerrainHeight(k.Pos.X); k.Pos.Y <= floor {
			k.Pos.Y = floor
			requestEffect(s.world, core.EffectSmallExplosion, k.Pos)
			requestSound(s.world, core.SoundGroundImpact, k.Pos)
			s.statGroundHits.Add(1)
			toDestroy = append(toDestroy, e)
			continue
		}

		s.world.Components.Projectile.SetComponent(e, p)
		s.world.Components.Kinetic.SetComponent(e, k)
	}

	for _, e := range toDestroy {
		s.world.DestroyEntity(e)
	}
}
