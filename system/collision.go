package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/vmath"
)

// body is a collider snapshot taken at the start of resolution
type body struct {
	entity core.Entity
	kind   core.Kind
	pos    vmath.Vec3F
	boxes  []physics.Box

	// Set for bullets and launched missiles
	projectile *component.ProjectileComponent
}

// ImpactRule resolves one contact between bodies a and b
// The rule owns every side effect: destruction, effects, crash, score
type ImpactRule func(s *CollisionSystem, a, b *body)

// ImpactMatrix maps [KindA][KindB] → Rule; nil entry = no interaction
// Lookups try both orders so each pair needs a single entry
type ImpactMatrix [core.KindCount][core.KindCount]ImpactRule

// CollisionSystem detects contact between enabled colliders and resolves
// exactly one outcome per pair from the impact matrix
type CollisionSystem struct {
	engine.SystemBase

	bodies []body
	matrix ImpactMatrix

	// Telemetry
	statImpacts *atomic.Int64
	statKills   *atomic.Int64

	enabled bool
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		SystemBase:  engine.NewSystemBase(world, "collision"),
		bodies:      make([]body, 0, 64),
		statImpacts: world.Resources.Status.Ints.Get("collision.impacts"),
		statKills:   world.Resources.Status.Ints.Get("collision.kills"),
	}
	s.initMatrix()
	s.Init()
	return s
}

// initMatrix populates the impact table
func (s *CollisionSystem) initMatrix() {
	for _, p := range []core.Kind{core.KindProjectile, core.KindMissile} {
		s.matrix[p][core.KindTank] = (*CollisionSystem).projectileVsVehicle
		s.matrix[p][core.KindJet] = (*CollisionSystem).projectileVsVehicle
		s.matrix[p][core.KindDrone] = (*CollisionSystem).projectileVsVehicle
		s.matrix[p][core.KindTurret] = (*CollisionSystem).projectileVsStatic
		s.matrix[p][core.KindChopper] = (*CollisionSystem).projectileVsChopper
		s.matrix[p][core.KindPrison] = (*CollisionSystem).projectileVsPrison
		s.matrix[p][core.KindPrisoner] = (*CollisionSystem).projectileVsPrisoner
	}

	s.matrix[core.KindChopper][core.KindTank] = (*CollisionSystem).chopperVsEnemy
	s.matrix[core.KindChopper][core.KindDrone] = (*CollisionSystem).chopperVsEnemy
	s.matrix[core.KindChopper][core.KindJet] = (*CollisionSystem).chopperVsEnemy

	s.matrix[core.KindDrone][core.KindJet] = (*CollisionSystem).droneVsVehicle
	s.matrix[core.KindDrone][core.KindTank] = (*CollisionSystem).droneVsVehicle
}

func (s *CollisionSystem) Init() {
	s.bodies = s.bodies[:0]
	s.statImpacts.Store(0)
	s.statKills.Store(0)
	s.enabled = true
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
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

func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	s.collect()

	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			a, b := &s.bodies[i], &s.bodies[j]

			rule := s.matrix[a.kind][b.kind]
			if rule == nil {
				rule = s.matrix[b.kind][a.kind]
				a, b = b, a
			}
			if rule == nil {
				continue
			}
			// Earlier resolutions this tick may have removed either side
			if !s.World.Alive(a.entity) || !s.World.Alive(b.entity) {
				continue
			}
			if !physics.AnyOverlap(a.pos, a.boxes, b.pos, b.boxes) {
				continue
			}
			rule(s, a, b)
		}
	}
}

// collect snapshots every live body with an enabled collider
func (s *CollisionSystem) collect() {
	s.bodies = s.bodies[:0]
	for _, e := range s.Component.Collider.GetAllEntities() {
		kind, ok := s.World.Kind(e)
		if !ok {
			continue
		}
		col, ok := s.Component.Collider.GetComponent(e)
		if !ok || !col.Enabled || len(col.Boxes) == 0 {
			continue
		}
		k, ok := s.Component.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		b := body{entity: e, kind: kind, pos: k.Pos, boxes: col.Boxes}
		if p, ok := s.Component.Projectile.GetComponent(e); ok {
			b.projectile = &p
		} else if kind == core.KindMissile {
			// Missile still hanging under its jet
			continue
		}
		s.bodies = append(s.bodies, b)
	}
}

// faction groups kinds that never hurt each other
func faction(k core.Kind) core.Kind {
	switch k {
	case core.KindTurret:
		return core.KindTank
	case core.KindMissile:
		return core.KindJet
	}
	return k
}

// exempt reports whether a projectile belongs to the target's own faction
func exempt(p *body, target core.Kind) bool {
	return p.projectile != nil && faction(p.projectile.Source) == faction(target)
}

// === Projectile rules ===

func (s *CollisionSystem) projectileVsVehicle(p, t *body) {
	// Missiles pass through jets so a launching jet never downs itself
	if p.projectile.Missile && t.kind == core.KindJet {
		return
	}
	if exempt(p, t.kind) {
		s.projectileVsStatic(p, t)
		return
	}

	pos := t.pos
	if t.kind == core.KindTank {
		pos.Y += parameter.BigExplosionLift
	}
	bigExplosion(s.World, pos)

	if t.kind == core.KindJet {
		destroyJet(s.World, t.entity)
	} else {
		s.World.DestroyEntity(t.entity)
	}
	s.World.DestroyEntity(p.entity)

	s.statImpacts.Add(1)
	s.statKills.Add(1)
	s.Log.Debug().
		Str("target", t.kind.String()).
		Str("source", p.projectile.Source.String()).
		Msg("enemy destroyed")
}

// projectileVsStatic is the fallback outcome: the round bursts harmlessly
func (s *CollisionSystem) projectileVsStatic(p, _ *body) {
	requestEffect(s.World, core.EffectSmallExplosion, p.pos)
	requestSound(s.World, core.SoundGroundImpact, p.pos)
	s.World.DestroyEntity(p.entity)
	s.statImpacts.Add(1)
}

func (s *CollisionSystem) projectileVsChopper(p, c *body) {
	if p.projectile.Source == core.KindChopper {
		return
	}
	bigExplosion(s.World, c.pos)
	CrashChopper(s.World, c.entity, p.projectile.Source)
	s.World.DestroyEntity(p.entity)
	s.statImpacts.Add(1)
}

// projectileVsPrison replaces an intact prison with a burning damaged one that
// releases its captives; a damaged prison just absorbs the round
func (s *CollisionSystem) projectileVsPrison(p, t *body) {
	prison, ok := s.Component.Prison.GetComponent(t.entity)
	if !ok || prison.Damaged {
		s.projectileVsStatic(p, t)
		return
	}

	requestEffect(s.World, core.EffectBigExplosion, vmath.V3FAdd(t.pos, vmath.V3F(0, 0, parameter.PrisonExplosionDepth)))
	requestSound(s.World, core.SoundExplosion, t.pos)

	s.World.DestroyEntity(t.entity)
	spawnPrison(s.World, t.pos.X, prison.Captives, true)

	requestEffect(s.World, core.EffectFire, vmath.V3FAdd(t.pos, vmath.V3F(0, 0, parameter.PrisonFireDepth)))
	requestEffect(s.World, core.EffectSmoke, vmath.V3FAdd(t.pos, vmath.V3F(0, 0, parameter.PrisonSmokeDepth)))
	requestEffect(s.World, core.EffectPrisonDebris, t.pos)

	s.World.DestroyEntity(p.entity)
	s.statImpacts.Add(1)
	s.Log.Info().
		Float64("x", t.pos.X).
		Int("captives", prison.Captives).
		Msg("prison destroyed")
}

// projectileVsPrisoner kills prisoners still in enemy hands; rescued ones are out of reach
func (s *CollisionSystem) projectileVsPrisoner(p, t *body) {
	prisoner, ok := s.Component.Prisoner.GetComponent(t.entity)
	if !ok || prisoner.Rescued() {
		return
	}
	if killPrisoner(s.World, t.entity, t.pos) {
		s.World.DestroyEntity(p.entity)
		s.statImpacts.Add(1)
	}
}

// === Body rules ===

// chopperVsEnemy rams: the helicopter crashes and takes the enemy with it
// Jets only collide once retreating; their hunting collider is oversized
func (s *CollisionSystem) chopperVsEnemy(c, t *body) {
	if t.kind == core.KindJet {
		j, ok := s.Component.Jet.GetComponent(t.entity)
		if !ok || j.Phase != component.JetRetreating {
			return
		}
	}

	CrashChopper(s.World, c.entity, t.kind)
	bigExplosion(s.World, t.pos)
	if t.kind == core.KindJet {
		destroyJet(s.World, t.entity)
	} else {
		s.World.DestroyEntity(t.entity)
	}
	s.statImpacts.Add(1)
	s.statKills.Add(1)
}

// droneVsVehicle destroys both sides
func (s *CollisionSystem) droneVsVehicle(d, t *body) {
	bigExplosion(s.World, t.pos)
	s.World.DestroyEntity(d.entity)
	if t.kind == core.KindJet {
		destroyJet(s.World, t.entity)
	} else {
		s.World.DestroyEntity(t.entity)
	}
	s.statImpacts.Add(1)
	s.statKills.Add(2)
}
