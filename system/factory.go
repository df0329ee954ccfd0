package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/vmath"
)

// BuildLevel populates a cleared world with the starting layout:
// the helicopter on its pad, both rotors, every prison and static turret
func BuildLevel(w *engine.World) {
	cfg := w.Resources.Config

	spawnChopper(w, chopperSpawnPos(w))
	spawnRotor(w, false)
	spawnRotor(w, true)

	for _, p := range cfg.World.Prisons {
		spawnPrison(w, p.X, p.Captives, false)
	}
	for _, x := range cfg.World.Turrets {
		spawnTurret(w, x)
	}
}

func chopperSpawnPos(w *engine.World) vmath.Vec3F {
	world := w.Resources.Config.World
	return vmath.V3F(world.LandingPadX, world.Ground, 0)
}

// chopperBoxes returns the body and cockpit colliders for a facing
// Side-facing the cockpit sits at the nose; forward-facing it sits toward the camera
func chopperBoxes(f core.Facing) []physics.Box {
	if f == core.FacingForward {
		return []physics.Box{
			{Half: vmath.V3F(parameter.ChopperBodyWidth, parameter.ChopperBodyHeight, parameter.ChopperBodyLength)},
			{
				Offset: vmath.V3F(0, 0, -parameter.ChopperCockpitOffset),
				Half:   vmath.V3F(parameter.ChopperCockpitHalf, parameter.ChopperCockpitHalf, parameter.ChopperCockpitHalf),
			},
		}
	}
	return []physics.Box{
		{Half: vmath.V3F(parameter.ChopperBodyLength, parameter.ChopperBodyHeight, parameter.ChopperBodyWidth)},
		{
			Offset: vmath.V3F(f.Sign()*parameter.ChopperCockpitOffset, 0, 0),
			Half:   vmath.V3F(parameter.ChopperCockpitHalf, parameter.ChopperCockpitHalf, parameter.ChopperCockpitHalf),
		},
	}
}

// newChopperState is the pad spawn state
func newChopperState(w *engine.World) component.ChopperComponent {
	return component.ChopperComponent{
		Facing:     core.FacingForward,
		Yaw:        core.FacingForward.Yaw(),
		PitchState: component.PitchLevel,
		Grounded:   true,
		Capacity:   w.Resources.Config.Chopper.Capacity,
	}
}

func spawnChopper(w *engine.World, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity(core.KindChopper)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos})
	w.Components.Chopper.SetComponent(e, newChopperState(w))
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   chopperBoxes(core.FacingForward),
		Enabled: true,
	})
	return e
}

func spawnRotor(w *engine.World, tail bool) core.Entity {
	e := w.CreateEntity(core.KindRotor)
	minSpeed := w.Resources.Config.Rotor.MinSpeed
	w.Components.Rotor.SetComponent(e, component.RotorComponent{
		Tail:     tail,
		Speed:    minSpeed,
		MinSpeed: minSpeed,
	})
	return e
}

// spawnBullet creates a projectile tagged with its firing faction
func spawnBullet(w *engine.World, pos, vel vmath.Vec3F, gravity bool, source core.Kind) core.Entity {
	e := w.CreateEntity(core.KindProjectile)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos, Vel: vel, Gravity: gravity})
	w.Components.Projectile.SetComponent(e, component.ProjectileComponent{Source: source})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   []physics.Box{{Half: vmath.V3F(parameter.ProjectileHalf, parameter.ProjectileHalf, parameter.ProjectileHalf)}},
		Enabled: true,
	})
	return e
}

func prisonerBoxes(halfZ float64) []physics.Box {
	return []physics.Box{{Half: vmath.V3F(parameter.PrisonerHalfX, parameter.PrisonerHalfY, halfZ)}}
}

func spawnPrisoner(w *engine.World, pos vmath.Vec3F, pc component.PrisonerComponent) core.Entity {
	e := w.CreateEntity(core.KindPrisoner)
	halfZ := parameter.PrisonerLaneHalfZ
	if pc.State != component.PrisonerFree {
		halfZ = parameter.PrisonerWalkHalfZ
	}
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos})
	w.Components.Prisoner.SetComponent(e, pc)
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   prisonerBoxes(halfZ),
		Enabled: true,
	})
	return e
}

func prisonBoxes(halfY float64) []physics.Box {
	return []physics.Box{{
		Offset: vmath.V3F(0, 0, parameter.PrisonColliderOffsetZ),
		Half:   vmath.V3F(parameter.PrisonHalfX, halfY, parameter.PrisonColliderHalfZ),
	}}
}

func spawnPrison(w *engine.World, x float64, captives int, damaged bool) core.Entity {
	world := w.Resources.Config.World
	e := w.CreateEntity(core.KindPrison)
	halfY := parameter.PrisonHalfY
	if w.Resources.Chopper.Crashing {
		halfY = parameter.PrisonCrashHalfY
	}
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: vmath.V3F(x, world.PrisonY, world.PrisonZ)})
	w.Components.Prison.SetComponent(e, component.PrisonComponent{Captives: captives, Damaged: damaged})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   prisonBoxes(halfY),
		Enabled: true,
	})
	return e
}

func tankBoxes() []physics.Box {
	return []physics.Box{{Half: vmath.V3F(parameter.TankHalfX, parameter.TankHalfY, parameter.TankHalfZ)}}
}

// spawnTank creates a mobile turret carrier
func spawnTank(w *engine.World, x float64) core.Entity {
	e := w.CreateEntity(core.KindTank)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: vmath.V3F(x, parameter.TankY, parameter.TankZ)})
	w.Components.Tank.SetComponent(e, component.TankComponent{})
	w.Components.Turret.SetComponent(e, newTurret(w))
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Boxes: tankBoxes(), Enabled: true})
	return e
}

// spawnTurret creates a stationary turret
func spawnTurret(w *engine.World, x float64) core.Entity {
	e := w.CreateEntity(core.KindTurret)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: vmath.V3F(x, parameter.TankY, parameter.TankZ)})
	w.Components.Turret.SetComponent(e, newTurret(w))
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Boxes: tankBoxes(), Enabled: true})
	return e
}

func newTurret(w *engine.World) component.TurretComponent {
	return component.TurretComponent{
		CanFire: true,
		Enabled: !w.Resources.Chopper.Crashing,
	}
}

// spawnJet creates a jet with two missiles hanging under its wings
func spawnJet(w *engine.World, pos vmath.Vec3F, heading float64, headOn bool) core.Entity {
	e := w.CreateEntity(core.KindJet)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   jetBoxes(parameter.JetHuntHalfZ),
		Enabled: true,
	})

	jet := component.JetComponent{
		Phase:        component.JetHunting,
		Heading:      heading,
		HeadOn:       headOn,
		Speed:        w.Resources.Config.Jet.Speed,
		Yaw:          90 * heading,
		DespawnTimer: -1,
	}
	for slot := range jet.Missiles {
		m := w.CreateEntity(core.KindMissile)
		w.Components.Kinetic.SetComponent(m, core.Kinetic{Pos: vmath.V3FAdd(pos, missileOffset(slot))})
		w.Components.Missile.SetComponent(m, component.MissileComponent{Jet: e, Slot: slot, Attached: true})
		w.Components.Collider.SetComponent(m, component.ColliderComponent{
			Boxes:   []physics.Box{{Half: vmath.V3F(parameter.MissileHalfX, parameter.MissileHalfYZ, parameter.MissileHalfYZ)}},
			Enabled: false,
		})
		jet.Missiles[slot] = m
	}
	w.Components.Jet.SetComponent(e, jet)
	return e
}

func jetBoxes(halfZ float64) []physics.Box {
	return []physics.Box{{Half: vmath.V3F(parameter.JetHalfX, parameter.JetHalfY, halfZ)}}
}

// missileOffset places slot 0 under the near wing and slot 1 under the far wing
func missileOffset(slot int) vmath.Vec3F {
	z := -parameter.JetMissileWingOffset
	if slot == 1 {
		z = parameter.JetMissileWingOffset
	}
	return vmath.V3F(0, -parameter.JetMissileHangOffset, z)
}

func spawnDrone(w *engine.World, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity(core.KindDrone)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos})
	w.Components.Drone.SetComponent(e, component.DroneComponent{LeftMuzzle: true})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   []physics.Box{{Half: vmath.V3F(parameter.DroneHalfX, parameter.DroneHalfY, parameter.DroneHalfZ)}},
		Enabled: true,
	})
	return e
}

// spawnEffect creates a visual marker removed after its duration
func spawnEffect(w *engine.World, fx core.EffectType, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity(core.KindEffect)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos})
	w.Components.Effect.SetComponent(e, component.EffectComponent{Type: fx})
	w.Components.Timer.SetComponent(e, component.TimerComponent{Remaining: effectDuration(fx)})
	return e
}

func effectDuration(fx core.EffectType) float64 {
	switch fx {
	case core.EffectBigExplosion:
		return parameter.BigExplosionDuration
	case core.EffectFire:
		return parameter.FireDuration
	case core.EffectSmoke:
		return parameter.SmokeDuration
	case core.EffectPrisonDebris:
		return parameter.DebrisDuration
	}
	return parameter.SmallExplosionDuration
}
