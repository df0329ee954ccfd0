package engine

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
)

// ComponentStore provides typed access to every component store
// Built once per world; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Shared
	Kinetic  *Store[core.Kinetic]
	Collider *Store[component.ColliderComponent]

	// Player
	Chopper *Store[component.ChopperComponent]
	Rotor   *Store[component.RotorComponent]

	// Enemy
	Turret  *Store[component.TurretComponent]
	Tank    *Store[component.TankComponent]
	Jet     *Store[component.JetComponent]
	Missile *Store[component.MissileComponent]
	Drone   *Store[component.DroneComponent]

	// Rescue
	Prisoner *Store[component.PrisonerComponent]
	Prison   *Store[component.PrisonComponent]

	// Combat
	Projectile *Store[component.ProjectileComponent]

	// Lifecycle
	Effect *Store[component.EffectComponent]
	Timer  *Store[component.TimerComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic:    NewStore[core.Kinetic](),
		Collider:   NewStore[component.ColliderComponent](),
		Chopper:    NewStore[component.ChopperComponent](),
		Rotor:      NewStore[component.RotorComponent](),
		Turret:     NewStore[component.TurretComponent](),
		Tank:       NewStore[component.TankComponent](),
		Jet:        NewStore[component.JetComponent](),
		Missile:    NewStore[component.MissileComponent](),
		Drone:      NewStore[component.DroneComponent](),
		Prisoner:   NewStore[component.PrisonerComponent](),
		Prison:     NewStore[component.PrisonComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Effect:     NewStore[component.EffectComponent](),
		Timer:      NewStore[component.TimerComponent](),
	}
}

// all lists every store for bulk removal
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Kinetic, c.Collider,
		c.Chopper, c.Rotor,
		c.Turret, c.Tank, c.Jet, c.Missile, c.Drone,
		c.Prisoner, c.Prison,
		c.Projectile,
		c.Effect, c.Timer,
	}
}
