package manifest

import (
	"github.com/eniklas/nachtmission/registry"
	"github.com/eniklas/nachtmission/system"
)

// SystemDef defines a system for registration
type SystemDef struct {
	// Registry key, matches System.Name()
	Name        string
	Constructor registry.SystemFactory
}

// Systems is the authoritative system list
// Run order comes from each system's Priority, not from this slice
var Systems = []SystemDef{
	{"menu", system.NewMenuSystem},
	{"director", system.NewDirectorSystem},
	{"chopper", system.NewChopperSystem},
	{"rotor", system.NewRotorSystem},
	{"prison", system.NewPrisonSystem},
	{"prisoner", system.NewPrisonerSystem},
	{"turret", system.NewTurretSystem},
	{"tank", system.NewTankSystem},
	{"soft_collision", system.NewSoftCollisionSystem},
	{"jet", system.NewJetSystem},
	{"drone", system.NewDroneSystem},
	{"missile", system.NewMissileSystem},
	{"projectile", system.NewProjectileSystem},
	{"collision", system.NewCollisionSystem},
	{"lifetime", system.NewLifetimeSystem},
	{"effect", system.NewEffectSystem},
	{"notify", system.NewNotifySystem},
}
