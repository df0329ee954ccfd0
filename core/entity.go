package core

// Entity is a stable identifier into the world's entity table
// Zero is never issued and means "no entity"
type Entity uint64

// Kind is the closed set of entity classes the simulation knows about
type Kind uint8

const (
	KindNone Kind = iota
	KindChopper
	KindTank
	KindTurret
	KindJet
	KindMissile
	KindDrone
	KindPrisoner
	KindProjectile
	KindPrison
	KindTerrain
	KindEffect
	KindRotor
	KindCount
)

var kindNames = [KindCount]string{
	KindNone:       "none",
	KindChopper:    "chopper",
	KindTank:       "tank",
	KindTurret:     "turret",
	KindJet:        "jet",
	KindMissile:    "missile",
	KindDrone:      "drone",
	KindPrisoner:   "prisoner",
	KindProjectile: "projectile",
	KindPrison:     "prison",
	KindTerrain:    "terrain",
	KindEffect:     "effect",
	KindRotor:      "rotor",
}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// IsEnemy reports whether the kind belongs to the hostile faction
func (k Kind) IsEnemy() bool {
	switch k {
	case KindTank, KindTurret, KindJet, KindDrone:
		return true
	}
	return false
}
