package component

import "github.com/eniklas/nachtmission/core"

// TurretComponent aims within a wrapping arc and fires on reload
// Mounted on tanks or standing alone
type TurretComponent struct {
	Angle       float64 // Degrees in [0, 360), 0 straight up, positive toward +X
	ReloadTimer float64
	CanFire     bool
	Enabled     bool
}

// TankComponent marks a mobile turret carrier
type TankComponent struct {
	Heading float64 // -1, 0, 1 last move direction
}

// JetPhase is the attack run state
type JetPhase uint8

const (
	JetHunting JetPhase = iota
	JetSwooping
	JetRetreating
)

func (p JetPhase) String() string {
	switch p {
	case JetSwooping:
		return "swooping"
	case JetRetreating:
		return "retreating"
	}
	return "hunting"
}

// JetComponent holds the attack run state (pure data)
type JetComponent struct {
	Phase   JetPhase
	Heading float64 // -1 or 1 along X
	HeadOn  bool
	Speed   float64

	ChopperMoving bool
	ChopperDir    float64 // Chopper travel sign captured at swoop start

	SwoopTime   float64
	RetreatTime float64
	InitialY    float64
	FinalY      float64
	InitialZ    float64
	FinalZ      float64

	Roll float64
	Yaw  float64

	Missiles [2]core.Entity

	// DespawnTimer counts down once far from the chopper, negative when idle
	DespawnTimer float64
}

// MissileComponent links a missile to its launcher by id only
type MissileComponent struct {
	Jet      core.Entity
	Slot     int // 0 left wing, 1 right wing
	Attached bool
}

// DroneComponent holds pursuit and fire state
type DroneComponent struct {
	FireTimer  float64
	LeftMuzzle bool // Next shot side
}
