package parameter

// Helicopter flight model
const (
	ChopperMaxHSpeed     = 50.0
	ChopperMaxVSpeed     = 25.0
	ChopperHAcceleration = 60.0
	ChopperVAcceleration = 40.0

	// ChopperSpeedCrashFactor scales MaxHSpeed into the landing crash threshold
	ChopperSpeedCrashFactor = 0.8
)

// Rotation and pitch
const (
	ChopperRotationTime     = 0.1 // Seconds per 90 degree turn
	ChopperTurnCooldown     = 0.1 // MIN_TIME_BETWEEN_TURNS after completion
	ChopperMinPitch         = -30.0
	ChopperMaxPitch         = 30.0
	ChopperPitchAccel       = 2.0
	ChopperLevelAccel       = 1.0
	ChopperPitchDeadZone    = 1.0
	ChopperGroundLevelBoost = 3.0
)

// Weapons
const (
	ChopperBulletSpeed        = 65.0
	ChopperForwardBulletScale = 0.5
	ChopperBulletVelocityBias = 0.75
	ChopperForwardDrop        = 2.0 // Forward bullets leave below the fuselage
	ChopperMuzzleReach        = 3.0 // Nose muzzle distance from center
	ChopperMuzzleDrop         = 0.5
	ChopperMenuFireGuard      = 0.2 // Seconds after menu close during which fire is ignored
)

// Cargo
const (
	ChopperCapacity     = 16
	ChopperUnloadPeriod = 0.5
	ChopperUnloadOffset = 2.0 // Unloaded prisoner X offset
)

// Crash
const (
	ChopperCrashDuration = 7.0
	ChopperCrashForce    = 20.0
	ChopperCrashSpin     = 10.0 // Degrees per second per unit of torque
)

// Collider geometry, half extents
const (
	ChopperBodyLength    = 3.0
	ChopperBodyHeight    = 1.0
	ChopperBodyWidth     = 1.2
	ChopperCockpitHalf   = 1.0
	ChopperCockpitOffset = 1.0
)

// Rotor
const (
	RotorMinSpeed      = 500.0
	RotorMaxSpeed      = 1250.0
	RotorSpinUpTime    = 3.0
	RotorSpinDownTime  = 6.0
	RotorCrashMinSpeed = 0.0
	TailRotorScale     = 1.5 // Tail rotor spins faster than the main rotor
)
