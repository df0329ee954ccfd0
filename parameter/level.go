package parameter

// Default world layout
// Enemy territory lies left of the river, home base and landing pad to the right
const (
	WorldLeftBoundary       = -600.0
	WorldRightBoundary      = 300.0
	WorldLeftRiverBoundary  = 100.0
	WorldRightRiverBoundary = 130.0
	WorldCeiling            = 40.0
	WorldGround             = 2.0 // Helicopter resting height
	WorldTerrainY           = 0.0 // Projectile ground plane
	WorldRiverBedY          = -4.0

	LandingPadX     = 200.0
	LandingPadHalfX = 8.0

	BaseEntranceX = 240.0
	BaseEntranceZ = 6.0
	BaseWallZ     = 12.0

	PrisonY     = 3.0
	PrisonZ     = 18.0
	PrisonHalfX = 6.0
	PrisonHalfY = 3.0
	// Prison colliders reach forward through the flight lane so bullets can hit them
	PrisonColliderOffsetZ = -9.0
	PrisonColliderHalfZ   = 13.0
	// PrisonCrashHalfY flattens the collider while the helicopter is crashing so wreckage rests on the roof
	PrisonCrashHalfY = 1.0

	PrisonCaptives = 8

	GameLives = 3
	GameSeed  = 1

	TankY  = 1.5
	TankZ  = -5.0
	JetZ   = 10.0
	DroneZ = 0.0
)

// DefaultPrisonX lists prison positions along the play field
var DefaultPrisonX = []float64{-120, -260, -400, -540}

// DefaultTurretX lists stationary turrets
var DefaultTurretX = []float64{-320}
