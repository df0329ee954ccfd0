package parameter

// Turret
const (
	TurretMinRotation   = 315.0
	TurretMaxRotation   = 45.0
	TurretRotationSpeed = 20.0
	TurretReloadTime    = 2.0
	TurretFireRange     = 20.0
	TurretBulletSpeed   = 30.0
	TurretMuzzleHeight  = 2.0
	TurretMuzzleDepth   = 5.0 // Barrel reaches forward into the flight lane
)

// Tank
const (
	TankSpeed       = 4.0
	TankMinDistance = 5.0
	TankMaxDistance = 1000.0
	TankTerritory   = 20.0 // Stay this far left of the river
	TankHalfX       = 4.0
	TankHalfY       = 1.5
	TankHalfZ       = 4.0
)

// Jet
const (
	JetSpeed               = 25.0
	JetMissileSpeed        = 50.0
	JetMissileDrop         = 5.0  // One-shot downward velocity at release
	JetTimeToAccelerate    = 0.5
	JetTimeToRoll          = 1.0
	JetFinalRoll           = 90.0
	JetContinuousRoll      = 90.0 // Degrees per second once rolled
	JetTimeToSwoop         = 1.0
	JetFinalSwoopAngle     = 270.0
	JetSwoopDrop           = 5.0
	JetSwoopMovingDistance = 10.0
	JetSwoopStillDistance  = 20.0
	JetHeadOnDistance      = 40.0
	JetHeadOnChance        = 4    // One in N
	JetAscentSpeedFactor   = 25.0
	JetRetreatAscendDelay  = 0.5
	JetRetreatSpeedFactor  = 72.0
	JetStillMaxSpeed       = 10.0
	JetMovingWindow        = 20.0 // |dx| within which chopper motion is judged
	JetMovingSpeedScale    = 1.5
	JetDespawnDistance     = 100.0
	JetDespawnGrace        = 1.0
	JetHalfX               = 6.0
	JetHalfY               = 1.5
	JetHalfZ               = 3.5  // Wingspan once committed to the attack
	JetHuntHalfZ           = 12.0 // Hunting collider reaches through the flight lane
	JetMissileWingOffset   = 1.0
	JetMissileHangOffset   = 1.0
)

// Drone
const (
	DroneSpeedX       = 5.0
	DroneSpeedY       = 2.5
	DroneDamperZone   = 0.8
	DroneDamperSpeed  = 0.5
	DroneOffsetX      = 1.0
	DroneOffsetY      = 1.0
	DroneFireInterval = 1.0
	DroneFireRange    = 30.0
	DroneBulletSpeedX = 5.0
	DroneBulletBoost  = 1.5
	DroneMuzzleOffset = 1.0
	DroneHalfX        = 1.0
	DroneHalfY        = 0.6
	DroneHalfZ        = 1.0
)

// Projectile
const (
	ProjectileHalf      = 0.2
	MissileHalfX        = 0.8
	MissileHalfYZ       = 0.3
	ProjectileMaxAge    = 10.0
	ProjectileFarMargin = 200.0
)
