package parameter

// Effect lifetimes in seconds
const (
	SmallExplosionDuration = 1.0
	BigExplosionDuration   = 2.0
	FireDuration           = 20.0
	SmokeDuration          = 20.0
	DebrisDuration         = 60.0

	BigExplosionLift     = 2.0 // Tank explosion height offset
	PrisonExplosionDepth = -11.0
	PrisonFireDepth      = -9.0
	PrisonSmokeDepth     = -9.5
	PrisonerKillLift     = 1.0
)

// Menu
const (
	TitleZoomSpeed = 0.5 // Real-time zoom progress per second
)
