package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMenu          = 10  // Pause toggle and real-time animation
	PriorityDirector      = 20  // Spawns before anything moves
	PriorityChopper       = 100 // Player flight, fire, pickup
	PriorityRotor         = 110
	PriorityPrison        = 200 // Prisoner emergence from damaged prisons
	PriorityPrisoner      = 210
	PriorityTurret        = 300
	PriorityTank          = 310
	PrioritySoftCollision = 315 // Tank separation after tanks moved
	PriorityJet           = 320
	PriorityDrone         = 330
	PriorityMissile       = 340 // Attached missiles follow their jet
	PriorityProjectile    = 400 // Integrate projectiles after shooters emitted
	PriorityCollision     = 500 // Contact detection and impact resolution
	PriorityLifetime      = 800 // Scheduled removals
	PriorityEffect        = 900 // Forward effect requests to collaborators
	PriorityNotify        = 910 // Forward score events to collaborators
)
