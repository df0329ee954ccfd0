package parameter

// Prisoner behaviour
const (
	PrisonerSpeed        = 3.0
	PrisonerMinDirChange = 1.0
	PrisonerMaxDirChange = 5.0
	PrisonerSnapDistance = 0.1
	PrisonerLaneZ        = 2.5
	PrisonerY            = 1.0
	PrisonerHalfX        = 0.5
	PrisonerHalfY        = 1.0
	PrisonerWalkHalfZ    = 0.5
	PrisonerLaneHalfZ    = 10.0 // Boarding collider once on the ground lane
	PrisonEmergeInterval = 2.0
	PrisonEmergeDepth    = 8.0  // Prisoners appear this far in front of the prison
)
