package component

import "github.com/eniklas/nachtmission/core"

// PrisonerState is the prisoner lifecycle
type PrisonerState uint8

const (
	PrisonerEmerging     PrisonerState = iota // Walking out of a prison toward the ground lane
	PrisonerFree                              // Wandering or chasing the chopper
	PrisonerRescued                           // Running from the pad to the base entrance
	PrisonerEnteringBase                      // Walking through the entrance toward the wall
)

func (s PrisonerState) String() string {
	switch s {
	case PrisonerEmerging:
		return "emerging"
	case PrisonerFree:
		return "free"
	case PrisonerRescued:
		return "rescued"
	case PrisonerEnteringBase:
		return "entering_base"
	}
	return "unknown"
}

// PrisonerComponent holds prisoner behaviour state (pure data)
type PrisonerComponent struct {
	State PrisonerState
	Dir   core.Direction

	DirTimer     float64 // Seconds until next random direction change
	FinalZ       float64
	ZSpeedFactor float64

	// ArmCount is how many chopper colliders overlapped on the last pickup check
	ArmCount int
}

// Boardable reports whether the chopper may pick up or crush this prisoner
func (p PrisonerComponent) Boardable() bool {
	return p.State == PrisonerFree
}

// Rescued reports whether the prisoner already counts as rescued
func (p PrisonerComponent) Rescued() bool {
	return p.State == PrisonerRescued || p.State == PrisonerEnteringBase
}

// PrisonComponent holds captives; a damaged prison releases them over time
type PrisonComponent struct {
	Captives    int
	Damaged     bool
	EmergeTimer float64
}
