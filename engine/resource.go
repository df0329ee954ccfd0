package engine

import (
	"time"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/status"
	"github.com/eniklas/nachtmission/vmath"
)

// Resource holds singleton world resources, accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Config  *config.Config
	Input   *InputResource
	Score   *ScoreResource
	Chopper *ChopperSnapshot
	Menu    *MenuResource
	Rand    *vmath.FastRand

	// Telemetry
	Status *status.Registry

	// Collaborators
	Effects  EffectPlayer
	Listener ScoreListener
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// DeltaTime is gameplay time for this tick, zero while paused
	DeltaTime time.Duration
	// Delta is DeltaTime in seconds
	Delta float64

	// RealDelta is unscaled wall time in seconds, advances while paused
	RealDelta float64

	// GameTime is accumulated gameplay seconds
	GameTime float64
	// RealTime is accumulated wall seconds
	RealTime float64

	FrameNumber int64
	Paused      bool
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(gameDelta, realDelta time.Duration, frame int64, paused bool) {
	tr.DeltaTime = gameDelta
	tr.Delta = gameDelta.Seconds()
	tr.RealDelta = realDelta.Seconds()
	tr.GameTime += tr.Delta
	tr.RealTime += tr.RealDelta
	tr.FrameNumber = frame
	tr.Paused = paused
}

// InputResource is the per-tick input sample
// Edge fields are true only on the tick the button went down
type InputResource struct {
	Horizontal float64 // [-1, 1]
	Vertical   float64 // [-1, 1]

	Fire       bool
	TurnLeft   bool
	TurnRight  bool
	MenuToggle bool
}

// Clear drops edge signals after they have been consumed
func (in *InputResource) Clear() {
	*in = InputResource{}
}

// ChopperSnapshot is the prior-tick helicopter view every other system reads
type ChopperSnapshot struct {
	Entity    core.Entity
	Alive     bool
	Pos       vmath.Vec3F
	Vel       vmath.Vec3F
	Facing    core.Facing
	Grounded  bool
	Crashing  bool
	OverRiver bool
	Onboard   int
	Capacity  int
}

// HasRoom reports whether another prisoner fits onboard
func (c *ChopperSnapshot) HasRoom() bool {
	return c.Onboard < c.Capacity
}

// MenuResource holds pause and real-time menu animation state
type MenuResource struct {
	Paused bool
	// SinceMenuClear is gameplay seconds since the menu last closed
	SinceMenuClear float64
	// TitleZoom is the real-time title animation progress in [0, 1]
	TitleZoom float64
}

// ScoreResource is the score model
// Mutated only through the helpers in the system package
type ScoreResource struct {
	Lives     int
	LivesLost int
	Total     int
	Onboard   int
	Rescued   int
	Killed    int

	GameOver bool
	Outcome  core.Outcome

	TanksActive  bool
	JetsActive   bool
	DronesActive bool

	SessionID string
}

// Captive is derived so the four prisoner states always sum to Total
func (s *ScoreResource) Captive() int {
	c := s.Total - s.Onboard - s.Rescued - s.Killed
	if c < 0 {
		return 0
	}
	return c
}

// Progress is the resolved fraction (rescued+killed)/total
func (s *ScoreResource) Progress() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Rescued+s.Killed) / float64(s.Total)
}

// Counters returns the event payload view
func (s *ScoreResource) Counters() event.Counters {
	return event.Counters{
		Lives:   s.Lives,
		Total:   s.Total,
		Captive: s.Captive(),
		Onboard: s.Onboard,
		Rescued: s.Rescued,
		Killed:  s.Killed,
	}
}

// Reset restores a fresh session
func (s *ScoreResource) Reset(lives, total int, sessionID string) {
	*s = ScoreResource{Lives: lives, Total: total, SessionID: sessionID}
}
