package component

import "github.com/eniklas/nachtmission/core"

// PitchState is the helicopter pitch machine
type PitchState uint8

const (
	PitchLevel    PitchState = iota // Pitch is 0, facing snapped
	PitchPitching                   // Horizontal input held
	PitchLeveling                   // Decaying toward 0
)

// Rotation is the in-progress turn direction; the enum keeps left and right exclusive
type Rotation int8

const (
	RotateNone  Rotation = 0
	RotateLeft  Rotation = -1
	RotateRight Rotation = 1
)

// ChopperComponent holds helicopter state (pure data)
// Velocity and position live in core.Kinetic
type ChopperComponent struct {
	Facing core.Facing
	Yaw    float64 // Degrees about the vertical axis
	Pitch  float64 // Degrees, bounded by config min/max

	PitchState   PitchState
	PitchingTime float64

	Rotating     Rotation
	TurnFrom     float64
	TurnTo       core.Facing
	RotationTime float64 // Elapsed since turn start, keeps counting through the cooldown

	Grounded   bool
	JustLanded bool // True only on the touch-down tick
	OverRiver  bool

	Crashing    bool
	CrashTime   float64
	HasExploded bool
	Spin        float64 // Crash yaw rate, degrees per second
	Roll        float64 // Crash roll, degrees

	Capacity    int
	UnloadTimer float64
}

// RotorComponent holds one rotor's spin state
type RotorComponent struct {
	Tail bool

	Speed    float64 // Degrees per second
	Angle    float64 // Integrated blade angle, [0, 360)
	MinSpeed float64 // Forced to zero during a crash

	SpinningUp   bool
	SpinningDown bool
	SpinTime     float64
}
