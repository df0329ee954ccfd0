package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation tick (60 Hz)
	GameUpdateInterval = 16667 * time.Microsecond

	// FrameUpdateInterval is the terminal redraw interval
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTickDelta caps a single step so a stalled host cannot tunnel bodies through colliders
	MaxTickDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// World physics
const (
	Gravity = 9.81

	// GroundFriction damps sliding wreckage on the ground, per second
	GroundFriction = 3.0
)
