package event

import (
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/vmath"
)

// MetaSystemCommandPayload toggles a system by registry name
type MetaSystemCommandPayload struct {
	SystemName string
	Enabled    bool
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}

// EffectRequestPayload asks the presentation layer for a visual effect
type EffectRequestPayload struct {
	Type core.EffectType
	Pos  vmath.Vec3F
}

// SoundRequestPayload asks the presentation layer for a sound
type SoundRequestPayload struct {
	Type core.SoundType
	Pos  vmath.Vec3F
}

// ChopperPayload reports a helicopter state transition
type ChopperPayload struct {
	Entity core.Entity
	Pos    vmath.Vec3F
	Cause  core.Kind // Crash cause, KindTerrain for a hard landing
}

// Counters is the score model; Captive is derived so the four states always sum to Total
type Counters struct {
	Lives   int
	Total   int
	Captive int
	Onboard int
	Rescued int
	Killed  int
}

// PrisonerPayload reports a prisoner lifecycle event
type PrisonerPayload struct {
	Entity   core.Entity
	Pos      vmath.Vec3F
	Counters Counters
}

// ScorePayload carries counters after a mutation
type ScorePayload struct {
	Counters Counters
}

// GameOverPayload carries the final rating
type GameOverPayload struct {
	Outcome   core.Outcome
	Counters  Counters
	SessionID string
}

// SpawnRequestPayload names the enemy class to spawn
type SpawnRequestPayload struct {
	Kind core.Kind
}
