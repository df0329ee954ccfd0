package component

import "github.com/eniklas/nachtmission/core"

// EffectComponent is a short-lived visual marker owned by the core
type EffectComponent struct {
	Type core.EffectType
}

// TimerComponent schedules removal after Remaining seconds of gameplay time
type TimerComponent struct {
	Remaining float64
}
