package component

import "github.com/eniklas/nachtmission/core"

// ProjectileComponent marks a live bullet or launched missile
// Source is the firing faction used for self-fire exemption
type ProjectileComponent struct {
	Source  core.Kind
	Missile bool
	Age     float64
}
