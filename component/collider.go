package component

import "github.com/eniklas/nachtmission/physics"

// ColliderComponent holds collision volumes relative to the owner position
type ColliderComponent struct {
	Boxes   []physics.Box
	Enabled bool
}
