package core

import "github.com/eniklas/nachtmission/vmath"

// Kinetic is the shared motion state of anything that moves
type Kinetic struct {
	Pos vmath.Vec3F
	Vel vmath.Vec3F
	// Accel is a constant acceleration applied on top of gravity
	Accel vmath.Vec3F
	// Gravity enables world gravity for this body
	Gravity bool
}
