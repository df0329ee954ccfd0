package physics

import (
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/vmath"
)

// Accelerate advances one velocity axis by a signed input in [-1, 1]
// Nonzero input accelerates at accel; zero input coasts toward rest at half rate
// The result is saturated to ±max
func Accelerate(v, input, accel, max, dt float64) float64 {
	input = vmath.Clamp(input, -1, 1)
	if input != 0 {
		v += input * accel * dt
	} else {
		v = vmath.MoveToward(v, 0, 0.5*accel*dt)
	}
	return vmath.ClampMag(v, max)
}

// Integrate performs semi-implicit Euler: v += (a + g)*dt; p += v*dt
func Integrate(k *core.Kinetic, gravity, dt float64) {
	acc := k.Accel
	if k.Gravity {
		acc.Y -= gravity
	}
	k.Vel = vmath.V3FAddScaled(k.Vel, acc, dt)
	k.Pos = vmath.V3FAddScaled(k.Pos, k.Vel, dt)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec3F) {
	k.Vel = vmath.V3FAdd(k.Vel, dv)
}

// Damp scales horizontal and depth velocity toward rest, used for ground friction
func Damp(k *core.Kinetic, factor, dt float64) {
	s := 1 - factor*dt
	if s < 0 {
		s = 0
	}
	k.Vel.X *= s
	k.Vel.Z *= s
}
