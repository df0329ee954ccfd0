package vmath

import "math"

// WrapDegrees maps an angle into [0, 360)
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// SignedDegrees maps an angle into (-180, 180]
func SignedDegrees(a float64) float64 {
	a = WrapDegrees(a)
	if a > 180 {
		a -= 360
	}
	return a
}

func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// PitchedDirection returns the unit muzzle direction for a side-facing
// airframe: facing is ±1, positive pitch dips the nose when moving forward
func PitchedDirection(facing, pitchDeg float64) Vec3F {
	r := DegToRad(pitchDeg)
	return Vec3F{X: facing * math.Cos(r), Y: -facing * math.Sin(r)}
}
