package vmath

// AABB is an axis-aligned box described by center and half extents
type AABB struct {
	Center Vec3F
	Half   Vec3F
}

// Min returns the lower corner
func (b AABB) Min() Vec3F {
	return V3FSub(b.Center, b.Half)
}

// Max returns the upper corner
func (b AABB) Max() Vec3F {
	return V3FAdd(b.Center, b.Half)
}

// Overlaps reports strict interpenetration on all three axes
// Touching faces do not count
func (b AABB) Overlaps(o AABB) bool {
	if abs(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	if abs(b.Center.Y-o.Center.Y) >= b.Half.Y+o.Half.Y {
		return false
	}
	if abs(b.Center.Z-o.Center.Z) >= b.Half.Z+o.Half.Z {
		return false
	}
	return true
}

// ContainsXZ reports whether a point lies inside the box footprint
func (b AABB) ContainsXZ(p Vec3F) bool {
	return abs(p.X-b.Center.X) <= b.Half.X && abs(p.Z-b.Center.Z) <= b.Half.Z
}

// Top returns the Y of the upper face
func (b AABB) Top() float64 {
	return b.Center.Y + b.Half.Y
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
