package physics

import "github.com/eniklas/nachtmission/vmath"

// Box is a collider volume relative to its owner's position
type Box struct {
	Offset vmath.Vec3F
	Half   vmath.Vec3F
}

// World places the box at the owner position
func (b Box) World(pos vmath.Vec3F) vmath.AABB {
	return vmath.AABB{Center: vmath.V3FAdd(pos, b.Offset), Half: b.Half}
}

// CountOverlaps returns how many of the owner's boxes intersect target
func CountOverlaps(pos vmath.Vec3F, boxes []Box, target vmath.AABB) int {
	n := 0
	for _, b := range boxes {
		if b.World(pos).Overlaps(target) {
			n++
		}
	}
	return n
}

// AnyOverlap reports whether any box pair between two bodies intersects
func AnyOverlap(posA vmath.Vec3F, a []Box, posB vmath.Vec3F, b []Box) bool {
	for _, ba := range a {
		wa := ba.World(posA)
		for _, bb := range b {
			if wa.Overlaps(bb.World(posB)) {
				return true
			}
		}
	}
	return false
}
