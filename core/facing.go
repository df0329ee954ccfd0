package core

// Facing is the helicopter's cardinal heading about the vertical axis
type Facing int8

const (
	FacingLeft    Facing = -1
	FacingForward Facing = 0
	FacingRight   Facing = 1
)

// Yaw returns the heading angle in degrees: forward 0, left 90, right -90
func (f Facing) Yaw() float64 {
	switch f {
	case FacingLeft:
		return 90
	case FacingRight:
		return -90
	}
	return 0
}

// Sign returns -1, 0 or 1 along the horizontal axis
func (f Facing) Sign() float64 {
	return float64(f)
}

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "forward"
}

// Direction is a walking direction for ground units
type Direction int8

const (
	DirLeft    Direction = -1
	DirForward Direction = 0
	DirRight   Direction = 1
)

func (d Direction) Sign() float64 {
	return float64(d)
}
