package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the host loop
	IntentQuit
	IntentToggleMute
	IntentReset

	// Held controls, sampled every tick
	IntentLeft
	IntentRight
	IntentUp
	IntentDown

	// Edge controls, latched until sampled
	IntentFire
	IntentTurnLeft
	IntentTurnRight
	IntentMenu
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentReset:      "reset",
	IntentLeft:       "left",
	IntentRight:      "right",
	IntentUp:         "up",
	IntentDown:       "down",
	IntentFire:       "fire",
	IntentTurnLeft:   "turn_left",
	IntentTurnRight:  "turn_right",
	IntentMenu:       "menu",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsSystem reports whether the intent is handled outside the simulation
func (t IntentType) IsSystem() bool {
	return t >= IntentQuit && t <= IntentReset
}

// IsHeld reports whether the intent is a held axis control
func (t IntentType) IsHeld() bool {
	return t >= IntentLeft && t <= IntentDown
}
