package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/eniklas/nachtmission/engine"
)

// DefaultHoldWindow covers the gap before a terminal starts auto-repeating a held key
const DefaultHoldWindow = 550 * time.Millisecond

// Controls turns key presses into per-tick input samples
// Terminals report presses only, so an axis stays held until its hold window lapses
// or the opposite direction is pressed. HandleKey and Sample may run on different goroutines
type Controls struct {
	mu    sync.Mutex
	table *KeyTable
	hold  time.Duration

	heldUntil [IntentDown + 1]time.Time

	fire      bool
	turnLeft  bool
	turnRight bool
	menu      bool
}

// NewControls creates a control state over table, nil selects DefaultKeyTable
func NewControls(table *KeyTable, hold time.Duration) *Controls {
	if table == nil {
		table = DefaultKeyTable()
	}
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Controls{table: table, hold: hold}
}

// HandleKey records a key press and returns its intent
// System intents are returned for the caller and leave the control state untouched
func (c *Controls) HandleKey(ev *tcell.EventKey, now time.Time) IntentType {
	intent := c.table.Lookup(ev)
	c.Apply(intent, now)
	return intent
}

// Apply records an intent directly
func (c *Controls) Apply(intent IntentType, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch intent {
	case IntentLeft, IntentRight, IntentUp, IntentDown:
		c.heldUntil[intent] = now.Add(c.hold)
		c.heldUntil[opposite(intent)] = time.Time{}
	case IntentFire:
		c.fire = true
	case IntentTurnLeft:
		c.turnLeft = true
	case IntentTurnRight:
		c.turnRight = true
	case IntentMenu:
		c.menu = true
		// Axes must not carry over into the menu
		for i := range c.heldUntil {
			c.heldUntil[i] = time.Time{}
		}
	}
}

func opposite(intent IntentType) IntentType {
	switch intent {
	case IntentLeft:
		return IntentRight
	case IntentRight:
		return IntentLeft
	case IntentUp:
		return IntentDown
	}
	return IntentUp
}

// Sample returns the input for one tick and clears latched edges
func (c *Controls) Sample(now time.Time) engine.InputResource {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := engine.InputResource{
		Fire:       c.fire,
		TurnLeft:   c.turnLeft,
		TurnRight:  c.turnRight,
		MenuToggle: c.menu,
	}
	if c.held(IntentLeft, now) {
		in.Horizontal = -1
	} else if c.held(IntentRight, now) {
		in.Horizontal = 1
	}
	if c.held(IntentUp, now) {
		in.Vertical = 1
	} else if c.held(IntentDown, now) {
		in.Vertical = -1
	}

	c.fire, c.turnLeft, c.turnRight, c.menu = false, false, false, false
	return in
}

func (c *Controls) held(intent IntentType, now time.Time) bool {
	return now.Before(c.heldUntil[intent])
}

// Release drops every held axis, used when the terminal loses focus
func (c *Controls) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.heldUntil {
		c.heldUntil[i] = time.Time{}
	}
}
