package engine

import "github.com/eniklas/nachtmission/event"

// EventHandler processes routed events
type EventHandler interface {
	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
	// HandleEvent is called synchronously during dispatch
	HandleEvent(ev event.GameEvent)
}

// System is a unit of per-tick simulation logic
type System interface {
	EventHandler
	Init()
	Name() string
	Priority() int // Lower values run first
	Update()
}

// Unpausable marks systems that keep running while gameplay is paused
type Unpausable interface {
	RunsWhilePaused() bool
}
