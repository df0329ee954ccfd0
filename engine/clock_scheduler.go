package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// ClockScheduler drives the world on a fixed tick
// Tick can be called directly for deterministic stepping; Run drives it from a ticker
type ClockScheduler struct {
	world  *World
	router *EventRouter
	clock  *PausableClock

	tickInterval time.Duration
	tickCount    atomic.Uint64

	// Builds the initial level after the world is cleared
	resetHook func(w *World)

	// Signals a completed tick to the renderer, never blocks
	updateDone chan struct{}

	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statEvents   *atomic.Int64
	statDropped  *atomic.Int64
}

// NewClockScheduler creates a scheduler and returns the update-done signal channel
func NewClockScheduler(world *World, clock *PausableClock, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	reg := world.Resources.Status
	cs := &ClockScheduler{
		world:        world,
		router:       NewEventRouter(world.EventQueue()),
		clock:        clock,
		tickInterval: tickInterval,
		updateDone:   make(chan struct{}, 1),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statEntities: reg.Ints.Get("engine.entities"),
		statEvents:   reg.Ints.Get("engine.events"),
		statDropped:  reg.Ints.Get("engine.events_dropped"),
	}
	return cs, cs.updateDone
}

// RegisterEventHandler adds a handler to the router, call before the first Reset
func (cs *ClockScheduler) RegisterEventHandler(handler EventHandler) {
	cs.router.Register(handler)
}

// RegisterSystem adds a system to the world and routes its events
func (cs *ClockScheduler) RegisterSystem(system System) {
	cs.world.AddSystem(system)
	cs.router.Register(system)
}

// SetResetHook installs the level builder run on every Reset
func (cs *ClockScheduler) SetResetHook(fn func(w *World)) {
	cs.resetHook = fn
}

// TickInterval returns the configured fixed step
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns ticks since the last reset
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Reset discards the session and rebuilds the level
func (cs *ClockScheduler) Reset() {
	w := cs.world
	cfg := w.Resources.Config

	// Stale events from the previous session
	_ = w.EventQueue().Consume()

	w.Clear()
	w.Resources.Score.Reset(cfg.Game.Lives, cfg.TotalPrisoners(), uuid.NewString())
	*w.Resources.Menu = MenuResource{}
	*w.Resources.Input = InputResource{}
	*w.Resources.Time = TimeResource{}
	*w.Resources.Rand = *vmath.NewFastRand(cfg.Game.Seed)
	cs.tickCount.Store(0)
	cs.clock.Resume()

	if cs.resetHook != nil {
		cs.resetHook(w)
	}
	w.SnapshotChopper()

	w.PushEvent(event.EventGameReset, nil)
	cs.router.DispatchAll()
	w.FlushDestroyed()

	w.Log.Info().
		Str("session_id", w.Resources.Score.SessionID).
		Int("entities", w.EntityCount()).
		Int("prisoners", w.Resources.Score.Total).
		Msg("session reset")
}

// Tick advances the simulation by one step of realDt with the given input sample
// Game time is frozen while the menu is open; real time always advances
func (cs *ClockScheduler) Tick(realDt time.Duration, in InputResource) {
	w := cs.world
	if realDt < 0 {
		realDt = 0
	}
	if realDt > parameter.MaxTickDelta {
		realDt = parameter.MaxTickDelta
	}

	paused := w.Resources.Menu.Paused
	gameDt := realDt
	if paused {
		gameDt = 0
	}

	w.Resources.Time.Update(gameDt, realDt, w.FrameNumber(), paused)
	*w.Resources.Input = in
	w.SnapshotChopper()

	events := cs.router.DispatchAll()
	w.UpdateLocked(paused)
	events += cs.router.DispatchAll()
	w.FlushDestroyed()

	w.Resources.Input.Clear()
	w.advanceFrame()
	ticks := cs.tickCount.Add(1)

	cs.statTicks.Store(int64(ticks))
	cs.statEntities.Store(int64(w.EntityCount()))
	cs.statEvents.Add(int64(events))
	cs.statDropped.Store(int64(w.EventQueue().Dropped()))

	// Keep the wall clock in step with the menu so Run measures game time correctly
	if w.Resources.Menu.Paused {
		cs.clock.Pause()
	} else {
		cs.clock.Resume()
	}
}

// Run ticks the world until ctx is cancelled
// input is sampled once per tick under the world lock
func (cs *ClockScheduler) Run(ctx context.Context, input func() InputResource) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	_ = cs.clock.RealDelta()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		realDt := cs.clock.RealDelta()
		cs.world.RunSafe(func() {
			var in InputResource
			if input != nil {
				in = input()
			}
			cs.Tick(realDt, in)
		})

		select {
		case cs.updateDone <- struct{}{}:
		default:
		}
	}
}
