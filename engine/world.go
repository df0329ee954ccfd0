package engine

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/status"
	"github.com/eniklas/nachtmission/vmath"
)

// World contains the entity table, component stores, resources and systems
// Entities are referenced by id only; liveness is checked through the table
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	kinds        map[core.Entity]core.Kind
	pending      []core.Entity // Destroyed this tick, removed from stores at flush

	Resources  Resource
	Components ComponentStore
	Log        zerolog.Logger

	eventQueue *event.EventQueue
	frame      int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world wired to a config and logger
// Collaborators default to no-ops until set on Resources
func NewWorld(cfg *config.Config, log zerolog.Logger) *World {
	w := &World{
		nextEntityID: 1,
		kinds:        make(map[core.Entity]core.Kind),
		Components:   newComponentStore(),
		Log:          log,
		eventQueue:   event.NewEventQueue(),
		systems:      make([]System, 0),
	}
	w.Resources = Resource{
		Time:     &TimeResource{},
		Config:   cfg,
		Input:    &InputResource{},
		Score:    &ScoreResource{},
		Chopper:  &ChopperSnapshot{},
		Menu:     &MenuResource{},
		Rand:     vmath.NewFastRand(cfg.Game.Seed),
		Status:   status.NewRegistry(),
		Effects:  NopEffects{},
		Listener: NopListener{},
	}
	return w
}

// CreateEntity reserves a new entity id of the given kind
func (w *World) CreateEntity(kind core.Kind) core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.kinds[id] = kind
	return id
}

// Kind returns the entity kind, false once destroyed
func (w *World) Kind(e core.Entity) (core.Kind, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	k, ok := w.kinds[e]
	return k, ok
}

// Alive reports whether the entity exists and has not been destroyed this tick
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.Kind(e)
	return ok
}

// DestroyEntity marks an entity dead immediately and defers component removal
// Destroying an already dead entity is a no-op and returns false
func (w *World) DestroyEntity(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.kinds[e]; !ok {
		return false
	}
	delete(w.kinds, e)
	w.pending = append(w.pending, e)
	return true
}

// FlushDestroyed removes components of entities destroyed since the last flush
func (w *World) FlushDestroyed() int {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(pending) == 0 {
		return 0
	}
	for _, s := range w.Components.all() {
		s.RemoveBatch(pending)
	}
	return len(pending)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.kinds = make(map[core.Entity]core.Kind)
	w.pending = nil
	w.mu.Unlock()

	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.kinds)
}

// CountKind returns the number of live entities of a kind
func (w *World) CountKind(kind core.Kind) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, k := range w.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort keeps registration order among equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Renderers read entity state through this
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller holds the update lock
// While paused only Unpausable systems run
func (w *World) UpdateLocked(paused bool) {
	for _, system := range w.Systems() {
		if paused {
			if u, ok := system.(Unpausable); !ok || !u.RunsWhilePaused() {
				continue
			}
		}
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frame
}

func (w *World) advanceFrame() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frame++
	return w.frame
}

// EventQueue exposes the queue to the router
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// SnapshotChopper copies the helicopter's state into the Chopper resource
// Systems running later in the tick read this prior-tick view
func (w *World) SnapshotChopper() {
	snap := w.Resources.Chopper
	onboard := w.Resources.Score.Onboard

	entities := w.Components.Chopper.GetAllEntities()
	for _, e := range entities {
		if !w.Alive(e) {
			continue
		}
		c, _ := w.Components.Chopper.GetComponent(e)
		k, _ := w.Components.Kinetic.GetComponent(e)
		*snap = ChopperSnapshot{
			Entity:    e,
			Alive:     true,
			Pos:       k.Pos,
			Vel:       k.Vel,
			Facing:    c.Facing,
			Grounded:  c.Grounded,
			Crashing:  c.Crashing,
			OverRiver: c.OverRiver,
			Onboard:   onboard,
			Capacity:  c.Capacity,
		}
		return
	}
	*snap = ChopperSnapshot{Onboard: onboard}
}
