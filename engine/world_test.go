package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/vmath"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.Default(), zerolog.Nop())
}

// recordingSystem logs its updates and received events into a shared trace
type recordingSystem struct {
	name      string
	priority  int
	unpaused  bool
	trace     *[]string
	events    []event.EventType
	received  []event.GameEvent
	initCalls int
}

func (s *recordingSystem) Init() { s.initCalls++ }
func (s *recordingSystem) Name() string { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update() { *s.trace = append(*s.trace, s.name) }
func (s *recordingSystem) EventTypes() []event.EventType { return s.events }
func (s *recordingSystem) HandleEvent(ev event.GameEvent) {
	s.received = append(s.received, ev)
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}
func (s *recordingSystem) RunsWhilePaused() bool { return s.unpaused }

func TestDestroyIsImmediateForLivenessDeferredForStores(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity(core.KindTank)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: vmath.V3F(1, 2, 3)})

	require.True(t, w.Alive(e))
	assert.True(t, w.DestroyEntity(e))
	assert.False(t, w.Alive(e))
	assert.False(t, w.DestroyEntity(e), "second destroy is a no-op")

	_, ok := w.Components.Kinetic.GetComponent(e)
	assert.True(t, ok, "components survive until flush")

	assert.Equal(t, 1, w.FlushDestroyed())
	_, ok = w.Components.Kinetic.GetComponent(e)
	assert.False(t, ok)
	assert.Equal(t, 0, w.FlushDestroyed())
}

func TestEntityIDsAreNeverReusedWithinSession(t *testing.T) {
	w := newTestWorld(t)
	a := w.CreateEntity(core.KindProjectile)
	w.DestroyEntity(a)
	w.FlushDestroyed()
	b := w.CreateEntity(core.KindProjectile)
	assert.NotEqual(t, a, b)
	assert.False(t, w.Alive(a))
}

func TestCountKind(t *testing.T) {
	w := newTestWorld(t)
	w.CreateEntity(core.KindTank)
	w.CreateEntity(core.KindTank)
	j := w.CreateEntity(core.KindJet)
	w.DestroyEntity(j)

	assert.Equal(t, 2, w.CountKind(core.KindTank))
	assert.Equal(t, 0, w.CountKind(core.KindJet))
	assert.Equal(t, 2, w.EntityCount())
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld(t)
	var trace []string
	w.AddSystem(&recordingSystem{name: "collision", priority: 500, trace: &trace})
	w.AddSystem(&recordingSystem{name: "chopper", priority: 100, trace: &trace})
	w.AddSystem(&recordingSystem{name: "rotor", priority: 110, trace: &trace})
	w.AddSystem(&recordingSystem{name: "chopper2", priority: 100, trace: &trace})

	w.UpdateLocked(false)
	assert.Equal(t, []string{"chopper", "chopper2", "rotor", "collision"}, trace)
}

func TestPausedUpdateRunsOnlyUnpausableSystems(t *testing.T) {
	w := newTestWorld(t)
	var trace []string
	w.AddSystem(&recordingSystem{name: "menu", priority: 10, unpaused: true, trace: &trace})
	w.AddSystem(&recordingSystem{name: "chopper", priority: 100, trace: &trace})

	w.UpdateLocked(true)
	assert.Equal(t, []string{"menu"}, trace)
}

func TestPushEventStampsFrame(t *testing.T) {
	w := newTestWorld(t)
	w.advanceFrame()
	w.advanceFrame()
	w.PushEvent(event.EventScoreChanged, &event.ScorePayload{})

	evs := w.EventQueue().Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, int64(2), evs[0].Frame)
	assert.Equal(t, event.EventScoreChanged, evs[0].Type)
}

func TestClearResetsEverything(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity(core.KindPrisoner)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{})
	w.Clear()

	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.Components.Kinetic.CountEntities())
	assert.Equal(t, core.Entity(1), w.CreateEntity(core.KindChopper))
}
