package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
)

const tick = time.Second / 60

type listener struct {
	mu     sync.Mutex
	events []engine.ScoreEvent
}

func (l *listener) OnScoreEvent(ev engine.ScoreEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *listener) count(t event.EventType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func steps(sim *Simulation, n int, in Input) {
	for i := 0; i < n; i++ {
		sim.Step(tick, in)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Lives = 0

	_, err := New(cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestNewBuildsLevel(t *testing.T) {
	sim, err := New(nil)
	require.NoError(t, err)

	c := sim.Counters()
	assert.Equal(t, 32, c.Total)
	assert.Equal(t, 32, c.Captive)
	assert.Equal(t, 3, c.Lives)

	ch := sim.Chopper()
	assert.True(t, ch.Alive)
	assert.True(t, ch.Grounded)
	assert.Equal(t, core.FacingForward, ch.Facing)
	assert.Equal(t, 200.0, ch.Pos.X)

	assert.Equal(t, 4, sim.CountKind(core.KindPrison))
	assert.Equal(t, 1, sim.CountKind(core.KindTurret))
	assert.False(t, sim.Paused())
	assert.NotEmpty(t, sim.Score().SessionID)
}

func TestEntitiesAreOrdered(t *testing.T) {
	sim, err := New(nil)
	require.NoError(t, err)

	views := sim.Entities()
	require.NotEmpty(t, views)
	for i := 1; i < len(views); i++ {
		assert.Less(t, views[i-1].Entity, views[i].Entity)
	}
}

func TestTakeOffSpinsRotor(t *testing.T) {
	l := &listener{}
	sim, err := New(nil, WithListener(l))
	require.NoError(t, err)
	idle := sim.RotorSpeed()

	steps(sim, 60, Input{Vertical: 1})

	ch := sim.Chopper()
	assert.False(t, ch.Grounded)
	assert.Greater(t, ch.Pos.Y, 2.0)
	assert.Greater(t, sim.RotorSpeed(), idle)
}

func TestResetStartsNewSession(t *testing.T) {
	sim, err := New(nil)
	require.NoError(t, err)
	first := sim.Score().SessionID

	steps(sim, 60, Input{Vertical: 1, Horizontal: -1})
	sim.Reset()

	assert.NotEqual(t, first, sim.Score().SessionID)
	ch := sim.Chopper()
	assert.True(t, ch.Grounded)
	assert.Equal(t, 200.0, ch.Pos.X)
	assert.Equal(t, 32, sim.Counters().Captive)
}

func TestPauseFreezesSimulation(t *testing.T) {
	l := &listener{}
	sim, err := New(nil, WithListener(l))
	require.NoError(t, err)
	steps(sim, 30, Input{Vertical: 1})

	sim.Step(tick, Input{MenuToggle: true})
	require.True(t, sim.Paused())
	before := sim.Chopper().Pos

	steps(sim, 60, Input{Vertical: 1})
	assert.Equal(t, before, sim.Chopper().Pos)
	assert.Greater(t, sim.TitleZoom(), 0.0)
	assert.Equal(t, 1, l.count(event.EventPauseToggled))
}

func TestRequestSpawnBypassesDisabledDirector(t *testing.T) {
	sim, err := New(nil)
	require.NoError(t, err)

	sim.SetSystemEnabled("director", false)
	sim.RequestSpawn(core.KindTank)
	sim.Step(tick, Input{})

	assert.Equal(t, 1, sim.CountKind(core.KindTank))
	assert.Equal(t, int64(1), sim.Status().Ints.Get("spawn.tanks").Load())
}

func TestStepSecondsMatchesStep(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)
	b, err := New(nil)
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		a.Step(tick, Input{Vertical: 1})
		b.StepSeconds(tick.Seconds(), Input{Vertical: 1})
	}
	assert.InDelta(t, a.Chopper().Pos.Y, b.Chopper().Pos.Y, 1e-6)
}

func TestRunTicksUntilCancelled(t *testing.T) {
	sim, err := New(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- sim.Run(ctx, func() Input { return Input{Vertical: 1} })
	}()

	select {
	case <-sim.UpdateDone():
	case <-time.After(2 * time.Second):
		t.Fatal("no tick completed")
	}
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}
