package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

func TestDamagedPrisonReleasesCaptivesOverTime(t *testing.T) {
	w := newUnitWorld(t)
	prison := spawnPrison(w, -120, 2, true)
	sys := NewPrisonSystem(w)

	for i := 0; i < 100; i++ {
		sys.Update()
	}
	assert.Equal(t, 0, w.CountKind(core.KindPrisoner), "first release waits one interval")

	for i := 0; i < 400; i++ {
		sys.Update()
	}
	assert.Equal(t, 2, w.CountKind(core.KindPrisoner))
	pc, _ := w.Components.Prison.GetComponent(prison)
	assert.Equal(t, 0, pc.Captives)

	for _, e := range w.Components.Prisoner.GetAllEntities() {
		p, _ := w.Components.Prisoner.GetComponent(e)
		assert.Equal(t, component.PrisonerEmerging, p.State)
		k, _ := w.Components.Kinetic.GetComponent(e)
		assert.Equal(t, w.Resources.Config.World.PrisonZ-parameter.PrisonEmergeDepth, k.Pos.Z)
	}
}

func TestIntactPrisonHoldsCaptives(t *testing.T) {
	w := newUnitWorld(t)
	spawnPrison(w, -120, 8, false)
	sys := NewPrisonSystem(w)

	for i := 0; i < 600; i++ {
		sys.Update()
	}
	assert.Equal(t, 0, w.CountKind(core.KindPrisoner))
}

func TestPrisonCollidersFlattenDuringCrash(t *testing.T) {
	w := newUnitWorld(t)
	prison := spawnPrison(w, -120, 8, false)
	sys := NewPrisonSystem(w)

	sys.HandleEvent(event.GameEvent{Type: event.EventChopperCrashed, Payload: &event.ChopperPayload{}})
	col, _ := w.Components.Collider.GetComponent(prison)
	assert.Equal(t, parameter.PrisonCrashHalfY, col.Boxes[0].Half.Y)

	sys.HandleEvent(event.GameEvent{Type: event.EventChopperRecovered, Payload: &event.ChopperPayload{}})
	col, _ = w.Components.Collider.GetComponent(prison)
	assert.Equal(t, parameter.PrisonHalfY, col.Boxes[0].Half.Y)
}

func TestEmergingPrisonerReachesLaneAndFrees(t *testing.T) {
	w := newUnitWorld(t)
	e := spawnPrisoner(w, vmath.V3F(-120, parameter.PrisonerY, 10), newEmergingPrisoner(w))
	sys := NewPrisonerSystem(w)

	// 7.5 units at walking pace
	for i := 0; i < 180; i++ {
		sys.Update()
	}

	p, _ := w.Components.Prisoner.GetComponent(e)
	k, _ := w.Components.Kinetic.GetComponent(e)
	assert.Equal(t, component.PrisonerFree, p.State)
	assert.Equal(t, parameter.PrisonerLaneZ, k.Pos.Z)
	col, _ := w.Components.Collider.GetComponent(e)
	assert.Equal(t, parameter.PrisonerLaneHalfZ, col.Boxes[0].Half.Z, "boarding collider spans the lane")
}

func TestFreePrisonersStayInEnemyTerritory(t *testing.T) {
	w := newUnitWorld(t)
	world := w.Resources.Config.World
	e := spawnPrisoner(w, vmath.V3F(world.LeftRiverBoundary+1, 1, 2.5), component.PrisonerComponent{
		State:    component.PrisonerFree,
		Dir:      core.DirRight,
		DirTimer: 100,
		FinalZ:   2.5,
	})
	sys := NewPrisonerSystem(w)

	sys.Update()
	p, _ := w.Components.Prisoner.GetComponent(e)
	assert.Equal(t, core.DirLeft, p.Dir)
}

func TestPrisonerChasesLandedHelicopter(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	parkAt(h, -200, core.FacingForward)
	p := spawnPrisoner(h.world, vmath.V3F(-210, 1, 2.5), component.PrisonerComponent{
		State:    component.PrisonerFree,
		Dir:      core.DirLeft,
		DirTimer: 100,
		FinalZ:   2.5,
	})

	h.steps(240, engine.InputResource{})

	assert.False(t, h.world.Alive(p))
	assert.Equal(t, 1, h.world.Resources.Score.Onboard)
	h.assertCounterInvariant()
}

func TestPrisonerChaseConditions(t *testing.T) {
	w := newUnitWorld(t)
	sys := NewPrisonerSystem(w).(*PrisonerSystem)
	snap := w.Resources.Chopper

	*snap = engine.ChopperSnapshot{Alive: true, Grounded: true, Pos: vmath.V3F(-200, 2, 0), Capacity: 16}
	assert.True(t, sys.shouldChase())

	snap.Onboard = 16
	assert.False(t, sys.shouldChase(), "full")

	snap.Onboard = 0
	snap.Grounded = false
	assert.False(t, sys.shouldChase(), "airborne")

	snap.Grounded = true
	snap.Pos.X = w.Resources.Config.World.LandingPadX
	assert.False(t, sys.shouldChase(), "friendly territory")

	snap.Pos.X = -200
	snap.Crashing = true
	assert.False(t, sys.shouldChase(), "wrecked")
}

func TestRescuedPrisonerNotKillable(t *testing.T) {
	w := newUnitWorld(t)
	e := spawnPrisoner(w, vmath.V3F(230, 1, 4), component.PrisonerComponent{State: component.PrisonerEnteringBase})

	require.False(t, killPrisoner(w, e, vmath.V3F(230, 1, 4)))
	assert.True(t, w.Alive(e))
	assert.Equal(t, 0, w.Resources.Score.Killed)
}
