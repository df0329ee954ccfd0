package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/vmath"
)

// parkAt sets the helicopter down in enemy territory facing f
func parkAt(h *harness, x float64, f core.Facing) {
	ground := h.world.Resources.Config.World.Ground
	h.setChopper(func(c *component.ChopperComponent, k *core.Kinetic) {
		c.Grounded = true
		c.JustLanded = false
		c.Facing = f
		c.Yaw = f.Yaw()
		k.Pos = vmath.V3F(x, ground, 0)
		k.Vel = vmath.Vec3F{}
	})
}

func freePrisoner(h *harness, x float64) core.Entity {
	return spawnPrisoner(h.world, vmath.V3F(x, 1, 2.5), component.PrisonerComponent{
		State:    component.PrisonerFree,
		Dir:      core.DirForward,
		DirTimer: 10,
		FinalZ:   2.5,
	})
}

func TestSideFacingBoardsWithBothColliders(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "prisoner")
	parkAt(h, 0, core.FacingLeft)
	p := freePrisoner(h, -1)

	h.step(engine.InputResource{})

	assert.False(t, h.world.Alive(p))
	assert.Equal(t, 1, h.world.Resources.Score.Onboard)
	assert.Equal(t, 1, h.score.count(event.EventPrisonerBoarded))
	assert.Equal(t, 1, h.effects.countSound(core.SoundBoard))
	h.assertCounterInvariant()
}

func TestSideFacingIgnoresSingleOverlap(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "prisoner")
	parkAt(h, 0, core.FacingLeft)
	// Under the tail: body overlaps, cockpit does not
	p := freePrisoner(h, 2.5)

	h.step(engine.InputResource{})

	assert.True(t, h.world.Alive(p))
	assert.Equal(t, 0, h.world.Resources.Score.Onboard)
	pc, _ := h.world.Components.Prisoner.GetComponent(p)
	assert.Equal(t, 1, pc.ArmCount)
}

func TestForwardFacingBoardsWithSingleOverlap(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "prisoner")
	parkAt(h, 0, core.FacingForward)
	p := freePrisoner(h, 1.6)

	h.step(engine.InputResource{})

	assert.False(t, h.world.Alive(p))
	assert.Equal(t, 1, h.world.Resources.Score.Onboard)
}

func TestFullHelicopterLeavesPrisonerBehind(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "prisoner")
	h.world.Resources.Score.Onboard = h.world.Resources.Config.Chopper.Capacity
	parkAt(h, 0, core.FacingForward)
	p := freePrisoner(h, 0)

	h.step(engine.InputResource{})

	assert.True(t, h.world.Alive(p))
	assert.Equal(t, h.world.Resources.Config.Chopper.Capacity, h.world.Resources.Score.Onboard)
}

func TestLandingOnPrisonerKillsIt(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "prisoner")
	p := freePrisoner(h, 0.5)

	landAt(h, 0, 0)

	assert.False(t, h.world.Alive(p))
	assert.Equal(t, 0, h.world.Resources.Score.Onboard)
	assert.Equal(t, 1, h.world.Resources.Score.Killed)
	assert.Equal(t, 1, h.effects.countSound(core.SoundScream))
	assert.Equal(t, 1, h.score.count(event.EventPrisonerKilled))
	h.assertCounterInvariant()
}

func TestUnloadOnPadCountsRescueAndRunsToBase(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	sc := h.world.Resources.Score
	sc.Onboard = 2

	h.steps(40, engine.InputResource{})
	assert.Equal(t, 1, sc.Rescued)
	assert.Equal(t, 1, sc.Onboard)
	assert.Equal(t, 1, h.world.CountKind(core.KindPrisoner))

	h.steps(30, engine.InputResource{})
	assert.Equal(t, 2, sc.Rescued)
	assert.Equal(t, 0, sc.Onboard)
	assert.Equal(t, 2, h.effects.countSound(core.SoundUnload))
	h.assertCounterInvariant()

	// 38 units to the entrance at walking pace, then through to the wall
	h.steps(1200, engine.InputResource{})
	assert.Equal(t, 0, h.world.CountKind(core.KindPrisoner))
	assert.Equal(t, 2, h.score.count(event.EventPrisonerEnteredBase))
	assert.Equal(t, 2, sc.Rescued, "entering the base does not count twice")
}

func TestRescuedPrisonerArrivesOnBothAxesTogether(t *testing.T) {
	w := newUnitWorld(t)
	world := w.Resources.Config.World
	pos := vmath.V3F(world.LandingPadX+2, 1, 0)

	p := rescuedPrisoner(w, pos)

	xTime := (world.BaseEntranceX - pos.X) / w.Resources.Config.Prisoner.Speed
	zTime := (world.BaseEntranceZ - pos.Z) / (w.Resources.Config.Prisoner.Speed * p.ZSpeedFactor)
	assert.InDelta(t, xTime, zTime, 1e-9)
	assert.Equal(t, core.DirRight, p.Dir)
	assert.True(t, p.Rescued())
}

func TestRescuedPrisonerHeadsTowardEntranceOnEitherSide(t *testing.T) {
	w := newUnitWorld(t)
	world := &w.Resources.Config.World
	world.BaseEntranceX = world.LandingPadX - 40
	pos := vmath.V3F(world.LandingPadX, 1, 0)

	p := rescuedPrisoner(w, pos)
	assert.Equal(t, core.DirLeft, p.Dir)

	world.BaseEntranceX = pos.X
	p = rescuedPrisoner(w, pos)
	assert.Equal(t, core.DirForward, p.Dir, "entrance straight ahead needs no sideways walk")
}

func TestRescueOfLastPrisonerEndsGameExactlyOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	sc := h.world.Resources.Score
	sc.Killed = 2
	sc.Rescued = sc.Total - 3
	sc.Onboard = 1
	require.Equal(t, 0, sc.Captive())

	h.steps(120, engine.InputResource{})

	assert.True(t, sc.GameOver)
	assert.Equal(t, core.OutcomeGameOver, sc.Outcome, "two prisoners were lost")
	assert.Equal(t, 3, sc.Lives, "game over regardless of remaining lives")
	assert.Equal(t, 1, h.score.count(event.EventGameOver))

	// Later score activity must not re-trigger
	scoreLoseLife(h.world, h.chopperEntity(), vmath.Vec3F{})
	checkGameOver(h.world)
	h.steps(10, engine.InputResource{})
	assert.Equal(t, 1, h.score.count(event.EventGameOver))
	assert.Equal(t, 3, sc.Lives, "a decided game keeps its lives")
	assert.Equal(t, 0, sc.LivesLost)
	assert.Equal(t, 0, h.score.count(event.EventChopperDestroyed))
}

func TestPerfectRescueOutcome(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	sc := h.world.Resources.Score
	sc.Rescued = sc.Total - 1
	sc.Onboard = 1

	h.steps(60, engine.InputResource{})

	require.True(t, sc.GameOver)
	assert.Equal(t, core.OutcomePerfect, sc.Outcome)
	for _, ev := range h.score.events {
		if ev.Type == event.EventGameOver {
			assert.Equal(t, core.OutcomePerfect, ev.Outcome)
			assert.Equal(t, sc.Total, ev.Counters.Rescued)
		}
	}
}

func TestScoreEventsKeepCounterInvariant(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "prisoner")
	parkAt(h, 0, core.FacingForward)
	freePrisoner(h, 0)
	freePrisoner(h, 1)
	h.step(engine.InputResource{})

	victim := freePrisoner(h, -60)
	pk, _ := h.world.Components.Kinetic.GetComponent(victim)
	require.True(t, killPrisoner(h.world, victim, pk.Pos))
	assert.False(t, killPrisoner(h.world, victim, pk.Pos), "double kill is a no-op")
	h.step(engine.InputResource{})

	scoreLoseLife(h.world, h.chopperEntity(), vmath.Vec3F{})
	h.step(engine.InputResource{})

	require.NotEmpty(t, h.score.events)
	for _, ev := range h.score.events {
		c := ev.Counters
		assert.Equal(t, c.Total, c.Captive+c.Onboard+c.Rescued+c.Killed, "event %v", ev.Type)
	}
	assert.Equal(t, 3, h.world.Resources.Score.Killed)
}
