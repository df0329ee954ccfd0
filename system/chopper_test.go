package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/vmath"
)

func TestChopperSpeedStaysWithinLimits(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	cfg := h.world.Resources.Config.Chopper
	h.airborne(200, 10)

	check := func(in engine.InputResource, ticks int) {
		for i := 0; i < ticks; i++ {
			h.step(in)
			_, k := h.chopper()
			require.LessOrEqual(t, vmath.Abs(k.Vel.X), cfg.MaxHSpeed, "tick %d", i)
			require.LessOrEqual(t, vmath.Abs(k.Vel.Y), cfg.MaxVSpeed, "tick %d", i)
		}
	}

	check(engine.InputResource{Horizontal: 1, Vertical: 1}, 300)
	check(engine.InputResource{Vertical: -1}, 300)

	c, _ := h.chopper()
	assert.False(t, c.Crashing)
	assert.True(t, c.Grounded)
}

func TestChopperPitchBoundedAndSnapsLevel(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	cfg := h.world.Resources.Config.Chopper
	h.airborne(150, 20)

	for i := 0; i < 120; i++ {
		h.step(engine.InputResource{Horizontal: 1})
		c, _ := h.chopper()
		require.GreaterOrEqual(t, c.Pitch, cfg.MinPitch)
		require.LessOrEqual(t, c.Pitch, cfg.MaxPitch)
	}
	c, _ := h.chopper()
	assert.Equal(t, cfg.MaxPitch, c.Pitch, "held input saturates at the bound")
	assert.Equal(t, component.PitchLeveling, c.PitchState, "pitching ends at the bound")

	h.steps(10, engine.InputResource{Horizontal: 1})
	c, _ = h.chopper()
	assert.Equal(t, cfg.MaxPitch, c.Pitch, "still held at the bound")
	assert.Equal(t, component.PitchLeveling, c.PitchState)

	snapped := false
	for i := 0; i < 300; i++ {
		h.step(engine.InputResource{})
		c, _ := h.chopper()
		require.GreaterOrEqual(t, c.Pitch, cfg.MinPitch)
		require.LessOrEqual(t, c.Pitch, cfg.MaxPitch)
		if c.PitchState == component.PitchLevel {
			snapped = true
			require.Equal(t, 0.0, c.Pitch)
			require.Equal(t, c.Facing.Yaw(), c.Yaw)
		}
	}
	assert.True(t, snapped)
}

func TestChopperGroundedLevelsFaster(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	h.setChopper(func(c *component.ChopperComponent, k *core.Kinetic) {
		c.Pitch = 20
		c.PitchState = component.PitchPitching
	})

	h.step(engine.InputResource{Horizontal: 1})

	c, _ := h.chopper()
	assert.Equal(t, component.PitchLeveling, c.PitchState, "grounded ignores horizontal input")
	assert.InDelta(t, 20-3.0/60, c.Pitch, 1e-3)
}

func TestChopperTurnSnapsFacingAndBlocksRetrigger(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	h.airborne(150, 20)

	h.step(engine.InputResource{TurnLeft: true})
	c, _ := h.chopper()
	assert.Equal(t, component.RotateLeft, c.Rotating)
	assert.Equal(t, core.FacingForward, c.Facing, "turn takes the rotation time")

	// 0.1s turn plus 0.1s cooldown at 60 Hz; a held key inside the window is ignored
	for i := 0; i < 8; i++ {
		h.step(engine.InputResource{TurnLeft: true})
	}
	c, _ = h.chopper()
	assert.Equal(t, core.FacingLeft, c.Facing)
	assert.Equal(t, core.FacingLeft.Yaw(), c.Yaw)
	assert.Equal(t, 0.0, c.Pitch)

	h.steps(10, engine.InputResource{})
	h.step(engine.InputResource{TurnRight: true})
	h.steps(10, engine.InputResource{})
	c, _ = h.chopper()
	assert.Equal(t, core.FacingForward, c.Facing, "right from left returns to forward")
}

func TestChopperGroundedCannotTurn(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")

	h.step(engine.InputResource{TurnLeft: true})

	c, _ := h.chopper()
	assert.Equal(t, component.RotateNone, c.Rotating)
	assert.Equal(t, core.FacingForward, c.Facing)
}

func TestChopperRightBoundaryZeroesVelocity(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	right := h.world.Resources.Config.World.RightBoundary
	h.airborne(right, 10)

	h.step(engine.InputResource{Horizontal: 1})

	_, k := h.chopper()
	assert.Equal(t, 0.0, k.Vel.X)
	assert.Equal(t, right, k.Pos.X)
}

func TestChopperLeftBoundaryZeroesVelocity(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	left := h.world.Resources.Config.World.LeftBoundary
	h.airborne(left, 30)

	h.step(engine.InputResource{Horizontal: -1})

	_, k := h.chopper()
	assert.Equal(t, 0.0, k.Vel.X)
	assert.Equal(t, left, k.Pos.X)
}

func TestChopperCeilingStopsClimb(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	ceiling := h.world.Resources.Config.World.Ceiling
	h.airborne(200, ceiling)

	h.step(engine.InputResource{Vertical: 1})

	_, k := h.chopper()
	assert.Equal(t, 0.0, k.Vel.Y)
	assert.Equal(t, ceiling, k.Pos.Y)
}

// landAt drops the helicopter onto open ground at the given horizontal speed
func landAt(h *harness, x, speed float64) {
	ground := h.world.Resources.Config.World.Ground
	h.setChopper(func(c *component.ChopperComponent, k *core.Kinetic) {
		c.Grounded = false
		k.Pos = vmath.V3F(x, ground+0.01, 0)
		k.Vel = vmath.V3F(speed, -5, 0)
	})
	h.step(engine.InputResource{})
}

func TestChopperLandingBelowCrashSpeedIsSafe(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")

	landAt(h, 0, 39)

	c, k := h.chopper()
	assert.True(t, c.Grounded)
	assert.True(t, c.JustLanded)
	assert.False(t, c.Crashing)
	assert.Equal(t, 0.0, k.Vel.X)
}

func TestChopperLandingAboveCrashSpeedCrashes(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")

	landAt(h, 0, 41)

	c, _ := h.chopper()
	assert.True(t, c.Crashing)
	assert.False(t, c.Grounded)
	assert.Equal(t, int64(1), h.world.Resources.Status.Ints.Get("chopper.crashes").Load())
}

func TestChopperCannotLandOnRiver(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	world := h.world.Resources.Config.World
	mid := (world.LeftRiverBoundary + world.RightRiverBoundary) / 2

	landAt(h, mid, 0)

	c, k := h.chopper()
	assert.False(t, c.Grounded)
	assert.False(t, c.Crashing)
	assert.True(t, c.OverRiver)
	assert.Equal(t, world.Ground, k.Pos.Y)
}

func TestChopperTakeOffAndLandingDriveRotor(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	cfg := h.world.Resources.Config.Rotor
	assert.Equal(t, cfg.MinSpeed, MainRotorSpeed(h.world))

	// Spin-up takes three seconds
	h.steps(240, engine.InputResource{Vertical: 1})
	assert.Equal(t, cfg.MaxSpeed, MainRotorSpeed(h.world))

	h.steps(600, engine.InputResource{Vertical: -1})
	c, _ := h.chopper()
	require.True(t, c.Grounded)
	assert.Equal(t, cfg.MinSpeed, MainRotorSpeed(h.world))
}

func TestChopperFireRespectsGuards(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	shots := h.world.Resources.Status.Ints.Get("chopper.shots")

	h.step(engine.InputResource{Fire: true})
	assert.Equal(t, int64(0), shots.Load(), "grounded cannot fire")

	h.airborne(200, 20)
	h.step(engine.InputResource{Fire: true})
	assert.Equal(t, int64(0), shots.Load(), "menu guard still active")

	h.steps(20, engine.InputResource{})
	h.step(engine.InputResource{Fire: true})
	assert.Equal(t, int64(1), shots.Load())
	assert.Equal(t, 1, h.world.CountKind(core.KindProjectile))
	assert.Equal(t, 1, h.effects.countSound(core.SoundShot))
}

func TestChopperSideFireCarriesVelocityBias(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	h.steps(20, engine.InputResource{})
	h.airborne(200, 20)
	h.setChopper(func(c *component.ChopperComponent, k *core.Kinetic) {
		c.Facing = core.FacingRight
		c.Yaw = core.FacingRight.Yaw()
		k.Vel.X = 20
	})

	h.step(engine.InputResource{Fire: true})

	bullets := h.world.Components.Projectile.GetAllEntities()
	require.Len(t, bullets, 1)
	k, _ := h.world.Components.Kinetic.GetComponent(bullets[0])
	cfg := h.world.Resources.Config.Chopper
	assert.Greater(t, k.Vel.X, cfg.BulletSpeed, "shooter velocity is added")
	assert.False(t, k.Gravity)

	c, _ := h.chopper()
	assert.False(t, c.Crashing, "own bullets never hit the helicopter")
}

func TestResetChopperIsIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	h.airborne(-50, 25)
	h.setChopper(func(c *component.ChopperComponent, k *core.Kinetic) {
		c.Facing = core.FacingLeft
		c.Pitch = 12
		k.Vel = vmath.V3F(-20, 3, 0)
	})
	bullet := spawnBullet(h.world, vmath.V3F(-40, 20, 0), vmath.V3F(-65, 0, 0), false, core.KindChopper)
	e := h.chopperEntity()

	snapshot := func() (component.ChopperComponent, core.Kinetic, component.ColliderComponent) {
		c, _ := h.world.Components.Chopper.GetComponent(e)
		k, _ := h.world.Components.Kinetic.GetComponent(e)
		col, _ := h.world.Components.Collider.GetComponent(e)
		return c, k, col
	}

	resetChopper(h.world, e)
	c1, k1, col1 := snapshot()
	assert.False(t, h.world.Alive(bullet), "helicopter bullets are purged")
	assert.True(t, c1.Grounded)
	assert.Equal(t, core.FacingForward, c1.Facing)
	assert.Equal(t, h.world.Resources.Config.World.LandingPadX, k1.Pos.X)

	resetChopper(h.world, e)
	c2, k2, col2 := snapshot()
	assert.Equal(t, c1, c2)
	assert.Equal(t, k1, k2)
	assert.Equal(t, col1, col2)
}

func countEffect(r *recordingEffects, fx core.EffectType) int {
	n := 0
	for _, e := range r.effects {
		if e == fx {
			n++
		}
	}
	return n
}

func TestCrashSequenceCostsLifeAndRespawns(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	h.step(engine.InputResource{})
	sc := h.world.Resources.Score
	sc.Onboard = 3
	h.airborne(50, 20)

	require.True(t, CrashChopper(h.world, h.chopperEntity(), core.KindJet))
	assert.False(t, CrashChopper(h.world, h.chopperEntity(), core.KindJet), "second request is a no-op")

	h.steps(180, engine.InputResource{})
	c, _ := h.chopper()
	require.True(t, c.Crashing)
	assert.True(t, c.HasExploded)
	assert.Equal(t, 0.0, MainRotorSpeed(h.world), "rotor winds down completely")

	h.steps(250, engine.InputResource{})
	c, k := h.chopper()
	assert.False(t, c.Crashing)
	assert.True(t, c.Grounded)
	assert.Equal(t, core.FacingForward, c.Facing)
	assert.Equal(t, h.world.Resources.Config.World.LandingPadX, k.Pos.X)
	assert.Equal(t, h.world.Resources.Config.Rotor.MinSpeed, MainRotorSpeed(h.world))

	assert.Equal(t, 1, countEffect(h.effects, core.EffectBigExplosion), "one explosion per crash")
	assert.Equal(t, 2, sc.Lives)
	assert.Equal(t, 1, sc.LivesLost)
	assert.Equal(t, 3, sc.Killed, "onboard prisoners die with the helicopter")
	assert.Equal(t, 0, sc.Onboard)
	assert.False(t, sc.GameOver)
	assert.Equal(t, 1, h.score.count(event.EventChopperDestroyed))
	h.assertCounterInvariant()
}

func TestLastLifeEndsGameOnce(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) { cfg.Game.Lives = 1 })
	h.disable("director")
	h.airborne(50, 20)

	require.True(t, CrashChopper(h.world, h.chopperEntity(), core.KindTank))
	h.steps(500, engine.InputResource{})

	sc := h.world.Resources.Score
	assert.True(t, sc.GameOver)
	assert.Equal(t, core.OutcomeGameOver, sc.Outcome)
	assert.Equal(t, 0, sc.Lives)
	assert.Equal(t, 1, h.score.count(event.EventGameOver))

	c, _ := h.chopper()
	assert.True(t, c.Crashing, "final wreck stays down")
}

func TestChopperReleasedAfterGameOver(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	sc := h.world.Resources.Score
	sc.Rescued = sc.Total - 1
	sc.Onboard = 1
	h.steps(60, engine.InputResource{})
	require.True(t, sc.GameOver)
	require.Equal(t, core.OutcomePerfect, sc.Outcome)

	_, before := h.chopper()
	h.steps(120, engine.InputResource{Vertical: 1})
	_, after := h.chopper()
	assert.Equal(t, before.Pos, after.Pos, "no take-off after game over")

	h.airborne(100, 20)
	shots := h.world.Resources.Status.Ints.Get("chopper.shots")
	h.steps(30, engine.InputResource{Horizontal: 1})
	h.step(engine.InputResource{Fire: true})
	_, k := h.chopper()
	assert.Equal(t, 100.0, k.Pos.X)
	assert.Equal(t, int64(0), shots.Load())

	assert.False(t, CrashChopper(h.world, h.chopperEntity(), core.KindJet))
	assert.Equal(t, h.world.Resources.Config.Game.Lives, sc.Lives)
	assert.Equal(t, 0, sc.LivesLost)
	assert.Equal(t, core.OutcomePerfect, sc.Outcome)
	assert.Equal(t, 0, h.score.count(event.EventChopperDestroyed))
}
