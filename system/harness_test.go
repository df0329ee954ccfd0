package system

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/vmath"
)

const testTick = time.Second / 60

type recordingEffects struct {
	effects []core.EffectType
	sounds  []core.SoundType
}

func (r *recordingEffects) PlayEffect(fx core.EffectType, _ vmath.Vec3F) {
	r.effects = append(r.effects, fx)
}

func (r *recordingEffects) PlaySound(snd core.SoundType, _ vmath.Vec3F) {
	r.sounds = append(r.sounds, snd)
}

func (r *recordingEffects) countSound(snd core.SoundType) int {
	n := 0
	for _, s := range r.sounds {
		if s == snd {
			n++
		}
	}
	return n
}

type recordingScore struct {
	events []engine.ScoreEvent
}

func (r *recordingScore) OnScoreEvent(ev engine.ScoreEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingScore) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// harness is a fully wired world driven tick by tick
type harness struct {
	t       *testing.T
	world   *engine.World
	sched   *engine.ClockScheduler
	effects *recordingEffects
	score   *recordingScore
}

func allSystems(w *engine.World) []engine.System {
	return []engine.System{
		NewMenuSystem(w),
		NewDirectorSystem(w),
		NewChopperSystem(w),
		NewRotorSystem(w),
		NewPrisonSystem(w),
		NewPrisonerSystem(w),
		NewTurretSystem(w),
		NewTankSystem(w),
		NewSoftCollisionSystem(w),
		NewJetSystem(w),
		NewDroneSystem(w),
		NewMissileSystem(w),
		NewProjectileSystem(w),
		NewCollisionSystem(w),
		NewLifetimeSystem(w),
		NewEffectSystem(w),
		NewNotifySystem(w),
	}
}

func newHarness(t *testing.T, mutate func(cfg *config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	w := engine.NewWorld(cfg, zerolog.Nop())
	h := &harness{t: t, world: w, effects: &recordingEffects{}, score: &recordingScore{}}
	w.Resources.Effects = h.effects
	w.Resources.Listener = h.score

	clock := engine.NewPausableClock(engine.NewMockTimeProvider(time.Unix(0, 0)))
	h.sched, _ = engine.NewClockScheduler(w, clock, testTick)
	h.sched.SetResetHook(BuildLevel)
	for _, s := range allSystems(w) {
		h.sched.RegisterSystem(s)
	}
	h.sched.Reset()
	return h
}

// disable switches systems off from the next tick on
func (h *harness) disable(names ...string) {
	for _, name := range names {
		h.world.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: name})
	}
}

func (h *harness) step(in engine.InputResource) {
	h.sched.Tick(testTick, in)
}

func (h *harness) steps(n int, in engine.InputResource) {
	for i := 0; i < n; i++ {
		h.step(in)
	}
}

func (h *harness) chopperEntity() core.Entity {
	h.t.Helper()
	entities := h.world.Components.Chopper.GetAllEntities()
	require.Len(h.t, entities, 1)
	return entities[0]
}

func (h *harness) chopper() (component.ChopperComponent, core.Kinetic) {
	h.t.Helper()
	e := h.chopperEntity()
	c, ok := h.world.Components.Chopper.GetComponent(e)
	require.True(h.t, ok)
	k, ok := h.world.Components.Kinetic.GetComponent(e)
	require.True(h.t, ok)
	return c, k
}

// setChopper edits helicopter state between ticks
func (h *harness) setChopper(fn func(c *component.ChopperComponent, k *core.Kinetic)) {
	h.t.Helper()
	e := h.chopperEntity()
	c, k := h.chopper()
	fn(&c, &k)
	h.world.Components.Chopper.SetComponent(e, c)
	h.world.Components.Kinetic.SetComponent(e, k)
	h.world.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   chopperBoxes(c.Facing),
		Enabled: !c.Crashing,
	})
}

// airborne lifts the helicopter to a hover at x
func (h *harness) airborne(x, y float64) {
	h.setChopper(func(c *component.ChopperComponent, k *core.Kinetic) {
		c.Grounded = false
		k.Pos = vmath.V3F(x, y, 0)
		k.Vel = vmath.Vec3F{}
	})
}

func (h *harness) assertCounterInvariant() {
	h.t.Helper()
	sc := h.world.Resources.Score
	require.Equal(h.t, sc.Total, sc.Captive()+sc.Onboard+sc.Rescued+sc.Killed)
	require.GreaterOrEqual(h.t, sc.Onboard, 0)
	require.GreaterOrEqual(h.t, sc.Rescued, 0)
	require.GreaterOrEqual(h.t, sc.Killed, 0)
}

// newUnitWorld is a bare world for driving single systems by hand
func newUnitWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld(config.Default(), zerolog.Nop())
	w.Resources.Time.Update(testTick, testTick, 0, false)
	w.Resources.Score.Reset(w.Resources.Config.Game.Lives, w.Resources.Config.TotalPrisoners(), "test")
	return w
}
