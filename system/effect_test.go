package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

func TestEffectRequestSpawnsTimedMarker(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director")
	h.step(engine.InputResource{})

	requestEffect(h.world, core.EffectSmallExplosion, vmath.V3F(-10, 2, 0))
	requestSound(h.world, core.SoundGroundImpact, vmath.V3F(-10, 2, 0))
	h.step(engine.InputResource{})

	assert.Equal(t, 1, h.world.CountKind(core.KindEffect))
	assert.Equal(t, []core.EffectType{core.EffectSmallExplosion}, h.effects.effects)
	assert.Equal(t, 1, h.effects.countSound(core.SoundGroundImpact))

	ticks := int(parameter.SmallExplosionDuration*60) + 2
	h.steps(ticks, engine.InputResource{})
	assert.Zero(t, h.world.CountKind(core.KindEffect))
}

func TestEffectDurations(t *testing.T) {
	assert.Equal(t, parameter.BigExplosionDuration, effectDuration(core.EffectBigExplosion))
	assert.Equal(t, parameter.FireDuration, effectDuration(core.EffectFire))
	assert.Equal(t, parameter.SmallExplosionDuration, effectDuration(core.EffectSmallExplosion))
}

func TestDisabledEffectSystemDropsRequests(t *testing.T) {
	h := newHarness(t, nil)
	h.disable("director", "effect")
	h.step(engine.InputResource{})

	requestEffect(h.world, core.EffectBigExplosion, vmath.Vec3F{})
	h.step(engine.InputResource{})

	assert.Empty(t, h.effects.effects)
	assert.Zero(t, h.world.CountKind(core.KindEffect))
}
