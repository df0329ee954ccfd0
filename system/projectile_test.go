package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

func TestProjectileHitsGround(t *testing.T) {
	w := newUnitWorld(t)
	sys := NewProjectileSystem(w)

	round := spawnBullet(w, vmath.V3F(-50, 0.5, 0), vmath.V3F(0, -65, 0), false, core.KindChopper)
	sys.Update()

	assert.False(t, w.Alive(round))
	assert.EqualValues(t, 1, w.Resources.Status.Ints.Get("projectile.ground_hits").Load())
}

func TestProjectileFallsIntoRiverBed(t *testing.T) {
	w := newUnitWorld(t)
	sys := NewProjectileSystem(w)

	river := (w.Resources.Config.World.LeftRiverBoundary + w.Resources.Config.World.RightRiverBoundary) / 2
	round := spawnBullet(w, vmath.V3F(river, 0.5, 0), vmath.V3F(0, -65, 0), false, core.KindChopper)
	sys.Update()

	assert.True(t, w.Alive(round))
	k, _ := w.Components.Kinetic.GetComponent(round)
	assert.Less(t, k.Pos.Y, 0.0)
}

func TestProjectileLeavesPlayField(t *testing.T) {
	w := newUnitWorld(t)
	sys := NewProjectileSystem(w)

	x := w.Resources.Config.World.RightBoundary + parameter.ProjectileFarMargin - 0.5
	round := spawnBullet(w, vmath.V3F(x, 10, 0), vmath.V3F(65, 0, 0), false, core.KindTank)
	sys.Update()

	assert.False(t, w.Alive(round))
	assert.Zero(t, w.Resources.Status.Ints.Get("projectile.ground_hits").Load())
}

func TestProjectileExpiresWithAge(t *testing.T) {
	w := newUnitWorld(t)
	sys := NewProjectileSystem(w)

	round := spawnBullet(w, vmath.V3F(-50, 10, 0), vmath.V3F(1, 0, 0), false, core.KindDrone)
	w.Components.Projectile.SetComponent(round, component.ProjectileComponent{
		Source: core.KindDrone,
		Age:    parameter.ProjectileMaxAge,
	})
	sys.Update()

	assert.False(t, w.Alive(round))
}

func TestProjectileMovesAndAges(t *testing.T) {
	w := newUnitWorld(t)
	sys := NewProjectileSystem(w)

	round := spawnBullet(w, vmath.V3F(-50, 10, 0), vmath.V3F(60, 0, 0), false, core.KindChopper)
	sys.Update()

	k, _ := w.Components.Kinetic.GetComponent(round)
	assert.InDelta(t, -49, k.Pos.X, 1e-6)
	p, _ := w.Components.Projectile.GetComponent(round)
	assert.InDelta(t, 1.0/60, p.Age, 1e-6)
	assert.EqualValues(t, 1, w.Resources.Status.Ints.Get("projectile.count").Load())
}
