package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// canFire gates the fire edge: airborne, not paused, and the menu guard elapsed
func (s *ChopperSystem) canFire(c *component.ChopperComponent, in *engine.InputResource) bool {
	if !in.Fire || c.Grounded || c.Crashing {
		return false
	}
	menu := s.Resource.Menu
	if menu.Paused || s.Resource.Time.Paused {
		return false
	}
	return menu.SinceMenuClear > s.Resource.Config.Chopper.MenuFireGuard
}

// fire launches one bullet for a fire edge
// Forward facing drops a bullet under the fuselage; side facing fires along the pitched nose
func (s *ChopperSystem) fire(c *component.ChopperComponent, k *core.Kinetic, in *engine.InputResource) {
	if !s.canFire(c, in) {
		return
	}
	cfg := s.Resource.Config.Chopper

	var pos, vel vmath.Vec3F
	gravity := false

	if c.Facing == core.FacingForward {
		pos = vmath.V3FAdd(k.Pos, vmath.V3F(0, -parameter.ChopperForwardDrop, 0))
		vel = vmath.V3F(0, -parameter.ChopperForwardBulletScale*cfg.BulletSpeed, 0)
		gravity = true
	} else {
		dir := vmath.PitchedDirection(c.Facing.Sign(), c.Pitch)
		pos = vmath.V3FAddScaled(k.Pos, dir, parameter.ChopperMuzzleReach)
		pos.Y -= parameter.ChopperMuzzleDrop
		vel = vmath.V3FScale(dir, cfg.BulletSpeed)
		// Carry part of the airframe's speed so bullets do not lag a fast helicopter
		vel.X += k.Vel.X * cfg.BulletVelocityBias
	}

	spawnBullet(s.World, pos, vel, gravity, core.KindChopper)
	requestSound(s.World, core.SoundShot, pos)
	s.statShots.Add(1)
}
