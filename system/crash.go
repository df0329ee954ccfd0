package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/vmath"
)

// crashTorque is the spin impulse applied at crash entry
const crashTorque = 10.0

// CrashChopper starts the crash sequence for a helicopter entity
// Safe to call from any system mid-tick; a second call while crashing or after game over is a no-op
func CrashChopper(w *engine.World, e core.Entity, cause core.Kind) bool {
	if !w.Alive(e) {
		return false
	}
	c, ok := w.Components.Chopper.GetComponent(e)
	if !ok {
		return false
	}
	k, ok := w.Components.Kinetic.GetComponent(e)
	if !ok {
		return false
	}
	if !beginCrash(w, e, &c, &k, cause) {
		return false
	}
	w.Components.Chopper.SetComponent(e, c)
	w.Components.Kinetic.SetComponent(e, k)
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Boxes: chopperBoxes(c.Facing)})
	return true
}

// beginCrash mutates the given state into the crash sequence
func beginCrash(w *engine.World, e core.Entity, c *component.ChopperComponent, k *core.Kinetic, cause core.Kind) bool {
	if c.Crashing || w.Resources.Score.GameOver {
		return false
	}
	rng := w.Resources.Rand
	force := w.Resources.Config.Chopper.CrashForce

	c.Crashing = true
	c.CrashTime = 0
	c.HasExploded = false
	c.Rotating = component.RotateNone
	c.UnloadTimer = 0
	c.JustLanded = false

	// Release constraints: gravity on, random push in X and Z
	k.Gravity = true
	physics.ApplyImpulse(k, vmath.V3F(rng.Range(-force, force), 0, rng.Range(-force, force)))

	spin := -1.0
	if c.Facing == core.FacingForward {
		spin = 1.0
	}
	c.Spin = spin * crashTorque * parameter.ChopperCrashSpin

	if c.Grounded {
		c.HasExploded = true
		bigExplosion(w, k.Pos)
	}
	c.Grounded = false

	w.Log.Info().
		Uint64("entity", uint64(e)).
		Str("cause", cause.String()).
		Float64("x", k.Pos.X).
		Float64("y", k.Pos.Y).
		Msg("chopper crashing")

	w.PushEvent(event.EventChopperCrashed, &event.ChopperPayload{Entity: e, Pos: k.Pos, Cause: cause})
	return true
}

// updateCrash integrates the falling wreck and ends the sequence after CrashDuration
func (s *ChopperSystem) updateCrash(e core.Entity, c *component.ChopperComponent, k *core.Kinetic, dt float64) {
	cfg := s.Resource.Config
	if c.CrashTime >= cfg.Chopper.CrashDuration {
		// Final wreck after the last life; frozen
		return
	}

	c.CrashTime += dt
	physics.Integrate(k, cfg.World.Gravity, dt)
	c.Yaw = vmath.WrapDegrees(c.Yaw + c.Spin*dt)
	c.Roll += c.Spin * 0.5 * dt

	k.Pos.X = vmath.Clamp(k.Pos.X, cfg.World.LeftBoundary, cfg.World.RightBoundary)
	floor := s.crashFloor(k.Pos)
	if k.Pos.Y <= floor {
		k.Pos.Y = floor
		if k.Vel.Y < 0 {
			k.Vel.Y = 0
		}
		physics.Damp(k, parameter.GroundFriction, dt)
		c.Spin = vmath.MoveToward(c.Spin, 0, crashTorque*parameter.ChopperCrashSpin*dt)
		if !c.HasExploded {
			c.HasExploded = true
			bigExplosion(s.World, k.Pos)
		}
	}

	if c.CrashTime >= cfg.Chopper.CrashDuration {
		s.finishCrash(e, c, k)
		return
	}

	s.Component.Chopper.SetComponent(e, *c)
	s.Component.Kinetic.SetComponent(e, *k)
}

// crashFloor is the resting height under the wreck: prison roofs and the river bed count
func (s *ChopperSystem) crashFloor(pos vmath.Vec3F) float64 {
	world := s.Resource.Config.World
	clearance := world.Ground - world.TerrainY

	floor := world.Ground
	if world.OverRiver(pos.X) {
		floor = world.RiverBedY + clearance
	}

	for _, pe := range s.Component.Prison.GetAllEntities() {
		if !s.World.Alive(pe) {
			continue
		}
		pk, ok := s.Component.Kinetic.GetComponent(pe)
		if !ok {
			continue
		}
		col, ok := s.Component.Collider.GetComponent(pe)
		if !ok || !col.Enabled {
			continue
		}
		for _, b := range col.Boxes {
			box := b.World(pk.Pos)
			if box.ContainsXZ(pos) && box.Top()+clearance > floor {
				floor = box.Top() + clearance
			}
		}
	}
	return floor
}

// finishCrash costs a life and either respawns the helicopter or leaves the final wreck
func (s *ChopperSystem) finishCrash(e core.Entity, c *component.ChopperComponent, k *core.Kinetic) {
	scoreLoseLife(s.World, e, k.Pos)

	if s.Resource.Score.Lives > 0 {
		resetChopper(s.World, e)
		return
	}

	s.Log.Info().Msg("last helicopter lost")
	s.Component.Chopper.SetComponent(e, *c)
	s.Component.Kinetic.SetComponent(e, *k)
}

// resetChopper restores the pad spawn state and clears the airspace of helicopter bullets
// Repeated calls without an intervening crash leave the state unchanged
func resetChopper(w *engine.World, e core.Entity) {
	pos := chopperSpawnPos(w)
	w.Components.Kinetic.SetComponent(e, core.Kinetic{Pos: pos})
	w.Components.Chopper.SetComponent(e, newChopperState(w))
	w.Components.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   chopperBoxes(core.FacingForward),
		Enabled: true,
	})

	for _, pe := range w.Components.Projectile.GetAllEntities() {
		p, ok := w.Components.Projectile.GetComponent(pe)
		if ok && p.Source == core.KindChopper {
			w.DestroyEntity(pe)
		}
	}

	w.PushEvent(event.EventChopperRecovered, &event.ChopperPayload{Entity: e, Pos: pos})
}
