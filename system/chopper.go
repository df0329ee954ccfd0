package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/status"
	"github.com/eniklas/nachtmission/vmath"
)

// frameRate is the reference rate the pitch constants were tuned at
const frameRate = 60.0

// ChopperSystem is the helicopter controller: flight model, turning and
// pitch, firing, prisoner pickup and unload, and the crash sequence
type ChopperSystem struct {
	engine.SystemBase

	statShots   *atomic.Int64
	statCrashes *atomic.Int64
	statPitch   *status.AtomicFloat

	enabled bool
}

func NewChopperSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &ChopperSystem{
		SystemBase:  engine.NewSystemBase(world, "chopper"),
		statShots:   reg.Ints.Get("chopper.shots"),
		statCrashes: reg.Ints.Get("chopper.crashes"),
		statPitch:   reg.Floats.Get("chopper.pitch"),
	}
	s.Init()
	return s
}

func (s *ChopperSystem) Init() {
	s.statShots.Store(0)
	s.statCrashes.Store(0)
	s.statPitch.Set(0)
	s.enabled = true
}

func (s *ChopperSystem) Name() string { return "chopper" }

func (s *ChopperSystem) Priority() int { return parameter.PriorityChopper }

func (s *ChopperSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChopperCrashed,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ChopperSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	case event.EventChopperCrashed:
		s.statCrashes.Add(1)
	}
}

func (s *ChopperSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.Dt()
	in := s.Resource.Input

	for _, e := range s.Component.Chopper.GetAllEntities() {
		if !s.World.Alive(e) {
			continue
		}
		c, ok := s.Component.Chopper.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.Component.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		if c.Crashing {
			s.updateCrash(e, &c, &k, dt)
			continue
		}
		// Controls are released once the game is decided; the helicopter holds where it is
		if s.Resource.Score.GameOver {
			continue
		}

		c.JustLanded = false
		s.updateTurn(&c, in, dt)
		s.updatePitch(&c, in, dt)
		s.updateMotion(e, &c, &k, in, dt)

		if !c.Crashing {
			s.fire(&c, &k, in)
			s.updateCargo(e, &c, &k, dt)
		}

		s.Component.Chopper.SetComponent(e, c)
		s.Component.Kinetic.SetComponent(e, k)
		s.Component.Collider.SetComponent(e, component.ColliderComponent{
			Boxes:   chopperBoxes(c.Facing),
			Enabled: !c.Crashing,
		})
		s.statPitch.Set(c.Pitch)
	}
}

// updateTurn starts and advances 90 degree turns
// A turn snaps facing after RotationTime and blocks new turns until the cooldown elapses
func (s *ChopperSystem) updateTurn(c *component.ChopperComponent, in *engine.InputResource, dt float64) {
	cfg := s.Resource.Config.Chopper

	if c.Rotating != component.RotateNone {
		c.RotationTime += dt
		if c.Facing != c.TurnTo {
			if c.RotationTime >= cfg.RotationTime {
				c.Facing = c.TurnTo
				c.Yaw = c.TurnTo.Yaw()
				c.Pitch = 0
			} else {
				frac := vmath.Clamp(dt/cfg.RotationTime, 0, 1)
				c.Pitch -= frac * c.Pitch
				c.Yaw = c.TurnFrom + (c.TurnTo.Yaw()-c.TurnFrom)*(c.RotationTime/cfg.RotationTime)
			}
		}
		if c.RotationTime >= cfg.RotationTime+cfg.TurnCooldown {
			c.Rotating = component.RotateNone
			c.RotationTime = 0
		}
		return
	}

	if c.Grounded {
		return
	}

	var target core.Facing
	var dir component.Rotation
	switch {
	case in.TurnLeft:
		dir = component.RotateLeft
		target = core.FacingLeft
		if c.Facing == core.FacingRight {
			target = core.FacingForward
		}
	case in.TurnRight:
		dir = component.RotateRight
		target = core.FacingRight
		if c.Facing == core.FacingLeft {
			target = core.FacingForward
		}
	default:
		return
	}
	if target == c.Facing {
		return
	}

	c.Rotating = dir
	c.TurnFrom = c.Yaw
	c.TurnTo = target
	c.RotationTime = 0
	c.PitchState = component.PitchLeveling
	c.PitchingTime = 0

	s.Log.Debug().
		Str("from", c.Facing.String()).
		Str("to", target.String()).
		Msg("turn started")
}

// updatePitch runs the level/pitching/leveling machine
// Constants are per reference frame, so steps scale with dt*frameRate
func (s *ChopperSystem) updatePitch(c *component.ChopperComponent, in *engine.InputResource, dt float64) {
	if c.Rotating != component.RotateNone {
		return
	}
	cfg := s.Resource.Config.Chopper
	frames := dt * frameRate

	input := vmath.Clamp(in.Horizontal, -1, 1)
	if c.Grounded {
		input = 0
	}

	if input != 0 {
		bound := cfg.MaxPitch
		if input < 0 {
			bound = cfg.MinPitch
		}
		// Held against the stop: pitching is over, leveling starts on release
		if c.Pitch == bound {
			return
		}
		if c.PitchState != component.PitchPitching {
			c.PitchState = component.PitchPitching
			c.PitchingTime = 0
		}
		c.PitchingTime += dt
		c.Pitch += input * cfg.PitchAccel * c.PitchingTime * frames
		c.Pitch = vmath.Clamp(c.Pitch, cfg.MinPitch, cfg.MaxPitch)
		if c.Pitch == bound {
			c.PitchState = component.PitchLeveling
			c.PitchingTime = 0
		}
		return
	}

	if c.PitchState == component.PitchPitching {
		c.PitchState = component.PitchLeveling
		c.PitchingTime = 0
	}
	if c.PitchState != component.PitchLeveling {
		return
	}

	c.PitchingTime += dt
	rate := cfg.LevelAccel * c.PitchingTime * frames
	if c.Grounded {
		rate *= parameter.ChopperGroundLevelBoost
	}
	c.Pitch = vmath.MoveToward(c.Pitch, 0, rate)

	if vmath.Abs(c.Pitch) < cfg.PitchDeadZone {
		c.Pitch = 0
		c.Yaw = c.Facing.Yaw()
		c.PitchState = component.PitchLevel
		c.PitchingTime = 0
	}
}

// updateMotion applies the flight model, boundaries and ground contact
func (s *ChopperSystem) updateMotion(e core.Entity, c *component.ChopperComponent, k *core.Kinetic, in *engine.InputResource, dt float64) {
	cfg := s.Resource.Config
	world := cfg.World

	if c.Grounded {
		k.Vel.X = 0
	} else {
		k.Vel.X = physics.Accelerate(k.Vel.X, in.Horizontal, cfg.Chopper.HAcceleration, cfg.Chopper.MaxHSpeed, dt)
	}
	if (k.Pos.X >= world.RightBoundary && k.Vel.X > 0) || (k.Pos.X <= world.LeftBoundary && k.Vel.X < 0) {
		k.Vel.X = 0
	}

	k.Vel.Y = physics.Accelerate(k.Vel.Y, in.Vertical, cfg.Chopper.VAcceleration, cfg.Chopper.MaxVSpeed, dt)
	if k.Pos.Y >= world.Ceiling && k.Vel.Y > 0 {
		k.Vel.Y = 0
	}
	if c.Grounded && k.Vel.Y < 0 {
		k.Vel.Y = 0
	}

	if c.Grounded && k.Vel.Y > 0 {
		c.Grounded = false
		s.World.PushEvent(event.EventChopperTookOff, &event.ChopperPayload{Entity: e, Pos: k.Pos})
	}

	k.Gravity = false
	k.Vel.Z = 0
	physics.Integrate(k, 0, dt)

	k.Pos.X = vmath.Clamp(k.Pos.X, world.LeftBoundary, world.RightBoundary)
	if k.Pos.Y > world.Ceiling {
		k.Pos.Y = world.Ceiling
	}
	c.OverRiver = world.OverRiver(k.Pos.X)

	if k.Pos.Y > world.Ground {
		return
	}
	k.Pos.Y = world.Ground
	if c.Grounded || c.OverRiver {
		// River has no ground contact; the helicopter skims at ground height
		if k.Vel.Y < 0 {
			k.Vel.Y = 0
		}
		return
	}

	landingSpeed := vmath.Abs(k.Vel.X)
	if landingSpeed > cfg.CrashSpeed() {
		s.Log.Info().Float64("speed", landingSpeed).Msg("hard landing")
		beginCrash(s.World, e, c, k, core.KindTerrain)
		return
	}

	c.Grounded = true
	c.JustLanded = true
	k.Vel.X, k.Vel.Y = 0, 0
	s.World.PushEvent(event.EventChopperLanded, &event.ChopperPayload{Entity: e, Pos: k.Pos})
}
