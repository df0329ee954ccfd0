package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// DroneSystem hovers drones onto the helicopter and fires alternating muzzles
type DroneSystem struct {
	world *engine.World

	statShots *atomic.Int64

	enabled bool
}

func NewDroneSystem(world *engine.World) engine.System {
	s := &DroneSystem{
		world:     world,
		statShots: world.Resources.Status.Ints.Get("drone.shots"),
	}
	s.Init()
	return s
}

func (s *DroneSystem) Init() {
	s.statShots.Store(0)
	s.enabled = true
}

func (s *DroneSystem) Name() string { return "drone" }

func (s *DroneSystem) Priority() int { return parameter.PriorityDrone }

func (s *DroneSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *DroneSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}
}

func (s *DroneSystem) Update() {
	chopper := s.world.Resources.Chopper
	if !s.enabled || !chopper.Alive {
		return
	}

	dt := s.world.Resources.Time.Delta
	cfg := s.world.Resources.Config.Drone

	for _, e := range s.world.Components.Drone.GetAllEntities() {
		if !s.world.Alive(e) {
			continue
		}
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		k.Vel = vmath.V3F(
			dampedPursuit(k.Pos.X-chopper.Pos.X, cfg.OffsetX, cfg.SpeedX, cfg.DamperZone, cfg.DamperSpeed),
			dampedPursuit(k.Pos.Y-chopper.Pos.Y, cfg.OffsetY, cfg.SpeedY, cfg.DamperZone, cfg.DamperSpeed),
			0,
		)
		k.Pos = vmath.V3FAddScaled(k.Pos, k.Vel, dt)

		d.FireTimer += dt
		if d.FireTimer >= cfg.FireInterval && vmath.Abs(k.Pos.X-chopper.Pos.X) <= cfg.FireRange {
			s.fire(&d, k.Pos, chopper.Pos.X)
			d.LeftMuzzle = !d.LeftMuzzle
			d.FireTimer = 0
		}

		s.world.Components.Drone.SetComponent(e, d)
		s.world.Components.Kinetic.SetComponent(e, k)
	}
}

// dampedPursuit returns the axis velocity for a drone offset d from its target
// Outside the offset band the drone closes at full speed, at the band edge it
// slows to the damper speed, and inside it keeps pushing through at full speed
func dampedPursuit(d, offset, speed, zone, damper float64) float64 {
	switch {
	case d > offset:
		return -speed
	case d < -offset:
		return speed
	case d >= offset*zone:
		return -speed * damper
	case d <= -offset*zone:
		return speed * damper
	case d >= 0:
		return -speed
	}
	return speed
}

// fire shoots sideways from the current muzzle with extra push when the
// helicopter is on that side
func (s *DroneSystem) fire(d *component.DroneComponent, pos vmath.Vec3F, chopperX float64) {
	cfg := s.world.Resources.Config.Drone

	side := 1.0
	if d.LeftMuzzle {
		side = -1
	}
	vx := side * cfg.BulletSpeedX
	if (side < 0 && chopperX < pos.X) || (side > 0 && chopperX > pos.X) {
		vx += side * cfg.BulletBoost * cfg.BulletSpeedX
	}

	muzzle := vmath.V3FAdd(pos, vmath.V3F(side*parameter.DroneMuzzleOffset, 0, 0))
	spawnBullet(s.world, muzzle, vmath.V3F(vx, 0, 0), true, core.KindDrone)
	requestSound(s.world, core.SoundEnemyShot, muzzle)
	s.statShots.Add(1)
}
