package system

import (
	"math"
	"sync/atomic"

	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// TurretSystem aims and fires every turret, tank mounted or stationary
// Turrets swing toward the side the helicopter is on, not to an exact bearing,
// and stay silent for the whole crash sequence
type TurretSystem struct {
	world *engine.World

	// Telemetry
	statActive *atomic.Bool
	statCount  *atomic.Int64
	statShots  *atomic.Int64

	enabled bool
}

func NewTurretSystem(world *engine.World) engine.System {
	s := &TurretSystem{
		world: world,
	}

	s.statActive = world.Resources.Status.Bools.Get("turret.active")
	s.statCount = world.Resources.Status.Ints.Get("turret.count")
	s.statShots = world.Resources.Status.Ints.Get("turret.shots")

	s.Init()
	return s
}

func (s *TurretSystem) Init() {
	s.statActive.Store(false)
	s.statCount.Store(0)
	s.statShots.Store(0)
	s.enabled = true
}

func (s *TurretSystem) Name() string {
	return "turret"
}

func (s *TurretSystem) Priority() int {
	return parameter.PriorityTurret
}

func (s *TurretSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChopperCrashed,
		event.EventChopperRecovered,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *TurretSystem) HandleEvent(ev event.GameEvent) {
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

	switch ev.Type {
	case event.EventChopperCrashed:
		s.setEnabled(false)
	case event.EventChopperRecovered:
		s.setEnabled(true)
	}
}

// setEnabled switches every turret on or off
func (s *TurretSystem) setEnabled(on bool) {
	for _, e := range s.world.Components.Turret.GetAllEntities() {
		t, ok := s.world.Components.Turret.GetComponent(e)
		if !ok {
			continue
		}
		t.Enabled = on
		s.world.Components.Turret.SetComponent(e, t)
	}
}

func (s *TurretSystem) Update() {
	if !s.enabled {
		return
	}

	entities := s.world.Components.Turret.GetAllEntities()
	s.statCount.Store(int64(len(entities)))
	s.statActive.Store(len(entities) > 0)

	chopper := s.world.Resources.Chopper
	if !chopper.Alive {
		return
	}
	dt := s.world.Resources.Time.Delta
	cfg := s.world.Resources.Config.Turret

	for _, e := range entities {
		if !s.world.Alive(e) {
			continue
		}
		t, ok := s.world.Components.Turret.GetComponent(e)
		if !ok || !t.Enabled {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		t.Angle = aimTurret(t.Angle, chopper.Pos.X-k.Pos.X, cfg.RotationSpeed*dt, cfg.MinRotation, cfg.MaxRotation)

		if t.CanFire {
			if vmath.Abs(chopper.Pos.X-k.Pos.X) < cfg.FireRange {
				s.fire(&t, k.Pos)
			}
		} else {
			t.ReloadTimer += dt
			if t.ReloadTimer >= cfg.ReloadTime {
				t.CanFire = true
			}
		}

		s.world.Components.Turret.SetComponent(e, t)
	}
}

// aimTurret swings the barrel one step toward the side dx points to
// The arc wraps through 0: min is the leftmost angle above 180, max the rightmost below it
func aimTurret(angle, dx, step, minRot, maxRot float64) float64 {
	switch {
	case dx < 0:
		if angle > 180 && angle <= minRot {
			return minRot
		}
		return vmath.WrapDegrees(angle - step)
	case dx > 0:
		if angle < 180 && angle >= maxRot {
			return maxRot
		}
		return vmath.WrapDegrees(angle + step)
	}
	return angle
}

// turretDirection is the barrel unit vector in the XY plane, 0 degrees straight up
func turretDirection(angle float64) vmath.Vec3F {
	r := vmath.DegToRad(angle)
	return vmath.V3F(math.Sin(r), math.Cos(r), 0)
}

func (s *TurretSystem) fire(t *component.TurretComponent, pos vmath.Vec3F) {
	t.CanFire = false
	t.ReloadTimer = 0

	muzzle := vmath.V3FAdd(pos, vmath.V3F(0, parameter.TurretMuzzleHeight, parameter.TurretMuzzleDepth))
	vel := vmath.V3FScale(turretDirection(t.Angle), s.world.Resources.Config.Turret.BulletSpeed)

	// Turrets share the tank faction so a tank never destroys its neighbours
	spawnBullet(s.world, muzzle, vel, true, core.KindTank)
	requestSound(s.world, core.SoundEnemyShot, muzzle)
	s.statShots.Add(1)
}
