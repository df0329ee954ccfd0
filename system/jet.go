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

// JetSystem runs the attack run: hunt past the helicopter, swoop, launch both
// missiles, then retreat and despawn out of view
type JetSystem struct {
	engine.SystemBase

	statSwoops   *atomic.Int64
	statLaunches *atomic.Int64
	statCount    *atomic.Int64

	enabled bool
}

func NewJetSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &JetSystem{
		SystemBase:   engine.NewSystemBase(world, "jet"),
		statSwoops:   reg.Ints.Get("jet.swoops"),
		statLaunches: reg.Ints.Get("jet.launches"),
		statCount:    reg.Ints.Get("jet.count"),
	}
	s.Init()
	return s
}

func (s *JetSystem) Init() {
	s.statSwoops.Store(0)
	s.statLaunches.Store(0)
	s.statCount.Store(0)
	s.enabled = true
}

func (s *JetSystem) Name() string { return "jet" }

func (s *JetSystem) Priority() int { return parameter.PriorityJet }

func (s *JetSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *JetSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}
}

func (s *JetSystem) Update() {
	entities := s.Component.Jet.GetAllEntities()
	s.statCount.Store(int64(len(entities)))
	if !s.enabled {
		return
	}

	dt := s.Dt()
	var toDestroy []core.Entity

	for _, e := range entities {
		if !s.World.Alive(e) {
			continue
		}
		j, ok := s.Component.Jet.GetComponent(e)
		if !ok {
			continue
		}
		k, ok := s.Component.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		switch j.Phase {
		case component.JetHunting:
			s.hunt(e, &j, &k, dt)
		case component.JetSwooping:
			s.swoop(e, &j, &k, dt)
		case component.JetRetreating:
			if s.retreat(&j, &k, dt) {
				toDestroy = append(toDestroy, e)
			}
		}

		s.Component.Jet.SetComponent(e, j)
		s.Component.Kinetic.SetComponent(e, k)
	}

	for _, e := range toDestroy {
		destroyJet(s.World, e)
	}
}

// hunt flies level along the heading until the swoop trigger point
// Normal runs overshoot the helicopter, closer if it is moving; head-on runs
// commit while still approaching
func (s *JetSystem) hunt(e core.Entity, j *component.JetComponent, k *core.Kinetic, dt float64) {
	cfg := s.Resource.Config.Jet
	chopper := s.Resource.Chopper

	k.Vel = vmath.V3F(j.Heading*j.Speed, 0, 0)
	k.Pos.X += k.Vel.X * dt

	dx := k.Pos.X - chopper.Pos.X
	if vmath.Abs(dx) < parameter.JetMovingWindow && vmath.Abs(chopper.Vel.X) > cfg.StillMaxSpeed {
		j.ChopperMoving = true
	}

	// Ahead is how far the jet has flown past the helicopter along its heading
	ahead := j.Heading * dx
	switch {
	case j.HeadOn && ahead < 0 && -ahead < cfg.HeadOnDistance:
		s.beginSwoop(e, j, k)
	case !j.HeadOn && j.ChopperMoving && ahead > cfg.MovingDistance:
		s.beginSwoop(e, j, k)
	case !j.HeadOn && !j.ChopperMoving && ahead > cfg.StillDistance:
		s.beginSwoop(e, j, k)
	case j.Heading > 0 && !s.Resource.Config.World.InEnemyTerritory(k.Pos.X):
		// Strayed over the river without a pass: abort the run
		j.Heading = -j.Heading
		s.beginRetreat(e, j)
	}
}

func (s *JetSystem) beginSwoop(e core.Entity, j *component.JetComponent, k *core.Kinetic) {
	cfg := s.Resource.Config.Jet
	chopper := s.Resource.Chopper

	j.Phase = component.JetSwooping
	j.SwoopTime = 0
	j.ChopperDir = vmath.Sign(chopper.Vel.X)
	if j.ChopperMoving {
		j.Speed = parameter.JetMovingSpeedScale * vmath.Abs(chopper.Vel.X)
	}
	if !j.HeadOn {
		j.Heading = -j.Heading
	}

	j.InitialY = k.Pos.Y
	j.InitialZ = k.Pos.Z
	j.FinalZ = chopper.Pos.Z
	if k.Pos.Y >= chopper.Pos.Y+cfg.SwoopDrop {
		j.FinalY = k.Pos.Y - cfg.SwoopDrop
	} else {
		j.FinalY = j.InitialY - cfg.SwoopDrop
	}

	s.Component.Collider.SetComponent(e, component.ColliderComponent{
		Boxes:   jetBoxes(parameter.JetHalfZ),
		Enabled: true,
	})
	s.statSwoops.Add(1)
	s.Log.Debug().
		Uint64("entity", uint64(e)).
		Bool("head_on", j.HeadOn).
		Bool("chopper_moving", j.ChopperMoving).
		Float64("speed", j.Speed).
		Msg("jet swoop")
}

// swoop runs the timed dive; X decelerates through a reversal while Y and Z
// converge on the helicopter lane
func (s *JetSystem) swoop(e core.Entity, j *component.JetComponent, k *core.Kinetic, dt float64) {
	T := s.Resource.Config.Jet.TimeToSwoop
	j.SwoopTime += dt

	accel := 0.0
	if j.ChopperMoving {
		accel = vmath.Clamp(j.SwoopTime/parameter.JetTimeToAccelerate, 0, 1)
	}

	if j.HeadOn {
		k.Vel.X = j.Heading * j.Speed
	} else {
		// Heading already points back; the pre-reversal direction carries the first half
		k.Vel.X = -j.Heading*j.Speed*(T/2-j.SwoopTime)/T + accel*j.Speed*j.ChopperDir
		j.Yaw = vmath.WrapDegrees(j.Yaw - j.Heading*(parameter.JetFinalSwoopAngle-90)*dt/T)
	}
	k.Vel.Y = -(j.InitialY - j.FinalY) / T
	k.Vel.Z = 0

	k.Pos.X += k.Vel.X * dt
	k.Pos.Y += k.Vel.Y * dt
	progress := vmath.Clamp(j.SwoopTime/T, 0, 1)
	k.Pos.Z = j.InitialZ - progress*(j.InitialZ-j.FinalZ)

	j.Roll = jetRoll(j.Roll, j.SwoopTime, dt)

	if j.SwoopTime >= T {
		s.attack(e, j, k)
	}
}

// jetRoll ramps to the final roll over the roll time and keeps spinning after
func jetRoll(roll, t, dt float64) float64 {
	if t >= parameter.JetTimeToRoll {
		return vmath.WrapDegrees(roll + parameter.JetContinuousRoll*dt)
	}
	return parameter.JetFinalRoll * t / parameter.JetTimeToRoll
}

// attack releases both missiles and starts the retreat
func (s *JetSystem) attack(e core.Entity, j *component.JetComponent, k *core.Kinetic) {
	launched := launchMissiles(s.World, j, k)
	s.statLaunches.Add(int64(launched))
	if launched > 0 {
		requestSound(s.World, core.SoundMissile, k.Pos)
	}
	s.beginRetreat(e, j)
}

func (s *JetSystem) beginRetreat(e core.Entity, j *component.JetComponent) {
	j.Phase = component.JetRetreating
	j.RetreatTime = 0
	j.DespawnTimer = -1
	s.Log.Debug().Uint64("entity", uint64(e)).Msg("jet retreat")
}

// retreat accelerates away along the heading, climbs after a delay and
// reports true once the despawn grace has run out
func (s *JetSystem) retreat(j *component.JetComponent, k *core.Kinetic, dt float64) bool {
	cfg := s.Resource.Config.Jet

	j.RetreatTime += dt
	j.Speed += j.RetreatTime * parameter.JetRetreatSpeedFactor * dt

	k.Vel = vmath.V3F(j.Heading*vmath.Abs(j.Speed), 0, 0)
	if j.RetreatTime >= parameter.JetRetreatAscendDelay {
		k.Vel.Y = parameter.JetAscentSpeedFactor * (j.RetreatTime - parameter.JetRetreatAscendDelay)
	}
	k.Pos = vmath.V3FAddScaled(k.Pos, k.Vel, dt)

	if j.SwoopTime > 0 {
		j.Roll = jetRoll(j.Roll, parameter.JetTimeToRoll, dt)
	}

	if j.DespawnTimer < 0 {
		if vmath.Abs(k.Pos.X-s.Resource.Chopper.Pos.X) > cfg.DespawnDistance {
			j.DespawnTimer = cfg.DespawnGrace
		}
		return false
	}
	j.DespawnTimer -= dt
	return j.DespawnTimer <= 0
}

// destroyJet removes a jet and any missile still hanging under it
func destroyJet(w *engine.World, e core.Entity) bool {
	j, ok := w.Components.Jet.GetComponent(e)
	if !w.DestroyEntity(e) {
		return false
	}
	if !ok {
		return true
	}
	for _, m := range j.Missiles {
		if mc, ok := w.Components.Missile.GetComponent(m); ok && mc.Attached {
			w.DestroyEntity(m)
		}
	}
	return true
}
