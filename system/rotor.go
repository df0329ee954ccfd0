package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/status"
	"github.com/eniklas/nachtmission/vmath"
)

// RotorSystem ramps main and tail rotor speed between min and max on
// takeoff and landing, winds them down to zero during a crash
type RotorSystem struct {
	world *engine.World

	statMain *status.AtomicFloat
	statTail *status.AtomicFloat

	enabled bool
}

func NewRotorSystem(world *engine.World) engine.System {
	s := &RotorSystem{
		world:    world,
		statMain: world.Resources.Status.Floats.Get("rotor.main"),
		statTail: world.Resources.Status.Floats.Get("rotor.tail"),
	}
	s.Init()
	return s
}

func (s *RotorSystem) Init() {
	s.statMain.Set(0)
	s.statTail.Set(0)
	s.enabled = true
}

func (s *RotorSystem) Name() string { return "rotor" }

func (s *RotorSystem) Priority() int { return parameter.PriorityRotor }

func (s *RotorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChopperTookOff,
		event.EventChopperLanded,
		event.EventChopperCrashed,
		event.EventChopperRecovered,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *RotorSystem) HandleEvent(ev event.GameEvent) {
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
		return
	}

	cfg := s.world.Resources.Config.Rotor
	s.each(func(r *component.RotorComponent) {
		switch ev.Type {
		case event.EventChopperTookOff:
			s.spinUp(r)
		case event.EventChopperLanded:
			s.spinDown(r)
		case event.EventChopperCrashed:
			r.MinSpeed = parameter.RotorCrashMinSpeed
			s.spinDown(r)
		case event.EventChopperRecovered:
			*r = component.RotorComponent{Tail: r.Tail, Speed: cfg.MinSpeed, MinSpeed: cfg.MinSpeed}
		}
	})
}

func (s *RotorSystem) each(fn func(r *component.RotorComponent)) {
	for _, e := range s.world.Components.Rotor.GetAllEntities() {
		r, ok := s.world.Components.Rotor.GetComponent(e)
		if !ok {
			continue
		}
		fn(&r)
		s.world.Components.Rotor.SetComponent(e, r)
	}
}

// spinUp starts the ramp toward max, resuming from the current speed
func (s *RotorSystem) spinUp(r *component.RotorComponent) {
	cfg := s.world.Resources.Config.Rotor
	r.SpinningUp = true
	r.SpinningDown = false
	r.SpinTime = rampTime(r.Speed-r.MinSpeed, cfg.MaxSpeed-r.MinSpeed, cfg.SpinUpTime)
}

// spinDown starts the ramp toward MinSpeed, resuming from the current speed
func (s *RotorSystem) spinDown(r *component.RotorComponent) {
	cfg := s.world.Resources.Config.Rotor
	r.SpinningUp = false
	r.SpinningDown = true
	r.SpinTime = rampTime(cfg.MaxSpeed-r.Speed, cfg.MaxSpeed-r.MinSpeed, cfg.SpinDownTime)
}

// rampTime maps progress along a span to elapsed ramp time
func rampTime(done, span, duration float64) float64 {
	if span <= 0 {
		return duration
	}
	return vmath.Clamp(done/span, 0, 1) * duration
}

func (s *RotorSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.Delta
	cfg := s.world.Resources.Config.Rotor

	s.each(func(r *component.RotorComponent) {
		span := cfg.MaxSpeed - r.MinSpeed
		switch {
		case r.SpinningUp:
			r.SpinTime += dt
			r.Speed = r.MinSpeed + r.SpinTime/cfg.SpinUpTime*span
			if r.SpinTime >= cfg.SpinUpTime {
				r.Speed = cfg.MaxSpeed
				r.SpinningUp = false
			}
		case r.SpinningDown:
			r.SpinTime += dt
			r.Speed = cfg.MaxSpeed - r.SpinTime/cfg.SpinDownTime*span
			if r.SpinTime >= cfg.SpinDownTime || r.Speed <= r.MinSpeed {
				r.Speed = r.MinSpeed
				r.SpinningDown = false
			}
		}

		scale := 1.0
		if r.Tail {
			scale = parameter.TailRotorScale
		}
		r.Angle = vmath.WrapDegrees(r.Angle + r.Speed*scale*dt)

		if r.Tail {
			s.statTail.Set(r.Speed)
		} else {
			s.statMain.Set(r.Speed)
		}
	})
}

// MainRotorSpeed returns the main rotor speed for presentation, zero if absent
func MainRotorSpeed(w *engine.World) float64 {
	for _, e := range w.Components.Rotor.GetAllEntities() {
		if r, ok := w.Components.Rotor.GetComponent(e); ok && !r.Tail {
			return r.Speed
		}
	}
	return 0
}

