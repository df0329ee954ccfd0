package game

import (
	"sort"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/status"
	"github.com/eniklas/nachtmission/system"
	"github.com/eniklas/nachtmission/vmath"
)

// ChopperView is the helicopter state exposed to presentation
type ChopperView struct {
	Alive     bool
	Pos       vmath.Vec3F
	Vel       vmath.Vec3F
	Facing    core.Facing
	Yaw       float64
	Pitch     float64
	Roll      float64
	Grounded  bool
	Crashing  bool
	OverRiver bool
	Onboard   int
	Capacity  int
}

// EntityView is one renderable entity
type EntityView struct {
	Entity core.Entity
	Kind   core.Kind
	Pos    vmath.Vec3F

	// Angle is chopper or jet yaw, or turret barrel angle, in degrees
	Angle   float64
	Damaged bool            // Prison only
	Effect  core.EffectType // Effect only
}

// ScoreView is the session summary
type ScoreView struct {
	Counters  event.Counters
	LivesLost int
	GameOver  bool
	Outcome   core.Outcome
	SessionID string
}

// Chopper returns the current helicopter state
func (s *Simulation) Chopper() ChopperView {
	var v ChopperView
	s.world.RunSafe(func() {
		w := s.world
		v.Onboard = w.Resources.Score.Onboard
		for _, e := range w.Components.Chopper.GetAllEntities() {
			if !w.Alive(e) {
				continue
			}
			c, _ := w.Components.Chopper.GetComponent(e)
			k, _ := w.Components.Kinetic.GetComponent(e)
			v = ChopperView{
				Alive:     true,
				Pos:       k.Pos,
				Vel:       k.Vel,
				Facing:    c.Facing,
				Yaw:       c.Yaw,
				Pitch:     c.Pitch,
				Roll:      c.Roll,
				Grounded:  c.Grounded,
				Crashing:  c.Crashing,
				OverRiver: c.OverRiver,
				Onboard:   w.Resources.Score.Onboard,
				Capacity:  c.Capacity,
			}
			return
		}
	})
	return v
}

// Entities returns every positioned entity ordered by id
func (s *Simulation) Entities() []EntityView {
	var out []EntityView
	s.world.RunSafe(func() {
		w := s.world
		for _, e := range w.Components.Kinetic.GetAllEntities() {
			kind, ok := w.Kind(e)
			if !ok {
				continue
			}
			k, _ := w.Components.Kinetic.GetComponent(e)
			v := EntityView{Entity: e, Kind: kind, Pos: k.Pos}

			switch kind {
			case core.KindChopper:
				if c, ok := w.Components.Chopper.GetComponent(e); ok {
					v.Angle = c.Yaw
				}
			case core.KindJet:
				if j, ok := w.Components.Jet.GetComponent(e); ok {
					v.Angle = j.Yaw
				}
			case core.KindTank, core.KindTurret:
				if t, ok := w.Components.Turret.GetComponent(e); ok {
					v.Angle = t.Angle
				}
			case core.KindPrison:
				if p, ok := w.Components.Prison.GetComponent(e); ok {
					v.Damaged = p.Damaged
				}
			case core.KindEffect:
				if fx, ok := w.Components.Effect.GetComponent(e); ok {
					v.Effect = fx.Type
				}
			}
			out = append(out, v)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

// CountKind returns the number of live entities of a kind
func (s *Simulation) CountKind(kind core.Kind) int {
	n := 0
	s.world.RunSafe(func() { n = s.world.CountKind(kind) })
	return n
}

// Counters returns the live score counters
func (s *Simulation) Counters() event.Counters {
	var c event.Counters
	s.world.RunSafe(func() { c = s.world.Resources.Score.Counters() })
	return c
}

// Score returns the session summary
func (s *Simulation) Score() ScoreView {
	var v ScoreView
	s.world.RunSafe(func() {
		sc := s.world.Resources.Score
		v = ScoreView{
			Counters:  sc.Counters(),
			LivesLost: sc.LivesLost,
			GameOver:  sc.GameOver,
			Outcome:   sc.Outcome,
			SessionID: sc.SessionID,
		}
	})
	return v
}

// RotorSpeed is the main rotor speed in degrees per second, used for sound pitch
func (s *Simulation) RotorSpeed() float64 {
	var speed float64
	s.world.RunSafe(func() { speed = system.MainRotorSpeed(s.world) })
	return speed
}

// TitleZoom is the real-time title animation progress in [0, 1]
func (s *Simulation) TitleZoom() float64 {
	var z float64
	s.world.RunSafe(func() { z = s.world.Resources.Menu.TitleZoom })
	return z
}

// Paused reports whether gameplay time is frozen
func (s *Simulation) Paused() bool {
	var p bool
	s.world.RunSafe(func() { p = s.world.Resources.Menu.Paused })
	return p
}

// Status exposes the live metrics registry
func (s *Simulation) Status() *status.Registry {
	return s.world.Resources.Status
}
