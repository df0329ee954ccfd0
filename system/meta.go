package system

import (
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// MenuSystem owns the pause toggle and the real-time title animation
// It keeps running while gameplay time is frozen
type MenuSystem struct {
	engine.SystemBase
}

func NewMenuSystem(world *engine.World) engine.System {
	s := &MenuSystem{SystemBase: engine.NewSystemBase(world, "menu")}
	s.Init()
	return s
}

func (s *MenuSystem) Init() {
	m := s.Resource.Menu
	m.SinceMenuClear = 0
	m.TitleZoom = 0
}

func (s *MenuSystem) Name() string { return "menu" }

func (s *MenuSystem) Priority() int { return parameter.PriorityMenu }

func (s *MenuSystem) RunsWhilePaused() bool { return true }

func (s *MenuSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *MenuSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *MenuSystem) Update() {
	m := s.Resource.Menu
	in := s.Resource.Input

	if in.MenuToggle {
		m.Paused = !m.Paused
		if !m.Paused {
			m.SinceMenuClear = 0
		}
		s.World.PushEvent(event.EventPauseToggled, &event.PausePayload{Paused: m.Paused})
		s.Log.Debug().Bool("paused", m.Paused).Msg("menu toggled")
	}

	if !m.Paused {
		m.SinceMenuClear += s.Resource.Time.Delta
	}

	// Title zooms in behind the menu and back out once play resumes
	step := s.Resource.Time.RealDelta * parameter.TitleZoomSpeed
	if m.Paused {
		m.TitleZoom = vmath.Clamp(m.TitleZoom+step, 0, 1)
	} else {
		m.TitleZoom = vmath.Clamp(m.TitleZoom-step, 0, 1)
	}
}
