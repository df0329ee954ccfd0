package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
)

// NotifySystem forwards score-relevant events to the score/UI collaborator
type NotifySystem struct {
	world *engine.World

	statForwarded *atomic.Int64
	statGameOver  *atomic.Bool

	enabled bool
}

func NewNotifySystem(world *engine.World) engine.System {
	s := &NotifySystem{
		world:         world,
		statForwarded: world.Resources.Status.Ints.Get("notify.forwarded"),
		statGameOver:  world.Resources.Status.Bools.Get("game.over"),
	}
	s.Init()
	return s
}

func (s *NotifySystem) Init() {
	s.statForwarded.Store(0)
	s.statGameOver.Store(false)
	s.enabled = true
}

func (s *NotifySystem) Name() string { return "notify" }

func (s *NotifySystem) Priority() int { return parameter.PriorityNotify }

func (s *NotifySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPrisonerBoarded,
		event.EventPrisonerRescued,
		event.EventPrisonerKilled,
		event.EventPrisonerEnteredBase,
		event.EventChopperDestroyed,
		event.EventScoreChanged,
		event.EventGameOver,
		event.EventPauseToggled,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *NotifySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
		return
	}
	if !s.enabled {
		return
	}

	out := engine.ScoreEvent{
		Type:     ev.Type,
		Counters: s.world.Resources.Score.Counters(),
	}
	switch p := ev.Payload.(type) {
	case *event.PrisonerPayload:
		out.Counters = p.Counters
		out.Pos = p.Pos
	case *event.ChopperPayload:
		out.Pos = p.Pos
	case *event.ScorePayload:
		out.Counters = p.Counters
	case *event.GameOverPayload:
		out.Counters = p.Counters
		out.Outcome = p.Outcome
		s.statGameOver.Store(true)
	}

	s.world.Resources.Listener.OnScoreEvent(out)
	s.statForwarded.Add(1)
}

// Update has no per-tick work, delivery happens during event dispatch
func (s *NotifySystem) Update() {}
