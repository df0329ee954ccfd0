package system

import (
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/vmath"
)

// Score mutations are funneled through these helpers so every change
// emits the matching event and a ScoreChanged snapshot, and game over is
// evaluated exactly once per session

func scoreBoard(w *engine.World, e core.Entity, pos vmath.Vec3F) {
	sc := w.Resources.Score
	sc.Onboard++
	w.PushEvent(event.EventPrisonerBoarded, &event.PrisonerPayload{Entity: e, Pos: pos, Counters: sc.Counters()})
	scoreChanged(w)
}

// scoreRescue moves one prisoner from onboard to rescued
func scoreRescue(w *engine.World, e core.Entity, pos vmath.Vec3F) bool {
	sc := w.Resources.Score
	if sc.Onboard <= 0 {
		return false
	}
	sc.Onboard--
	sc.Rescued++
	w.PushEvent(event.EventPrisonerRescued, &event.PrisonerPayload{Entity: e, Pos: pos, Counters: sc.Counters()})
	scoreChanged(w)
	checkGameOver(w)
	return true
}

// scoreKill counts a captive prisoner as killed
func scoreKill(w *engine.World, e core.Entity, pos vmath.Vec3F) {
	sc := w.Resources.Score
	if sc.Captive() <= 0 {
		return
	}
	sc.Killed++
	w.PushEvent(event.EventPrisonerKilled, &event.PrisonerPayload{Entity: e, Pos: pos, Counters: sc.Counters()})
	scoreChanged(w)
	checkGameOver(w)
}

// scoreLoseLife ends a crash: onboard prisoners die with the helicopter
func scoreLoseLife(w *engine.World, e core.Entity, pos vmath.Vec3F) {
	sc := w.Resources.Score
	if sc.GameOver {
		return
	}
	if sc.Lives > 0 {
		sc.Lives--
	}
	sc.LivesLost++
	sc.Killed += sc.Onboard
	sc.Onboard = 0
	w.PushEvent(event.EventChopperDestroyed, &event.ChopperPayload{Entity: e, Pos: pos})
	scoreChanged(w)
	checkGameOver(w)
}

func scoreChanged(w *engine.World) {
	w.PushEvent(event.EventScoreChanged, &event.ScorePayload{Counters: w.Resources.Score.Counters()})
}

// checkGameOver latches game over when every prisoner is resolved or no lives remain
func checkGameOver(w *engine.World) {
	sc := w.Resources.Score
	if sc.GameOver {
		return
	}
	if sc.Rescued+sc.Killed < sc.Total && sc.Lives > 0 {
		return
	}

	sc.GameOver = true
	switch {
	case sc.Rescued == sc.Total && sc.LivesLost == 0:
		sc.Outcome = core.OutcomePerfect
	case sc.Rescued == sc.Total:
		sc.Outcome = core.OutcomeExcellent
	default:
		sc.Outcome = core.OutcomeGameOver
	}

	w.Log.Info().
		Str("outcome", sc.Outcome.String()).
		Int("rescued", sc.Rescued).
		Int("killed", sc.Killed).
		Int("lives", sc.Lives).
		Msg("game over")

	w.PushEvent(event.EventGameOver, &event.GameOverPayload{
		Outcome:   sc.Outcome,
		Counters:  sc.Counters(),
		SessionID: sc.SessionID,
	})
}
