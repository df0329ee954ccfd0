// Package terminal draws the simulation onto a tcell screen
package terminal

import (
	"github.com/eniklas/nachtmission/game"
)

// Frame is one presentation snapshot of the simulation
type Frame struct {
	Chopper   game.ChopperView
	Entities  []game.EntityView
	Score     game.ScoreView
	Paused    bool
	TitleZoom float64
	Muted     bool
}

// Capture reads a frame from the simulation
// Must not be called from inside a score listener or an input callback
func Capture(sim *game.Simulation) Frame {
	return Frame{
		Chopper:   sim.Chopper(),
		Entities:  sim.Entities(),
		Score:     sim.Score(),
		Paused:    sim.Paused(),
		TitleZoom: sim.TitleZoom(),
	}
}
