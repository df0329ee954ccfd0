package engine

import (
	"github.com/rs/zerolog"
)

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
	Log       zerolog.Logger
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor; name tags every log record
func NewSystemBase(w *World, name string) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  &w.Resources,
		Component: &w.Components,
		Log:       w.Log.With().Str("system", name).Logger(),
	}
}

// Dt is gameplay seconds for the current tick
func (b *SystemBase) Dt() float64 {
	return b.Resource.Time.Delta
}
