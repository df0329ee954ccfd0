package manifest

import (
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/registry"
)

// RegisterSystems registers every manifest constructor with the registry
func RegisterSystems() {
	for _, def := range Systems {
		registry.RegisterSystem(def.Name, def.Constructor)
	}
}

// ActiveSystems returns the ordered list of systems to instantiate
func ActiveSystems() []string {
	names := make([]string, len(Systems))
	for i, def := range Systems {
		names[i] = def.Name
	}
	return names
}

// BuildSystems instantiates every active system for a world
// Unknown names are skipped; call RegisterSystems first
func BuildSystems(w *engine.World) []engine.System {
	out := make([]engine.System, 0, len(Systems))
	for _, name := range ActiveSystems() {
		factory, ok := registry.GetSystem(name)
		if !ok {
			continue
		}
		out = append(out, factory(w))
	}
	return out
}
