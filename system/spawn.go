package system

import (
	"sync/atomic"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/vmath"
)

// spawnClass is the per enemy class director state
type spawnClass struct {
	kind  core.Kind
	timer float64
	stat  *atomic.Int64
}

// DirectorSystem introduces tanks, jets and drones as rescue progress
// passes each class's activation fraction, then spawns them on a fixed
// interval under a per-class population cap
type DirectorSystem struct {
	engine.SystemBase

	classes [3]spawnClass

	enabled bool
}

func NewDirectorSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &DirectorSystem{
		SystemBase: engine.NewSystemBase(world, "director"),
		classes: [3]spawnClass{
			{kind: core.KindTank, stat: reg.Ints.Get("spawn.tanks")},
			{kind: core.KindJet, stat: reg.Ints.Get("spawn.jets")},
			{kind: core.KindDrone, stat: reg.Ints.Get("spawn.drones")},
		},
	}
	s.Init()
	return s
}

func (s *DirectorSystem) Init() {
	for i := range s.classes {
		s.classes[i].timer = 0
		s.classes[i].stat.Store(0)
	}
	s.enabled = true
}

func (s *DirectorSystem) Name() string { return "director" }

func (s *DirectorSystem) Priority() int { return parameter.PriorityDirector }

func (s *DirectorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventSpawnRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *DirectorSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		s.activate()
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	case event.EventScoreChanged:
		s.activate()
	case event.EventSpawnRequest:
		if payload, ok := ev.Payload.(*event.SpawnRequestPayload); ok {
			s.spawn(payload.Kind, true)
		}
	}
}

// activate latches each class on once progress reaches its fraction
func (s *DirectorSystem) activate() {
	sc := s.Resource.Score
	cfg := s.Resource.Config.Spawn
	progress := sc.Progress()

	if !sc.TanksActive && progress >= cfg.TankActivation {
		sc.TanksActive = true
		s.Log.Info().Float64("progress", progress).Msg("tanks introduced")
	}
	if !sc.JetsActive && progress >= cfg.JetActivation {
		sc.JetsActive = true
		s.Log.Info().Float64("progress", progress).Msg("jets introduced")
	}
	if !sc.DronesActive && progress >= cfg.DroneActivation {
		sc.DronesActive = true
		s.Log.Info().Float64("progress", progress).Msg("drones introduced")
	}
}

func (s *DirectorSystem) active(kind core.Kind) bool {
	sc := s.Resource.Score
	switch kind {
	case core.KindTank:
		return sc.TanksActive
	case core.KindJet:
		return sc.JetsActive
	case core.KindDrone:
		return sc.DronesActive
	}
	return false
}

func (s *DirectorSystem) Update() {
	if !s.enabled || s.Resource.Score.GameOver || !s.Resource.Chopper.Alive {
		return
	}

	dt := s.Dt()
	interval := s.Resource.Config.Spawn.Interval
	for i := range s.classes {
		c := &s.classes[i]
		if !s.active(c.kind) {
			continue
		}
		c.timer += dt
		if c.timer >= interval {
			c.timer -= interval
			s.spawn(c.kind, false)
		}
	}
}

// spawn places one enemy of the class if under its cap
// Forced spawns skip the territory gate
func (s *DirectorSystem) spawn(kind core.Kind, forced bool) bool {
	cfg := s.Resource.Config.Spawn
	var spawned bool

	switch kind {
	case core.KindTank:
		if s.World.CountKind(core.KindTank) < cfg.TankCap {
			spawned = s.spawnTank(forced)
		}
	case core.KindJet:
		if s.World.CountKind(core.KindJet) < cfg.JetCap {
			spawned = s.spawnJet(forced)
		}
	case core.KindDrone:
		if s.World.CountKind(core.KindDrone) < cfg.DroneCap {
			spawned = s.spawnDrone()
		}
	}

	if spawned {
		for i := range s.classes {
			if s.classes[i].kind == kind {
				s.classes[i].stat.Add(1)
			}
		}
	}
	return spawned
}

// spawnTank places a tank within the distance band on the side that keeps
// it in enemy territory
func (s *DirectorSystem) spawnTank(forced bool) bool {
	world := s.Resource.Config.World
	cx := s.Resource.Chopper.Pos.X
	if !forced && !world.InEnemyTerritory(cx) {
		return false
	}

	rng := s.Resource.Rand
	dist := rng.Range(parameter.TankSpawnMinDistance, parameter.TankSpawnMaxDistance)
	x := cx + dist
	if world.LeftRiverBoundary-cx < parameter.TankSpawnMaxDistance || rng.Coin() {
		x = cx - dist
	}
	x = vmath.Clamp(x, world.LeftBoundary, world.LeftRiverBoundary-s.Resource.Config.Tank.Territory)

	e := spawnTank(s.World, x)
	s.Log.Debug().Uint64("entity", uint64(e)).Float64("x", x).Msg("tank spawned")
	return true
}

// spawnJet places a jet just outside the view; a fast-moving helicopter with
// room ahead meets it from the front
func (s *DirectorSystem) spawnJet(forced bool) bool {
	world := s.Resource.Config.World
	chopper := s.Resource.Chopper
	if !forced && !world.InEnemyTerritory(chopper.Pos.X) {
		return false
	}

	x := chopper.Pos.X - parameter.JetSpawnDistance
	heading := 1.0
	if chopper.Vel.X > s.Resource.Config.Jet.StillMaxSpeed &&
		world.LeftRiverBoundary-chopper.Pos.X > parameter.JetSpawnDistance {
		x = chopper.Pos.X + parameter.JetSpawnDistance
		heading = -1
	}
	headOn := s.Resource.Rand.Intn(s.Resource.Config.Jet.HeadOnChance) == 0
	pos := vmath.V3F(x, chopper.Pos.Y+parameter.JetSpawnHeight, parameter.JetZ)

	e := spawnJet(s.World, pos, heading, headOn)
	s.Log.Debug().
		Uint64("entity", uint64(e)).
		Float64("x", x).
		Float64("heading", heading).
		Bool("head_on", headOn).
		Msg("jet spawned")
	return true
}

// spawnDrone places a drone off screen at a random height
func (s *DirectorSystem) spawnDrone() bool {
	world := s.Resource.Config.World
	cx := s.Resource.Chopper.Pos.X
	rng := s.Resource.Rand

	var x float64
	if rng.Coin() || world.LeftRiverBoundary-cx < parameter.DroneSpawnDistance {
		x = rng.Range(world.LeftBoundary-parameter.DroneSpawnDistance, cx-parameter.DroneSpawnDistance)
	} else {
		x = rng.Range(cx+parameter.DroneSpawnDistance, world.LeftRiverBoundary)
	}
	y := rng.Range(world.Ground, world.Ceiling)

	e := spawnDrone(s.World, vmath.V3F(x, y, parameter.DroneZ))
	s.Log.Debug().Uint64("entity", uint64(e)).Float64("x", x).Float64("y", y).Msg("drone spawned")
	return true
}
