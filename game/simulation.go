package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/manifest"
	"github.com/eniklas/nachtmission/system"
)

// Input is one tick's control sample
type Input = engine.InputResource

// Option configures a Simulation at construction
type Option func(*options)

type options struct {
	effects  engine.EffectPlayer
	listener engine.ScoreListener
	log      zerolog.Logger
	clock    engine.TimeProvider
}

// WithEffects sets the presentation collaborator for effects and sounds
func WithEffects(p engine.EffectPlayer) Option {
	return func(o *options) { o.effects = p }
}

// WithListener sets the score/UI collaborator
func WithListener(l engine.ScoreListener) Option {
	return func(o *options) { o.listener = l }
}

// WithLogger sets the structured logger handed to every system
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithTimeProvider replaces the wall clock used by Run
func WithTimeProvider(p engine.TimeProvider) Option {
	return func(o *options) { o.clock = p }
}

// Simulation is the embedding surface of the core: construct, Reset, then Step
// Step and the query accessors are safe to call from different goroutines
type Simulation struct {
	world *engine.World
	sched *engine.ClockScheduler
	log   zerolog.Logger

	updateDone <-chan struct{}
}

// New validates the configuration, wires every system and builds the first session
func New(cfg *config.Config, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	o := options{
		effects:  engine.NopEffects{},
		listener: engine.NopListener{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	world := engine.NewWorld(cfg, o.log)
	world.Resources.Effects = o.effects
	world.Resources.Listener = o.listener

	interval := time.Duration(float64(time.Second) / cfg.Game.TickRate)
	sched, done := engine.NewClockScheduler(world, engine.NewPausableClock(o.clock), interval)
	sched.SetResetHook(system.BuildLevel)

	manifest.RegisterSystems()
	for _, s := range manifest.BuildSystems(world) {
		sched.RegisterSystem(s)
	}

	sim := &Simulation{
		world:      world,
		sched:      sched,
		log:        o.log.With().Str("component", "simulation").Logger(),
		updateDone: done,
	}
	sim.Reset()
	return sim, nil
}

// Reset discards the session and rebuilds the level
func (s *Simulation) Reset() {
	s.world.RunSafe(s.sched.Reset)
}

// Step advances the simulation by dt with one input sample
func (s *Simulation) Step(dt time.Duration, in Input) {
	s.world.RunSafe(func() {
		s.sched.Tick(dt, in)
	})
}

// StepSeconds is Step with dt in seconds
func (s *Simulation) StepSeconds(dt float64, in Input) {
	s.Step(time.Duration(dt*float64(time.Second)), in)
}

// Run ticks at the configured rate until ctx is cancelled
func (s *Simulation) Run(ctx context.Context, input func() Input) error {
	s.log.Info().Dur("tick", s.sched.TickInterval()).Msg("simulation running")
	return s.sched.Run(ctx, input)
}

// UpdateDone signals each completed tick of Run, never blocks the scheduler
func (s *Simulation) UpdateDone() <-chan struct{} {
	return s.updateDone
}

// TickInterval is the fixed step used by Run
func (s *Simulation) TickInterval() time.Duration {
	return s.sched.TickInterval()
}

// World exposes the entity world for tooling and tests
func (s *Simulation) World() *engine.World {
	return s.world
}

// SetSystemEnabled toggles a system by name through the event bus
func (s *Simulation) SetSystemEnabled(name string, enabled bool) {
	s.world.RunSafe(func() {
		s.world.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{
			SystemName: name,
			Enabled:    enabled,
		})
	})
}

// RequestSpawn asks the director for one enemy of kind on the next tick
// Population caps still apply
func (s *Simulation) RequestSpawn(kind core.Kind) {
	s.world.RunSafe(func() {
		s.world.PushEvent(event.EventSpawnRequest, &event.SpawnRequestPayload{Kind: kind})
	})
}
