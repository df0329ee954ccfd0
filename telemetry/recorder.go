// Package telemetry exports mission progress as OpenTelemetry metrics
// Uses the global meter provider unless one is given, a no-op until an SDK is installed
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
)

const instrumentationName = "github.com/eniklas/nachtmission/telemetry"

// Recorder is a score listener that counts score events and observes the latest counters
type Recorder struct {
	events    metric.Int64Counter
	games     metric.Int64Counter
	prisoners metric.Int64ObservableGauge
	lives     metric.Int64ObservableGauge

	mu   sync.RWMutex
	last event.Counters
	seen bool
}

// Option configures a Recorder
type Option func(*options)

type options struct {
	provider metric.MeterProvider
}

// WithMeterProvider overrides the global meter provider
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.provider = mp }
}

// New creates a Recorder and registers its instruments
func New(opts ...Option) (*Recorder, error) {
	o := options{provider: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&o)
	}
	m := o.provider.Meter(instrumentationName)

	r := &Recorder{}
	var err error

	r.events, err = m.Int64Counter(
		"nachtmission.score.events",
		metric.WithDescription("Score events by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	r.games, err = m.Int64Counter(
		"nachtmission.games.completed",
		metric.WithDescription("Finished sessions by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating games counter: %w", err)
	}

	r.prisoners, err = m.Int64ObservableGauge(
		"nachtmission.prisoners",
		metric.WithDescription("Prisoners per state in the running session"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating prisoners gauge: %w", err)
	}

	r.lives, err = m.Int64ObservableGauge(
		"nachtmission.lives",
		metric.WithDescription("Remaining helicopters"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lives gauge: %w", err)
	}

	_, err = m.RegisterCallback(r.observe, r.prisoners, r.lives)
	if err != nil {
		return nil, fmt.Errorf("registering counters callback: %w", err)
	}

	return r, nil
}

func (r *Recorder) observe(_ context.Context, o metric.Observer) error {
	c, ok := r.Last()
	if !ok {
		return nil
	}
	for state, v := range map[string]int{
		"captive": c.Captive,
		"onboard": c.Onboard,
		"rescued": c.Rescued,
		"killed":  c.Killed,
	} {
		o.ObserveInt64(r.prisoners, int64(v), metric.WithAttributes(attribute.String("state", state)))
	}
	o.ObserveInt64(r.lives, int64(c.Lives))
	return nil
}

// OnScoreEvent implements engine.ScoreListener
func (r *Recorder) OnScoreEvent(ev engine.ScoreEvent) {
	r.mu.Lock()
	r.last = ev.Counters
	r.seen = true
	r.mu.Unlock()

	ctx := context.Background()
	r.events.Add(ctx, 1, metric.WithAttributes(attribute.String("event", ev.Type.String())))

	if ev.Type == event.EventGameOver {
		r.games.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", ev.Outcome.String())))
	}
}

// Last returns the most recent counters, false before the first event
func (r *Recorder) Last() (event.Counters, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last, r.seen
}
