package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
)

// recordingProvider hands out counters that remember every Add by name and attribute value
type recordingProvider struct {
	noop.MeterProvider

	mu     sync.Mutex
	counts map[string]map[string]int64
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{counts: make(map[string]map[string]int64)}
}

func (p *recordingProvider) Meter(string, ...metric.MeterOption) metric.Meter {
	return recordingMeter{p: p}
}

func (p *recordingProvider) get(name, attr string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[name][attr]
}

type recordingMeter struct {
	noop.Meter
	p *recordingProvider
}

func (m recordingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return recordingCounter{name: name, p: m.p}, nil
}

type recordingCounter struct {
	noop.Int64Counter
	name string
	p    *recordingProvider
}

func (c recordingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	cfg := metric.NewAddConfig(opts)
	attr := ""
	attrs := cfg.Attributes()
	for _, kv := range attrs.ToSlice() {
		attr = kv.Value.AsString()
	}

	c.p.mu.Lock()
	defer c.p.mu.Unlock()
	if c.p.counts[c.name] == nil {
		c.p.counts[c.name] = make(map[string]int64)
	}
	c.p.counts[c.name][attr] += incr
}

func TestRecorderCountsEvents(t *testing.T) {
	mp := newRecordingProvider()
	r, err := New(WithMeterProvider(mp))
	require.NoError(t, err)

	_, ok := r.Last()
	assert.False(t, ok)

	r.OnScoreEvent(engine.ScoreEvent{Type: event.EventPrisonerBoarded, Counters: event.Counters{Total: 32, Captive: 31, Onboard: 1}})
	r.OnScoreEvent(engine.ScoreEvent{Type: event.EventPrisonerBoarded, Counters: event.Counters{Total: 32, Captive: 30, Onboard: 2}})
	r.OnScoreEvent(engine.ScoreEvent{Type: event.EventPrisonerRescued, Counters: event.Counters{Total: 32, Captive: 30, Onboard: 1, Rescued: 1}})

	assert.EqualValues(t, 2, mp.get("nachtmission.score.events", "prisoner_boarded"))
	assert.EqualValues(t, 1, mp.get("nachtmission.score.events", "prisoner_rescued"))
	assert.Zero(t, mp.get("nachtmission.games.completed", core.OutcomePerfect.String()))

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 1, last.Rescued)
	assert.Equal(t, 1, last.Onboard)
}

func TestRecorderCountsGameOutcome(t *testing.T) {
	mp := newRecordingProvider()
	r, err := New(WithMeterProvider(mp))
	require.NoError(t, err)

	r.OnScoreEvent(engine.ScoreEvent{Type: event.EventGameOver, Outcome: core.OutcomeExcellent})

	assert.EqualValues(t, 1, mp.get("nachtmission.score.events", "game_over"))
	assert.EqualValues(t, 1, mp.get("nachtmission.games.completed", core.OutcomeExcellent.String()))
}

func TestRecorderUsesGlobalProvider(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		r.OnScoreEvent(engine.ScoreEvent{Type: event.EventChopperDestroyed})
	})
}

func TestRecorderIsScoreListener(t *testing.T) {
	var _ engine.ScoreListener = (*Recorder)(nil)
}
