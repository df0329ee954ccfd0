package engine

import (
	"sync"
	"time"
)

// PausableClock measures game time as real time minus time spent paused
type PausableClock struct {
	mu sync.Mutex

	provider  TimeProvider
	start     time.Time
	lastRead  time.Time
	paused    bool
	pauseFrom time.Time
	pausedFor time.Duration
}

// NewPausableClock creates a running clock over the given provider
// A nil provider uses the system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	now := provider.Now()
	return &PausableClock{
		provider: provider,
		start:    now,
		lastRead: now,
	}
}

// GameElapsed returns time elapsed while running
func (pc *PausableClock) GameElapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.gameElapsedLocked(pc.provider.Now())
}

func (pc *PausableClock) gameElapsedLocked(now time.Time) time.Duration {
	paused := pc.pausedFor
	if pc.paused {
		paused += now.Sub(pc.pauseFrom)
	}
	return now.Sub(pc.start) - paused
}

// RealDelta returns wall time since the previous RealDelta call
func (pc *PausableClock) RealDelta() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	now := pc.provider.Now()
	d := now.Sub(pc.lastRead)
	pc.lastRead = now
	if d < 0 {
		return 0
	}
	return d
}

// Pause freezes game time, repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseFrom = pc.provider.Now()
}

// Resume continues game time, repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.provider.Now().Sub(pc.pauseFrom)
	pc.paused = false
	pc.pauseFrom = time.Time{}
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration includes the pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseFrom)
	}
	return total
}
