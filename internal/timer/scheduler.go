package timer

import (
	"sync"
	"time"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
)

// Countdown is the scheduler surface the engine depends on.
type Countdown interface {
	// Start begins a countdown of d, superseding any running one.
	// onUpdate receives the remaining time on every tick; onExpired
	// fires exactly once when the target time is reached.
	Start(d time.Duration, onUpdate func(time.Duration), onExpired func())
	// Stop cancels the running countdown. Idempotent.
	Stop()
}

// Scheduler drives a single cancellable repeating countdown. Each tick
// compares the absolute target time against the wall clock, so drift
// in tick delivery never desynchronizes the countdown. Starting a new
// countdown supersedes the previous one: a generation counter
// guarantees no callback from a superseded countdown is delivered.
type Scheduler struct {
	mu       sync.Mutex
	gen      uint64
	running  bool
	interval time.Duration
	now      func() time.Time
}

// NewScheduler returns a Scheduler ticking at the given cadence.
// A non-positive interval falls back to the default tick interval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = config.TickInterval
	}
	return &Scheduler{
		interval: interval,
		now:      time.Now,
	}
}

var _ Countdown = (*Scheduler)(nil)

// Start begins a countdown of d. A non-positive duration expires on
// the first tick (fail-safe, not fatal).
func (s *Scheduler) Start(d time.Duration, onUpdate func(time.Duration), onExpired func()) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.running = true
	target := s.now().Add(d)
	s.mu.Unlock()

	go s.run(gen, target, onUpdate, onExpired)
}

// Stop cancels any in-flight countdown. Safe to call when not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.gen++
		s.running = false
	}
}

// Running reports whether a countdown is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(gen uint64, target time.Time, onUpdate func(time.Duration), onExpired func()) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		if s.gen != gen {
			// Superseded or stopped; this countdown must go silent.
			s.mu.Unlock()
			return
		}
		remaining := target.Sub(s.now())
		expired := remaining <= 0
		if expired {
			s.running = false
		}
		s.mu.Unlock()

		// A Start racing the unlock above would bump the generation;
		// re-check right before delivery so a remaining value computed
		// from a superseded target never reaches the callback.
		s.mu.Lock()
		stale := s.gen != gen
		s.mu.Unlock()
		if stale {
			return
		}

		if expired {
			if onExpired != nil {
				onExpired()
			}
			return
		}
		if onUpdate != nil {
			onUpdate(remaining)
		}
	}
}
