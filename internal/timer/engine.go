package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tigrerol/SimpleTimerApp/internal/database"
	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/notify"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// WakeLock keeps the device awake while a set or rest period is
// active. The terminal build ships a no-op implementation.
type WakeLock interface {
	Disable() // screen may not sleep
	Enable()  // screen may sleep again
}

// NopWakeLock is a WakeLock that does nothing.
type NopWakeLock struct{}

func (NopWakeLock) Disable() {}
func (NopWakeLock) Enable()  {}

// Event is published to subscribers on every phase change.
type Event struct {
	Phase models.Phase
	// RestExpired marks the event produced by a rest countdown
	// reaching zero (never set on a manual skip).
	RestExpired bool
}

// Options configures an Engine.
type Options struct {
	// AutoAdvanceOnRestExpiry moves straight to the next Working
	// phase when the rest countdown expires. When false the phase
	// stays Resting with zero remaining, awaiting a manual advance.
	AutoAdvanceOnRestExpiry bool

	Countdown Countdown
	Notifier  notify.Notifier
	WakeLock  WakeLock
	Store     database.SessionStore
}

// Engine orchestrates the state machine, the countdown scheduler, and
// the notifier. All mutations are serialized by a single mutex: public
// API calls and scheduler callbacks contend for it, so a stale tick can
// never mutate a paused or reset phase.
type Engine struct {
	mu        sync.Mutex
	state     *State
	countdown Countdown
	notifier  notify.Notifier
	wake      WakeLock
	store     database.SessionStore

	autoAdvance bool
	subs        []chan Event
}

// NewEngine builds an Engine. Nil collaborators fall back to no-ops so
// the core never depends on hardware being present.
func NewEngine(opts Options) *Engine {
	if opts.Countdown == nil {
		opts.Countdown = NewScheduler(0)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.WakeLock == nil {
		opts.WakeLock = NopWakeLock{}
	}
	return &Engine{
		state:       NewState(),
		countdown:   opts.Countdown,
		notifier:    opts.Notifier,
		wake:        opts.WakeLock,
		store:       opts.Store,
		autoAdvance: opts.AutoAdvanceOnRestExpiry,
	}
}

// Subscribe returns a channel receiving phase-change events. The
// channel is buffered and publishes are non-blocking: a slow consumer
// misses intermediate events rather than stalling the engine. Callers
// release the channel with Unsubscribe when done listening.
func (e *Engine) Subscribe() <-chan Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan Event, 16)
	e.subs = append(e.subs, ch)
	return ch
}

// Unsubscribe removes a channel returned by Subscribe and closes it.
// Unknown or already-released channels are ignored, so a second call is
// a no-op.
func (e *Engine) Unsubscribe(ch <-chan Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sub := range e.subs {
		if (<-chan Event)(sub) == ch {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() models.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Phase()
}

// ConfigureWorkout binds a new workout config. Any unsaved in-progress
// session is silently discarded; the presentation layer confirms first.
func (e *Engine) ConfigureWorkout(cfg models.WorkoutConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.countdown.Stop()
	e.state.ConfigureWorkout(cfg)
	e.publishLocked(Event{Phase: e.state.Phase()})
}

// StartCurrentSet begins the next set: from Ready it starts the
// workout, from Resting it skips the remaining rest. The screen is
// kept awake for the duration of the workout.
func (e *Engine) StartCurrentSet() {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state.Phase().Kind {
	case models.PhaseReady:
		e.state.StartWorkout()
	case models.PhaseResting:
		e.countdown.Stop()
		e.state.StartSet(e.state.Phase().NextSet)
	default:
		return
	}
	e.wake.Disable()
	e.publishLocked(Event{Phase: e.state.Phase()})
}

// EndCurrentSet finishes the active set. Entering Resting starts the
// countdown; entering Completed releases the wake lock.
func (e *Engine) EndCurrentSet() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase().Kind != models.PhaseWorking {
		return
	}
	e.state.EndSet()
	phase := e.state.Phase()
	switch phase.Kind {
	case models.PhaseResting:
		e.countdown.Start(phase.TimeRemaining, e.handleTick, e.handleExpired)
	case models.PhaseCompleted:
		e.wake.Enable()
	}
	e.publishLocked(Event{Phase: phase})
}

// PauseTimer suspends the rest countdown. The state transition happens
// before the scheduler stop; the mutex keeps any in-flight tick from
// touching the paused phase.
func (e *Engine) PauseTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase().Kind != models.PhaseResting {
		return
	}
	e.state.Pause()
	e.countdown.Stop()
	e.publishLocked(Event{Phase: e.state.Phase()})
}

// ResumeTimer restarts the rest period at the full configured
// duration.
func (e *Engine) ResumeTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase().Kind != models.PhasePaused {
		return
	}
	e.state.Resume()
	phase := e.state.Phase()
	if phase.Kind == models.PhaseResting {
		e.countdown.Start(phase.TimeRemaining, e.handleTick, e.handleExpired)
	}
	e.publishLocked(Event{Phase: phase})
}

// ResetTimer abandons the workout without saving and releases the wake
// lock.
func (e *Engine) ResetTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.countdown.Stop()
	e.state.Reset()
	e.wake.Enable()
	e.publishLocked(Event{Phase: e.state.Phase()})
}

// AddSetLog records reps/weight/notes for a completed set.
func (e *Engine) AddSetLog(sl models.SetLog) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.AddSetLog(sl)
}

// SetLogs returns the sets recorded for the in-progress workout.
func (e *Engine) SetLogs() []models.SetLog {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.SetLogs()
}

// FinishWorkout finalizes the session, hands it to storage when a
// store is configured, and resets the engine. Returns the completed
// session, or nil when none was active.
func (e *Engine) FinishWorkout(ctx context.Context) (*models.WorkoutSession, error) {
	e.mu.Lock()
	e.countdown.Stop()
	session := e.state.CompleteWorkout()
	e.wake.Enable()
	if session != nil {
		e.publishLocked(Event{Phase: e.state.Phase()})
	}
	e.mu.Unlock()

	if session == nil {
		return nil, nil
	}
	if e.store != nil {
		if err := e.store.SaveSession(ctx, session); err != nil {
			return session, err
		}
	}
	return session, nil
}

func (e *Engine) handleTick(remaining time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase().Kind != models.PhaseResting {
		return
	}
	e.state.SetTimeRemaining(remaining)
	e.publishLocked(Event{Phase: e.state.Phase()})
}

func (e *Engine) handleExpired() {
	e.mu.Lock()
	phase := e.state.Phase()
	if phase.Kind != models.PhaseResting {
		e.mu.Unlock()
		return
	}
	e.countdown.Stop()
	e.state.SetTimeRemaining(0)

	if e.autoAdvance {
		if phase.NextSet > phase.TotalSets {
			e.state.Complete()
			e.wake.Enable()
		} else {
			e.state.StartSet(phase.NextSet)
		}
	}
	e.publishLocked(Event{Phase: e.state.Phase(), RestExpired: true})
	e.mu.Unlock()

	// Bell patterns sleep between rings; never hold the lock while
	// they play.
	e.notifyRestComplete()
}

// notifyRestComplete fires the completion notifier. Failures degrade
// inside the notifier; a panic from missing hardware is contained here
// so it can never unwind into the state machine.
func (e *Engine) notifyRestComplete() {
	defer func() {
		if r := recover(); r != nil {
			util.LogError("notifier", fmt.Errorf("panic: %v", r))
		}
	}()
	e.notifier.NotifyRestComplete()
}

func (e *Engine) publishLocked(ev Event) {
	for _, ch := range e.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
