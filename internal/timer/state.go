// Package timer implements the workout timer core: the phase state
// machine, the countdown scheduler, and the engine that wires them to
// the notifier and storage collaborators.
package timer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
)

// State is the pure workout state machine. It owns the current Phase
// and the in-progress session log. No I/O, no goroutines; invalid
// transitions are silent no-ops.
//
// State is not safe for concurrent use; the Engine serializes access.
type State struct {
	phase    models.Phase
	config   *models.WorkoutConfig
	session  *models.WorkoutSession
	exercise *models.ExerciseLog

	now func() time.Time
}

// NewState returns a State in the Configuring phase.
func NewState() *State {
	return &State{
		phase: models.Phase{Kind: models.PhaseConfiguring},
		now:   time.Now,
	}
}

// Phase returns the current phase.
func (s *State) Phase() models.Phase {
	return s.phase
}

// Config returns the bound workout config, or nil while configuring.
func (s *State) Config() *models.WorkoutConfig {
	return s.config
}

// ConfigureWorkout binds a config, creating a fresh session and
// exercise log, and moves to Ready. An invalid config is ignored.
// Any prior in-progress session is discarded without saving.
func (s *State) ConfigureWorkout(cfg models.WorkoutConfig) {
	if !cfg.Valid() {
		return
	}
	cfg.ExerciseName = strings.TrimSpace(cfg.ExerciseName)
	s.config = &cfg
	s.session = &models.WorkoutSession{
		ID:   uuid.New(),
		Date: s.now(),
	}
	s.exercise = &models.ExerciseLog{Name: cfg.ExerciseName}
	s.phase = models.Phase{
		Kind:      models.PhaseReady,
		Config:    s.config,
		TotalSets: cfg.TotalSets,
	}
}

// StartWorkout begins the first set. Valid from Ready.
func (s *State) StartWorkout() {
	s.StartSet(1)
}

// StartSet moves to Working on set n. Valid from Ready or Resting;
// ignored when no config is bound.
func (s *State) StartSet(n int) {
	if s.config == nil {
		return
	}
	if s.phase.Kind != models.PhaseReady && s.phase.Kind != models.PhaseResting {
		return
	}
	s.phase = models.Phase{
		Kind:       models.PhaseWorking,
		Config:     s.config,
		CurrentSet: n,
		TotalSets:  s.config.TotalSets,
	}
}

// EndSet finishes the current set. From the last set it moves to
// Completed, otherwise to Resting with the full rest duration.
func (s *State) EndSet() {
	if s.phase.Kind != models.PhaseWorking {
		return
	}
	if s.phase.CurrentSet >= s.config.TotalSets {
		s.Complete()
		return
	}
	s.phase = models.Phase{
		Kind:          models.PhaseResting,
		Config:        s.config,
		TimeRemaining: s.config.RestDuration,
		NextSet:       s.phase.CurrentSet + 1,
		TotalSets:     s.config.TotalSets,
	}
}

// Pause suspends the rest countdown. The live remaining value is
// discarded; Resume restarts the full rest duration. The caller owns
// stopping the scheduler.
func (s *State) Pause() {
	if s.phase.Kind != models.PhaseResting {
		return
	}
	s.phase = models.Phase{
		Kind:      models.PhasePaused,
		Config:    s.config,
		NextSet:   s.phase.NextSet,
		TotalSets: s.phase.TotalSets,
	}
}

// Resume returns from Paused to Resting at the full configured rest
// duration.
func (s *State) Resume() {
	if s.phase.Kind != models.PhasePaused {
		return
	}
	s.phase = models.Phase{
		Kind:          models.PhaseResting,
		Config:        s.config,
		TimeRemaining: s.config.RestDuration,
		NextSet:       s.phase.NextSet,
		TotalSets:     s.phase.TotalSets,
	}
}

// Complete forces the Completed phase. Used when the final set ends
// and as the out-of-range guard on rest expiry.
func (s *State) Complete() {
	if s.config == nil {
		return
	}
	s.phase = models.Phase{
		Kind:      models.PhaseCompleted,
		Config:    s.config,
		TotalSets: s.config.TotalSets,
	}
}

// SetTimeRemaining mirrors a scheduler update into the Resting phase.
// Negative values clamp to zero. Ignored outside Resting.
func (s *State) SetTimeRemaining(d time.Duration) {
	if s.phase.Kind != models.PhaseResting {
		return
	}
	if d < 0 {
		d = 0
	}
	s.phase.TimeRemaining = d
}

// Reset unconditionally returns to Configuring, discarding the config,
// session, and exercise log without saving.
func (s *State) Reset() {
	s.config = nil
	s.session = nil
	s.exercise = nil
	s.phase = models.Phase{Kind: models.PhaseConfiguring}
}

// AddSetLog appends a set record to the in-progress exercise log.
// Ignored when no workout is active.
func (s *State) AddSetLog(sl models.SetLog) {
	if s.exercise == nil {
		return
	}
	if sl.CreatedAt.IsZero() {
		sl.CreatedAt = s.now()
	}
	s.exercise.Sets = append(s.exercise.Sets, sl)
}

// SetLogs returns the sets recorded so far.
func (s *State) SetLogs() []models.SetLog {
	if s.exercise == nil {
		return nil
	}
	return s.exercise.Sets
}

// CompleteWorkout finalizes the session duration, attaches the
// exercise log, resets the state, and returns the finished session.
// Ownership transfers to the caller. Returns nil when no session is
// active.
func (s *State) CompleteWorkout() *models.WorkoutSession {
	if s.session == nil {
		return nil
	}
	session := s.session
	session.Duration = s.now().Sub(session.Date)
	if session.Duration < 0 {
		session.Duration = 0
	}
	session.Exercises = append(session.Exercises, *s.exercise)
	s.Reset()
	return session
}
