// Package testutil provides fluent builders for domain objects used
// across test suites.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// ConfigBuilder provides a fluent API for creating workout configs.
type ConfigBuilder struct {
	cfg models.WorkoutConfig
}

func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: models.WorkoutConfig{
			ExerciseName: "Squats",
			TotalSets:    3,
			RestDuration: 60 * time.Second,
		},
	}
}

func (b *ConfigBuilder) WithExercise(name string) *ConfigBuilder {
	b.cfg.ExerciseName = name
	return b
}

func (b *ConfigBuilder) WithSets(n int) *ConfigBuilder {
	b.cfg.TotalSets = n
	return b
}

func (b *ConfigBuilder) WithRest(d time.Duration) *ConfigBuilder {
	b.cfg.RestDuration = d
	return b
}

func (b *ConfigBuilder) Build() models.WorkoutConfig {
	return b.cfg
}

// SetLogBuilder provides a fluent API for creating set logs.
type SetLogBuilder struct {
	set models.SetLog
}

func NewSetLog(number int) *SetLogBuilder {
	return &SetLogBuilder{
		set: models.SetLog{
			SetNumber: number,
			CreatedAt: time.Now(),
		},
	}
}

func (b *SetLogBuilder) WithReps(reps int) *SetLogBuilder {
	b.set.Reps = util.Ptr(reps)
	return b
}

func (b *SetLogBuilder) WithWeight(w string) *SetLogBuilder {
	b.set.WeightResistance = w
	return b
}

func (b *SetLogBuilder) WithNotes(n string) *SetLogBuilder {
	b.set.Notes = n
	return b
}

func (b *SetLogBuilder) Build() models.SetLog {
	return b.set
}

// SessionBuilder provides a fluent API for creating workout sessions.
type SessionBuilder struct {
	session models.WorkoutSession
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.WorkoutSession{
			ID:       uuid.New(),
			Date:     time.Now(),
			Duration: 5 * time.Minute,
		},
	}
}

func (b *SessionBuilder) WithDate(d time.Time) *SessionBuilder {
	b.session.Date = d
	return b
}

func (b *SessionBuilder) WithDuration(d time.Duration) *SessionBuilder {
	b.session.Duration = d
	return b
}

func (b *SessionBuilder) WithExercise(name string, sets ...models.SetLog) *SessionBuilder {
	b.session.Exercises = append(b.session.Exercises, models.ExerciseLog{Name: name, Sets: sets})
	return b
}

func (b *SessionBuilder) Build() *models.WorkoutSession {
	s := b.session
	return &s
}
