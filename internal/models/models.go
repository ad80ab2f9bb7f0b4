package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhaseKind enumerates the states of the workout timer.
type PhaseKind int

const (
	PhaseConfiguring PhaseKind = iota
	PhaseReady
	PhaseWorking
	PhaseResting
	PhasePaused
	PhaseCompleted
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseConfiguring:
		return "configuring"
	case PhaseReady:
		return "ready"
	case PhaseWorking:
		return "working"
	case PhaseResting:
		return "resting"
	case PhasePaused:
		return "paused"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Phase is the single current state of the timer. Only the fields
// belonging to the active Kind are meaningful:
//
//	Ready:     Config
//	Working:   Config, CurrentSet, TotalSets
//	Resting:   Config, TimeRemaining, NextSet, TotalSets
//	Paused:    Config, NextSet, TotalSets (remaining time is deliberately
//	           not carried; resuming restarts the full rest duration)
//	Completed: Config
type Phase struct {
	Kind          PhaseKind
	Config        *WorkoutConfig
	CurrentSet    int
	NextSet       int
	TotalSets     int
	TimeRemaining time.Duration
}

// WorkoutConfig is the validated input for a single-exercise workout.
// Immutable once a workout starts.
type WorkoutConfig struct {
	ExerciseName string
	TotalSets    int
	RestDuration time.Duration
}

// Valid reports whether the config can start a workout.
func (c WorkoutConfig) Valid() bool {
	if strings.TrimSpace(c.ExerciseName) == "" {
		return false
	}
	if c.TotalSets <= 0 {
		return false
	}
	return c.RestDuration > 0
}

// SetLog records a single completed set. Immutable once created.
type SetLog struct {
	SetNumber        int
	Reps             *int // nil when not recorded
	WeightResistance string
	Notes            string
	CreatedAt        time.Time
}

// ExerciseLog is the ordered, append-only record of sets for one exercise.
type ExerciseLog struct {
	Name string
	Sets []SetLog
}

// WorkoutSession is one full recorded workout. Date is set when the
// workout is configured; Duration is computed at completion.
type WorkoutSession struct {
	ID        uuid.UUID
	Date      time.Time
	Duration  time.Duration
	Exercises []ExerciseLog
}

// Sound identifies a notification sound.
type Sound string

const (
	SoundChime  Sound = "chime"
	SoundDouble Sound = "double"
	SoundTriple Sound = "triple"
	SoundSilent Sound = "silent"
)

// Sounds lists the selectable notification sounds in display order.
var Sounds = []Sound{SoundChime, SoundDouble, SoundTriple, SoundSilent}

// ParseSound maps a stored setting value to a Sound, falling back to
// the default chime for unknown values.
func ParseSound(s string) Sound {
	for _, snd := range Sounds {
		if string(snd) == s {
			return snd
		}
	}
	return SoundChime
}

// NextSound returns the sound after s in display order, wrapping at
// the end.
func NextSound(s Sound) Sound {
	for i, snd := range Sounds {
		if snd == s {
			return Sounds[(i+1)%len(Sounds)]
		}
	}
	return Sounds[0]
}
