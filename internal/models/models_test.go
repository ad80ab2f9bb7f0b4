package models

import (
	"testing"
	"time"
)

func TestWorkoutConfigValid(t *testing.T) {
	cases := []struct {
		name string
		cfg  WorkoutConfig
		want bool
	}{
		{"ok", WorkoutConfig{ExerciseName: "Squats", TotalSets: 3, RestDuration: 60 * time.Second}, true},
		{"empty name", WorkoutConfig{ExerciseName: "", TotalSets: 3, RestDuration: 60 * time.Second}, false},
		{"whitespace name", WorkoutConfig{ExerciseName: "   ", TotalSets: 3, RestDuration: 60 * time.Second}, false},
		{"zero sets", WorkoutConfig{ExerciseName: "Squats", TotalSets: 0, RestDuration: 60 * time.Second}, false},
		{"negative sets", WorkoutConfig{ExerciseName: "Squats", TotalSets: -1, RestDuration: 60 * time.Second}, false},
		{"zero rest", WorkoutConfig{ExerciseName: "Squats", TotalSets: 3, RestDuration: 0}, false},
		{"negative rest", WorkoutConfig{ExerciseName: "Squats", TotalSets: 3, RestDuration: -time.Second}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPhaseKindString(t *testing.T) {
	kinds := map[PhaseKind]string{
		PhaseConfiguring: "configuring",
		PhaseReady:       "ready",
		PhaseWorking:     "working",
		PhaseResting:     "resting",
		PhasePaused:      "paused",
		PhaseCompleted:   "completed",
		PhaseKind(99):    "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("PhaseKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestParseSound(t *testing.T) {
	if got := ParseSound("double"); got != SoundDouble {
		t.Errorf("ParseSound(double) = %v", got)
	}
	if got := ParseSound("airhorn"); got != SoundChime {
		t.Errorf("ParseSound(unknown) = %v, want chime fallback", got)
	}
	if got := ParseSound(""); got != SoundChime {
		t.Errorf("ParseSound(empty) = %v, want chime fallback", got)
	}
}

func TestNextSound(t *testing.T) {
	if got := NextSound(SoundChime); got != SoundDouble {
		t.Errorf("NextSound(chime) = %v, want double", got)
	}
	if got := NextSound(SoundSilent); got != SoundChime {
		t.Errorf("NextSound(silent) = %v, want wrap to chime", got)
	}
	if got := NextSound(Sound("airhorn")); got != SoundChime {
		t.Errorf("NextSound(unknown) = %v, want chime", got)
	}
}
