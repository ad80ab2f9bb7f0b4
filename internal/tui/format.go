package tui

import (
	"fmt"
	"time"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRemaining formats remaining time as mm:ss, rounding up so
// the display never shows 00:00 while time is still left.
func FormatTimeRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	total := int((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatPhase returns the one-line status for the current phase.
func FormatPhase(p models.Phase) string {
	switch p.Kind {
	case models.PhaseReady:
		return fmt.Sprintf("Ready - %d sets of %s", p.TotalSets, p.Config.ExerciseName)
	case models.PhaseWorking:
		return fmt.Sprintf("Set %d of %d - go!", p.CurrentSet, p.TotalSets)
	case models.PhaseResting:
		return fmt.Sprintf("Rest - set %d of %d up next", p.NextSet, p.TotalSets)
	case models.PhasePaused:
		return fmt.Sprintf("Paused - set %d of %d up next", p.NextSet, p.TotalSets)
	case models.PhaseCompleted:
		return "Workout complete"
	}
	return "Configure a workout"
}
