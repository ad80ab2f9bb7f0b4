// Package report exports workout history as a PDF document.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// GeneratePDF writes a workout history report for the given sessions
// (expected newest first) to path.
func GeneratePDF(sessions []models.WorkoutSession, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Workout History")
	pdf.Ln(12)

	if len(sessions) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No workouts recorded yet.")
		pdf.Ln(8)
	}

	for _, s := range sessions {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("%s  (%s)", s.Date.Format("2006-01-02 15:04"), formatMinutes(s)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		for _, ex := range s.Exercises {
			pdf.Cell(0, 8, fmt.Sprintf("  %s - %d sets", ex.Name, len(ex.Sets)))
			pdf.Ln(6)
			for _, set := range ex.Sets {
				line := fmt.Sprintf("      Set %d", set.SetNumber)
				if set.Reps != nil {
					line += fmt.Sprintf(": %d reps", *set.Reps)
				}
				if set.WeightResistance != "" {
					line += " @ " + set.WeightResistance
				}
				if set.Notes != "" {
					line += "  (" + set.Notes + ")"
				}
				pdf.Cell(0, 6, line)
				pdf.Ln(5)
			}
			if len(ex.Sets) == 0 {
				pdf.Cell(0, 6, "      No sets logged.")
				pdf.Ln(5)
			}
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		util.LogError("report: write pdf", err)
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func formatMinutes(s models.WorkoutSession) string {
	mins := int(s.Duration.Minutes())
	if mins < 1 {
		return "under a minute"
	}
	return fmt.Sprintf("%d min", mins)
}
