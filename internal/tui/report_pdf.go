package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/util"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	"github.com/go-pdf/fpdf"
)

// WritePDFReport renders a finished workout as a one-page PDF.
func WritePDFReport(w io.Writer, rec models.WorkoutRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("4x4 Workout Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "4x4 Bouldering Workout")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	tt, _ := models.LookupTrainingType(rec.Strategy)
	strategy := string(rec.Strategy)
	if tt.Name != "" {
		strategy = tt.Name
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("Date: %s", rec.CompletedAt.Local().Format("2006-01-02 15:04"))))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Strategy: %s", strategy)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Max grade: %s   Work %s / Rest %s", rec.MaxGrade, FormatClock(rec.WorkSeconds), FormatClock(rec.RestSeconds)))
	pdf.Ln(10)

	for _, r := range rec.Rounds {
		pdf.SetFont("Arial", "B", 13)
		header := fmt.Sprintf("Round %d", r.ID)
		if secs, ok := rec.RoundTimes[r.ID]; ok {
			header += fmt.Sprintf(" (finished %s early)", FormatClock(secs))
		} else if !r.Completed {
			header += " (not completed)"
		}
		pdf.Cell(0, 8, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for i, p := range r.Problems {
			mark := "[ ]"
			if p.Flashed {
				mark = "[x]"
			}
			line := fmt.Sprintf("  %s  %-5s %s  (%s)", mark, p.Grade, p.Name, workout.DifficultyLabel(rec.Strategy, i))
			pdf.Cell(0, 6, tr(line))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	st := rec.Stats()
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Flashed %d of %d problems (%s)", st.FlashedProblems, st.TotalProblems, FormatFlashRate(st.FlashRate)))
	pdf.Ln(8)

	return pdf.Output(w)
}

// GenerateReport writes the workout PDF into dir and returns its path.
func GenerateReport(rec models.WorkoutRecord, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := util.EnsureDir(dir); err != nil {
		return "", err
	}
	id := rec.ID
	if len(id) > 8 {
		id = id[:8]
	}
	name := fmt.Sprintf("fourbyfour_%s_%s.pdf", rec.CompletedAt.Local().Format("2006-01-02_1504"), id)
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report: %w", err)
	}
	if err := WritePDFReport(f, rec); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing report: %w", err)
	}
	return path, nil
}
