package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/akyairhashvil/fourbyfour/internal/database"
	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// HistoryModel lists archived workouts.
type HistoryModel struct {
	ctx        context.Context
	store      Store
	logger     zerolog.Logger
	reportsDir string

	records []models.WorkoutRecord
	cursor  int
	detail  *models.WorkoutRecord
	loading bool
	err     error
	Message string
	width   int
}

func NewHistoryModel(ctx context.Context, store Store, opts Options) HistoryModel {
	return HistoryModel{ctx: ctx, store: store, logger: opts.Logger, reportsDir: opts.ReportsDir}
}

// Load fetches the most recent workouts.
func (h HistoryModel) Load() tea.Cmd {
	ctx, store := h.ctx, h.store
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}
		recs, err := store.ListWorkouts(ctx, config.HistoryLimit)
		return historyLoadedMsg{records: recs, err: err}
	}
}

func (h HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
	case historyLoadedMsg:
		h.loading = false
		h.err = msg.err
		h.records = msg.records
		h.cursor = util.Clamp(h.cursor, 0, max(len(h.records)-1, 0))
		if msg.err != nil {
			h.logger.Error().Err(msg.err).Msg("loading history failed")
		}
	case tea.KeyMsg:
		return h.handleKey(msg.String())
	}
	return h, nil
}

func (h HistoryModel) handleKey(key string) (HistoryModel, tea.Cmd) {
	switch key {
	case "esc", "h":
		h.detail = nil
		h.Message = ""
		return h, showWorkoutCmd
	case "q":
		return h, tea.Quit
	case "up", "k":
		if len(h.records) > 0 {
			h.cursor = util.Wrap(h.cursor, -1, len(h.records))
			h.detail = nil
		}
	case "down", "j":
		if len(h.records) > 0 {
			h.cursor = util.Wrap(h.cursor, 1, len(h.records))
			h.detail = nil
		}
	case "enter":
		rec, ok := h.selected()
		if !ok {
			return h, nil
		}
		full, err := h.store.GetWorkout(h.ctx, rec.ID)
		if err != nil {
			h.Message = fmt.Sprintf("Load failed: %v", err)
			return h, nil
		}
		h.detail = &full
	case "P":
		rec, ok := h.selected()
		if !ok {
			return h, nil
		}
		path, err := GenerateReport(rec, h.reportsDir)
		if err != nil {
			h.logger.Error().Err(err).Msg("report export failed")
			h.Message = fmt.Sprintf("Report failed: %v", err)
			return h, nil
		}
		h.Message = fmt.Sprintf("Report saved: %s", path)
	case "d":
		rec, ok := h.selected()
		if !ok {
			return h, nil
		}
		if err := h.store.DeleteWorkout(h.ctx, rec.ID); err != nil && !errors.Is(err, database.ErrNotFound) {
			h.logger.Error().Err(err).Str("workout_id", rec.ID).Msg("deleting workout failed")
			h.Message = fmt.Sprintf("Delete failed: %v", err)
			return h, nil
		}
		h.detail = nil
		h.Message = "Workout deleted"
		h.loading = true
		return h, h.Load()
	}
	return h, nil
}

func (h HistoryModel) selected() (models.WorkoutRecord, bool) {
	if h.store == nil || h.cursor < 0 || h.cursor >= len(h.records) {
		return models.WorkoutRecord{}, false
	}
	return h.records[h.cursor], true
}

func (h HistoryModel) View() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Header.Render("Workout history"))
	b.WriteString("\n\n")

	switch {
	case h.err != nil:
		b.WriteString(theme.Warning.Render(fmt.Sprintf("Could not load history: %v", h.err)))
	case h.loading:
		b.WriteString(theme.Dim.Render("Loading..."))
	case len(h.records) == 0:
		b.WriteString(theme.Dim.Render("No finished workouts yet."))
	default:
		for i, rec := range h.records {
			st := rec.Stats()
			line := fmt.Sprintf("%s  %-10s  max %-4s  %s (%s)",
				rec.CompletedAt.Local().Format("2006-01-02 15:04"),
				rec.Strategy, rec.MaxGrade,
				FormatFlashCount(st.FlashedProblems, st.TotalProblems),
				FormatFlashRate(st.FlashRate))
			if i == h.cursor {
				b.WriteString(theme.Focused.Render("> " + line))
			} else {
				b.WriteString(theme.Problem.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}
	if h.detail != nil {
		b.WriteString("\n")
		b.WriteString(renderRecordDetail(*h.detail))
	}
	if h.Message != "" {
		b.WriteString("\n")
		b.WriteString(theme.Highlight.Render(h.Message))
	}
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("[up/down] move  [enter] details  [P] pdf  [d] delete  [esc] back  [q] quit"))
	return theme.Base.Render(b.String())
}

func renderRecordDetail(rec models.WorkoutRecord) string {
	theme := CurrentTheme
	var lines []string
	for _, r := range rec.Rounds {
		var marks []string
		for _, p := range r.Problems {
			style := theme.GradeStyle(p.Grade, rec.MaxGrade)
			mark := p.Grade.String()
			if p.Flashed {
				mark += "⚡"
			}
			marks = append(marks, style.Render(mark))
		}
		line := fmt.Sprintf("Round %d: %s", r.ID, strings.Join(marks, " "))
		if secs, ok := rec.RoundTimes[r.ID]; ok {
			line += theme.Dim.Render(fmt.Sprintf("  (%s saved)", FormatClock(secs)))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
