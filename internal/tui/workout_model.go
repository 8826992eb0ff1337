package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/akyairhashvil/fourbyfour/internal/database"
	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Options configures the TUI.
type Options struct {
	Session    workout.Options
	ReportsDir string
	Logger     zerolog.Logger
}

// WorkoutModel owns the single active Session and maps keys onto it.
type WorkoutModel struct {
	ctx      context.Context
	store    Store
	session  *workout.Session
	logger   zerolog.Logger
	registry *HandlerRegistry

	progress  progress.Model
	nameInput textinput.Model
	editing   bool
	// editRound and editProblem pin the rename target while the clock runs.
	editRound, editProblem int

	focusedProblem int
	guideCollapsed bool
	reportsDir     string

	Message       string
	width, height int
}

func NewWorkoutModel(ctx context.Context, store Store, opts Options) WorkoutModel {
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Session.Logger = opts.Logger
	ti := textinput.New()
	ti.Placeholder = "Problem name"
	ti.CharLimit = config.MaxProblemNameLength
	ti.Width = config.ProblemNameWidth

	m := WorkoutModel{
		ctx:        ctx,
		store:      store,
		session:    workout.NewSession(opts.Session),
		logger:     opts.Logger,
		registry:   defaultRegistry(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		nameInput:  ti,
		reportsDir: opts.ReportsDir,
	}
	m.progress.Width = config.TargetProgressWidth
	if store != nil {
		m.guideCollapsed = database.LoadBool(ctx, store, config.SettingGuideCollapsed, false)
	}
	return m
}

func (m WorkoutModel) Init() tea.Cmd { return nil }

func (m WorkoutModel) Update(msg tea.Msg) (WorkoutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case PhaseExpiredMsg:
		return m.handleExpired(msg)
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditing(msg)
		}
		next, cmd, _ := m.registry.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m WorkoutModel) handleWindowSize(msg tea.WindowSizeMsg) (WorkoutModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m WorkoutModel) handleTick(msg TickMsg) (WorkoutModel, tea.Cmd) {
	switch m.session.Tick(msg.Seq) {
	case workout.TickCounted:
		return m, tickCmd(m.session.Seq())
	case workout.TickExpired:
		return m, expireCmd(m.session.Seq())
	default:
		return m, nil
	}
}

func (m WorkoutModel) handleExpired(msg PhaseExpiredMsg) (WorkoutModel, tea.Cmd) {
	if msg.Seq != m.session.Seq() {
		return m, nil
	}
	tr, ok := m.session.HandleExpiry()
	if !ok {
		return m, nil
	}
	return m.afterTransition(tr)
}

// afterTransition schedules the next tick and archives finished workouts.
func (m WorkoutModel) afterTransition(tr workout.Transition) (WorkoutModel, tea.Cmd) {
	m.focusedProblem = 0
	switch tr.To {
	case models.PhaseRest:
		m.Message = fmt.Sprintf("Round %d done. Rest.", tr.Round)
	case models.PhaseWork:
		m.Message = fmt.Sprintf("Round %d. Climb!", tr.Round)
	case models.PhaseCompleted:
		m.Message = "Workout complete!"
		m.saveRecord()
	}
	return m, m.scheduleTick()
}

func (m WorkoutModel) scheduleTick() tea.Cmd {
	if !m.session.ShouldTick() {
		return nil
	}
	return tickCmd(m.session.Seq())
}

func (m *WorkoutModel) saveRecord() {
	rec, ok := m.session.Record()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.SaveWorkout(m.ctx, rec); err != nil {
		m.logger.Error().Err(err).Str("workout_id", rec.ID).Msg("saving workout failed")
		m.Message = fmt.Sprintf("Workout complete, but saving failed: %v", err)
		return
	}
	m.logger.Info().Str("workout_id", rec.ID).Msg("workout saved")
	m.Message = "Workout complete! Saved to history."
}

func (m WorkoutModel) handleEditing(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.nameInput.Blur()
		m.nameInput.Reset()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if name != "" {
			m.session.RenameProblem(m.editRound, m.editProblem, name)
		}
		m.editing = false
		m.nameInput.Blur()
		m.nameInput.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m WorkoutModel) focusedProblemData() (models.Problem, bool) {
	round, ok := m.session.Round(m.session.ViewedRound())
	if !ok || m.focusedProblem >= len(round.Problems) {
		return models.Problem{}, false
	}
	return round.Problems[m.focusedProblem], true
}

func (m WorkoutModel) toggleGuide() WorkoutModel {
	m.guideCollapsed = !m.guideCollapsed
	if m.store == nil {
		return m
	}
	if err := database.SaveBool(m.ctx, m.store, config.SettingGuideCollapsed, m.guideCollapsed); err != nil {
		m.logger.Warn().Err(err).Msg("saving guide preference failed")
		m.Message = "Could not save guide preference"
	}
	return m
}

func (m WorkoutModel) exportReport() WorkoutModel {
	rec, ok := m.session.Record()
	if !ok {
		m.Message = "Finish the workout to export a report"
		return m
	}
	path, err := GenerateReport(rec, m.reportsDir)
	if err != nil {
		m.logger.Error().Err(err).Msg("report export failed")
		m.Message = fmt.Sprintf("Report failed: %v", err)
		return m
	}
	m.Message = fmt.Sprintf("Report saved: %s", path)
	return m
}
