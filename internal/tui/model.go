package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateWorkout SessionState = iota
	StateHistory
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state   SessionState
	workout WorkoutModel
	history HistoryModel
	width   int
	height  int
}

func NewMainModel(ctx context.Context, store Store, opts Options) MainModel {
	return MainModel{
		state:   StateWorkout,
		workout: NewWorkoutModel(ctx, store, opts),
		history: NewHistoryModel(ctx, store, opts),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.workout.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.workout, cmd = m.workout.Update(msg)
		m.history, _ = m.history.Update(msg)
		return m, cmd
	case TickMsg, PhaseExpiredMsg:
		// The timer keeps running while history is shown.
		m.workout, cmd = m.workout.Update(msg)
		return m, cmd
	case showHistoryMsg:
		m.state = StateHistory
		m.history.loading = true
		return m, m.history.Load()
	case showWorkoutMsg:
		m.state = StateWorkout
		return m, nil
	case historyLoadedMsg:
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateHistory:
		m.history, cmd = m.history.Update(msg)
	default:
		m.workout, cmd = m.workout.Update(msg)
	}
	return m, cmd
}

func (m MainModel) View() string {
	if m.state == StateHistory {
		return m.history.View()
	}
	return m.workout.View()
}
