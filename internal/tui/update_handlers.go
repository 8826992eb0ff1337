package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/util"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var timedPhases = []models.Phase{models.PhaseWork, models.PhaseRest}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	r.Register(KeyBinding{Key: "enter", Handler: handleStart, Description: "start", Phases: []models.Phase{models.PhaseSetup}, Priority: 10})
	r.Register(KeyBinding{Key: "space", Handler: handlePause, Description: "pause", Phases: timedPhases, Priority: 10})
	r.Register(KeyBinding{Key: " ", Handler: handlePause, Phases: timedPhases, Priority: 10})
	r.Register(KeyBinding{Key: "p", Handler: handlePause, Phases: timedPhases, Priority: 10})
	r.Register(KeyBinding{Key: "f", Handler: handleFinishRound, Description: "finish round", Phases: []models.Phase{models.PhaseWork}, Priority: 10})
	r.Register(KeyBinding{Key: "r", Handler: handleReset, Description: "reset", Priority: 5})

	r.Register(KeyBinding{Key: "t", Handler: handleStrategy, Description: "strategy", Phases: []models.Phase{models.PhaseSetup}, Priority: 8})
	r.Register(KeyBinding{Key: "T", Handler: handleStrategy, Phases: []models.Phase{models.PhaseSetup}, Priority: 8})
	r.Register(KeyBinding{Key: "+", Handler: handleMaxGrade, Description: "max grade", Phases: []models.Phase{models.PhaseSetup}, Priority: 8})
	r.Register(KeyBinding{Key: "=", Handler: handleMaxGrade, Phases: []models.Phase{models.PhaseSetup}, Priority: 8})
	r.Register(KeyBinding{Key: "-", Handler: handleMaxGrade, Phases: []models.Phase{models.PhaseSetup}, Priority: 8})

	for i := 1; i <= workout.RoundCount; i++ {
		b := KeyBinding{Key: strconv.Itoa(i), Handler: handleSelectRound, Priority: 6}
		if i == 1 {
			b.Description = "view round"
		}
		r.Register(b)
	}
	r.Register(KeyBinding{Key: "up", Handler: handleFocus, Description: "move", Priority: 6})
	r.Register(KeyBinding{Key: "k", Handler: handleFocus, Priority: 6})
	r.Register(KeyBinding{Key: "down", Handler: handleFocus, Priority: 6})
	r.Register(KeyBinding{Key: "j", Handler: handleFocus, Priority: 6})
	r.Register(KeyBinding{Key: "x", Handler: handleFlash, Description: "flash", Priority: 6})
	r.Register(KeyBinding{Key: "e", Handler: handleRename, Description: "rename", Priority: 6})
	r.Register(KeyBinding{Key: "[", Handler: handleRegrade, Description: "grade", Priority: 6})
	r.Register(KeyBinding{Key: "]", Handler: handleRegrade, Priority: 6})

	r.Register(KeyBinding{Key: "g", Handler: handleGuide, Description: "guide", Priority: 2})
	r.Register(KeyBinding{Key: "P", Handler: handleReport, Description: "pdf", Phases: []models.Phase{models.PhaseCompleted}, Priority: 2})
	r.Register(KeyBinding{Key: "h", Handler: handleHistory, Description: "history", Priority: 1})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 0})
	return r
}

func handleStart(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	if !m.session.Start() {
		return m, nil, false
	}
	m.focusedProblem = 0
	m.Message = "Round 1. Climb!"
	return m, m.scheduleTick(), true
}

func handlePause(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	if !m.session.TogglePause() {
		return m, nil, false
	}
	if m.session.Running() {
		m.Message = "Resumed"
	} else {
		m.Message = "Paused"
	}
	return m, m.scheduleTick(), true
}

func handleFinishRound(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	tr, ok := m.session.FinishEarly()
	if !ok {
		return m, nil, false
	}
	next, cmd := m.afterTransition(tr)
	return next, cmd, true
}

func handleReset(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	m.session.Reset()
	m.focusedProblem = 0
	m.Message = "Workout reset"
	return m, nil, true
}

func handleStrategy(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool) {
	step := 1
	if key == "T" {
		step = -1
	}
	if !m.session.SetStrategy(m.session.Strategy().Next(step)) {
		return m, nil, false
	}
	if tt, ok := models.LookupTrainingType(m.session.Strategy()); ok {
		m.Message = tt.Name
	}
	return m, nil, true
}

func handleMaxGrade(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool) {
	step := 1
	if key == "-" {
		step = -1
	}
	if !m.session.SetMaxGrade(m.session.MaxGrade().Offset(step)) {
		return m, nil, false
	}
	m.Message = fmt.Sprintf("Max grade %s", m.session.MaxGrade())
	return m, nil, true
}

func handleSelectRound(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool) {
	id, err := strconv.Atoi(key)
	if err != nil || !m.session.SelectRound(id) {
		return m, nil, false
	}
	m.focusedProblem = 0
	return m, nil, true
}

func handleFocus(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool) {
	delta := 1
	if key == "up" || key == "k" {
		delta = -1
	}
	m.focusedProblem = util.Clamp(m.focusedProblem+delta, 0, workout.ProblemsPerRound-1)
	return m, nil, true
}

func handleFlash(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	ok := m.session.ToggleFlash(m.session.ViewedRound(), m.focusedProblem+1)
	return m, nil, ok
}

func handleRename(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	p, ok := m.focusedProblemData()
	if !ok {
		return m, nil, false
	}
	m.editing = true
	m.editRound, m.editProblem = m.session.ViewedRound(), p.ID
	m.nameInput.SetValue(p.Name)
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
	return m, textinput.Blink, true
}

func handleRegrade(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool) {
	p, ok := m.focusedProblemData()
	if !ok {
		return m, nil, false
	}
	step := 1
	if key == "[" {
		step = -1
	}
	ok = m.session.RegradeProblem(m.session.ViewedRound(), p.ID, p.Grade.Offset(step))
	return m, nil, ok
}

func handleGuide(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	return m.toggleGuide(), nil, true
}

func handleReport(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	return m.exportReport(), nil, true
}

func handleHistory(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	return m, showHistoryCmd, true
}

func handleQuit(m WorkoutModel, _ string) (WorkoutModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}
