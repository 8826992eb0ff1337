package tui

import (
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one second of countdown. Seq names the session generation that
// scheduled it; ticks from an older generation are dropped.
type TickMsg struct {
	Seq uint64
}

// PhaseExpiredMsg follows the tick that brought the countdown to zero. It is
// a separate message so the final second renders before the phase changes.
type PhaseExpiredMsg struct {
	Seq uint64
}

type showHistoryMsg struct{}

type showWorkoutMsg struct{}

type historyLoadedMsg struct {
	records []models.WorkoutRecord
	err     error
}

func tickCmd(seq uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TickMsg{Seq: seq} })
}

func expireCmd(seq uint64) tea.Cmd {
	return func() tea.Msg { return PhaseExpiredMsg{Seq: seq} }
}

func showHistoryCmd() tea.Msg { return showHistoryMsg{} }

func showWorkoutCmd() tea.Msg { return showWorkoutMsg{} }
