package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

var testStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Session: workout.Options{
			WorkSeconds: 3,
			RestSeconds: 2,
			MaxGrade:    models.GradeV5,
			Strategy:    models.StrategyClassic,
			Clock:       clockwork.NewFakeClockAt(testStart),
		},
		ReportsDir: t.TempDir(),
		Logger:     zerolog.Nop(),
	}
}

// newMockStore returns a store whose guide preference lookup finds nothing.
func newMockStore(t *testing.T) *MockRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockRepository(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), config.SettingGuideCollapsed).Return("", false).AnyTimes()
	return store
}

func newTestWorkoutModel(t *testing.T, store Store) WorkoutModel {
	t.Helper()
	return NewWorkoutModel(context.Background(), store, testOptions(t))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func tick(m WorkoutModel) (WorkoutModel, tea.Cmd) {
	return m.Update(TickMsg{Seq: m.session.Seq()})
}

// runOut ticks the live countdown to zero and delivers the expiry.
func runOut(t *testing.T, m WorkoutModel) (WorkoutModel, tea.Cmd) {
	t.Helper()
	for i := 0; i < 1000 && m.session.ShouldTick(); i++ {
		m, _ = tick(m)
	}
	if !m.session.Expired() {
		t.Fatalf("expected settled countdown, phase=%s remaining=%d", m.session.Phase(), m.session.Remaining())
	}
	return m.Update(PhaseExpiredMsg{Seq: m.session.Seq()})
}

// completeWorkout finishes every round early, running out each rest.
func completeWorkout(t *testing.T, m WorkoutModel) WorkoutModel {
	t.Helper()
	m, _ = m.Update(keyType(tea.KeyEnter))
	for m.session.Phase() != models.PhaseCompleted {
		switch m.session.Phase() {
		case models.PhaseWork:
			m, _ = m.Update(keyRune('f'))
		case models.PhaseRest:
			m, _ = runOut(t, m)
		default:
			t.Fatalf("unexpected phase %s", m.session.Phase())
		}
	}
	return m
}
