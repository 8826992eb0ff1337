package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	"github.com/charmbracelet/lipgloss"
)

const appTitle = "4×4 Bouldering Flash Workout"

func (m WorkoutModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	b.WriteString(theme.Header.Render(appTitle))
	b.WriteString("  ")
	b.WriteString(theme.Dim.Render(versionLabel()))
	b.WriteString("\n\n")

	switch m.session.Phase() {
	case models.PhaseSetup:
		b.WriteString(m.renderSetup())
	case models.PhaseCompleted:
		b.WriteString(m.renderCompleted())
	default:
		b.WriteString(m.renderTimer())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderRoundTabs())
	b.WriteString("\n")
	b.WriteString(m.renderProblems())
	b.WriteString("\n")
	if m.editing {
		b.WriteString(theme.Input.Render(m.nameInput.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.renderGuide())

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(theme.Highlight.Render(m.Message))
	}
	b.WriteString("\n")
	if m.editing {
		b.WriteString(theme.Dim.Render("[enter] save  [esc] cancel"))
	} else {
		b.WriteString(theme.Dim.Render(m.registry.HelpFor(m.session.Phase())))
	}
	return theme.Base.Render(b.String())
}

func (m WorkoutModel) renderSetup() string {
	theme := CurrentTheme
	s := m.session
	var lines []string
	tt, _ := models.LookupTrainingType(s.Strategy())
	lines = append(lines,
		fmt.Sprintf("Strategy:  %s", theme.Focused.Render(tt.Name)),
		fmt.Sprintf("Max grade: %s", theme.GradeAtMax.Render(s.MaxGrade().String())),
		fmt.Sprintf("Work %s / Rest %s × %d rounds", FormatClock(s.WorkSeconds()), FormatClock(s.RestSeconds()), workout.RoundCount),
	)
	seq := workout.GradeSequence(s.Strategy(), s.MaxGrade())
	var slots []string
	for i, g := range seq {
		slots = append(slots, fmt.Sprintf("%s %s", theme.GradeStyle(g, s.MaxGrade()).Render(g.String()), theme.Dim.Render(workout.DifficultyLabel(s.Strategy(), i))))
	}
	lines = append(lines, "Each round: "+strings.Join(slots, "  "))
	return strings.Join(lines, "\n")
}

func (m WorkoutModel) renderTimer() string {
	theme := CurrentTheme
	s := m.session

	label := "WORK"
	style := theme.Work
	if s.Phase() == models.PhaseRest {
		label = "REST"
		style = theme.Rest
	}
	header := style.Render(fmt.Sprintf("%s · Round %d of %d", label, s.CurrentRound(), workout.RoundCount))

	clockStyle := style
	if time.Duration(s.Remaining())*time.Second <= config.WarningThreshold {
		clockStyle = theme.Warning
	}
	clock := clockStyle.Render(FormatClock(s.Remaining()))
	if !s.Running() && s.Remaining() > 0 {
		clock += " " + theme.Paused.Render("(paused)")
	}

	var pct float64
	if d := s.PhaseDuration(); d > 0 {
		pct = float64(d-s.Remaining()) / float64(d)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, clock, m.progress.ViewAs(pct))
}

func (m WorkoutModel) renderCompleted() string {
	theme := CurrentTheme
	st := m.session.Stats()
	lines := []string{
		theme.Work.Render("Workout complete!"),
		fmt.Sprintf("%s  ·  flash rate %s", FormatFlashCount(st.FlashedProblems, st.TotalProblems), FormatFlashRate(st.FlashRate)),
		fmt.Sprintf("Rounds completed: %d/%d", st.CompletedRounds, st.TotalRounds),
	}
	times := m.session.RoundTimes()
	for id := 1; id <= workout.RoundCount; id++ {
		if secs, ok := times[id]; ok {
			lines = append(lines, theme.Dim.Render(fmt.Sprintf("Round %d finished %s early", id, FormatClock(secs))))
		}
	}
	return strings.Join(lines, "\n")
}

func (m WorkoutModel) renderRoundTabs() string {
	theme := CurrentTheme
	s := m.session
	var tabs []string
	for _, r := range s.Rounds() {
		label := fmt.Sprintf(" Round %d ", r.ID)
		if r.Completed {
			label = fmt.Sprintf(" Round %d ✓ ", r.ID)
		}
		style := theme.Dim
		switch {
		case r.ID == s.ViewedRound():
			style = theme.Focused.Underline(true)
		case r.ID == s.CurrentRound() && s.Phase().Timed():
			style = theme.Highlight
		case r.Completed:
			style = theme.Completed
		}
		tabs = append(tabs, style.Render(label))
	}
	line := strings.Join(tabs, lipgloss.NewStyle().Foreground(theme.Border).Render("│"))
	if secs, ok := s.RoundTimes()[s.ViewedRound()]; ok {
		line += "  " + theme.Dim.Render(fmt.Sprintf("%s saved", FormatClock(secs)))
	}
	return line
}

func (m WorkoutModel) renderProblems() string {
	theme := CurrentTheme
	s := m.session
	round, ok := s.Round(s.ViewedRound())
	if !ok {
		return ""
	}
	width := config.ProblemNameWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		width = config.ProblemNameWidth / 2
	}
	var lines []string
	for i, p := range round.Problems {
		cursor := "  "
		if i == m.focusedProblem {
			cursor = theme.Focused.Render("> ")
		}
		box := "[ ]"
		nameStyle := theme.Problem
		if p.Flashed {
			box = theme.Flashed.Render("[⚡]")
			nameStyle = theme.Flashed
		}
		name := nameStyle.Render(padRight(truncateText(p.Name, width), width))
		grade := theme.GradeStyle(p.Grade, s.MaxGrade()).Render(padRight(p.Grade.String(), 4))
		label := theme.Dim.Render(workout.DifficultyLabel(s.Strategy(), i))
		lines = append(lines, fmt.Sprintf("%s%s %s %s %s", cursor, box, name, grade, label))
	}
	return strings.Join(lines, "\n")
}

func (m WorkoutModel) renderGuide() string {
	theme := CurrentTheme
	if m.guideCollapsed {
		return theme.Dim.Render("▸ Training guide (g to expand)")
	}
	var b strings.Builder
	b.WriteString(theme.Header.Render("▾ Training guide"))
	for _, tt := range models.TrainingTypes {
		b.WriteString("\n")
		name := tt.Name
		if tt.ID == m.session.Strategy() {
			name = theme.Focused.Render("● " + name)
		} else {
			name = theme.Problem.Render("  " + name)
		}
		b.WriteString(name)
		b.WriteString("\n    ")
		b.WriteString(theme.Dim.Render("Goal: " + tt.Goal))
		b.WriteString("\n    ")
		b.WriteString(theme.Dim.Render(tt.Description))
		for i, benefit := range tt.Benefits {
			if i >= config.GuideBenefitsShown {
				break
			}
			b.WriteString("\n    ")
			b.WriteString(theme.Dim.Render("• " + benefit))
		}
	}
	return b.String()
}
