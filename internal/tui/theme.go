package tui

import (
	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Work      lipgloss.Style
	Rest      lipgloss.Style
	Warning   lipgloss.Style
	Paused    lipgloss.Style
	Completed lipgloss.Style
	Flashed   lipgloss.Style
	Problem   lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Input     lipgloss.Style

	// Grade relation to the max: red above, yellow at, green one below,
	// blue further below.
	GradeAbove    lipgloss.Style
	GradeAtMax    lipgloss.Style
	GradeOneBelow lipgloss.Style
	GradeBelow    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Work:          lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Rest:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Paused:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Completed:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Flashed:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Problem:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		GradeAbove:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		GradeAtMax:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		GradeOneBelow: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		GradeBelow:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Work:          lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Rest:          lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Paused:        lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Completed:     lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
		Flashed:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Problem:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		GradeAbove:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		GradeAtMax:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		GradeOneBelow: lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		GradeBelow:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme, reporting whether name is known.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// GradeStyle colours a grade by how it compares with the max grade.
func (t Theme) GradeStyle(grade, max models.Grade) lipgloss.Style {
	switch models.RelationTo(grade, max) {
	case models.RelationAbove:
		return t.GradeAbove
	case models.RelationAtMax:
		return t.GradeAtMax
	case models.RelationOneBelow:
		return t.GradeOneBelow
	default:
		return t.GradeBelow
	}
}
