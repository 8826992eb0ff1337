package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// Phases limits the binding to these phases. Empty means all.
	Phases   []models.Phase
	Priority int
}

func (b KeyBinding) AppliesTo(phase models.Phase) bool {
	if len(b.Phases) == 0 {
		return true
	}
	for _, p := range b.Phases {
		if p == phase {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m WorkoutModel, key string) (WorkoutModel, tea.Cmd, bool) {
	phase := m.session.Phase()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(phase) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(phase models.Phase) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(phase) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the described bindings for phase, one entry per key.
func (r *HandlerRegistry) HelpFor(phase models.Phase) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(phase) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}
