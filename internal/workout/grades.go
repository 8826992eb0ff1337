package workout

import (
	"fmt"

	"github.com/akyairhashvil/fourbyfour/internal/models"
)

const (
	RoundCount       = 4
	ProblemsPerRound = 4
)

// GradeSequence returns the four grades every round starts with.
// Unknown strategies fall back to the descending layout.
func GradeSequence(strategy models.Strategy, max models.Grade) [ProblemsPerRound]models.Grade {
	main := max
	easier := max.Offset(-1)
	easiest := max.Offset(-2)

	switch strategy {
	case models.StrategyClassic:
		return [ProblemsPerRound]models.Grade{main, main, easier, easier}
	case models.StrategyAscending:
		return [ProblemsPerRound]models.Grade{easiest, easier, easier, main}
	case models.StrategyEqual:
		return [ProblemsPerRound]models.Grade{easier, easier, easier, easier}
	default:
		return [ProblemsPerRound]models.Grade{main, easier, easier, easiest}
	}
}

// NewRounds builds RoundCount identical rounds from a grade template.
func NewRounds(seq [ProblemsPerRound]models.Grade) []models.Round {
	rounds := make([]models.Round, RoundCount)
	for r := range rounds {
		problems := make([]models.Problem, ProblemsPerRound)
		for p, grade := range seq {
			problems[p] = models.Problem{
				ID:    p + 1,
				Name:  DefaultProblemName(p + 1),
				Grade: grade,
			}
		}
		rounds[r] = models.Round{ID: r + 1, Problems: problems}
	}
	return rounds
}

func DefaultProblemName(id int) string {
	return fmt.Sprintf("Problem %d", id)
}

// DifficultyLabel is the badge shown next to the problem at index (0-based).
func DifficultyLabel(strategy models.Strategy, index int) string {
	switch strategy {
	case models.StrategyAscending:
		switch index {
		case ProblemsPerRound - 1:
			return "Hardest"
		case 0:
			return "Easiest"
		default:
			return "Medium"
		}
	case models.StrategyEqual:
		return "Equal"
	default:
		switch {
		case index == 0:
			return "Hard"
		case index <= 2:
			return "Medium"
		default:
			return "Easy"
		}
	}
}
