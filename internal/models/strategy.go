package models

import "fmt"

// Strategy names how a round's four grades are spread relative to max grade.
type Strategy string

const (
	StrategyClassic    Strategy = "classic"
	StrategyDescending Strategy = "descending"
	StrategyAscending  Strategy = "ascending"
	StrategyEqual      Strategy = "equal"
)

// DefaultStrategy is used when nothing else is configured.
const DefaultStrategy = StrategyDescending

// TrainingType is the guide entry for a strategy.
type TrainingType struct {
	ID          Strategy
	Name        string
	Goal        string
	Description string
	Benefits    []string
}

var TrainingTypes = []TrainingType{
	{
		ID:          StrategyClassic,
		Name:        "Classic 4×4 (Power Endurance Focus)",
		Goal:        "Maintain high output under fatigue",
		Description: "All 4 problems should be at or slightly below your max",
		Benefits: []string{
			"Builds power endurance",
			"Simulates pump buildup with short rests (<15 sec)",
			"High intensity training",
			"Improves performance under fatigue",
		},
	},
	{
		ID:          StrategyDescending,
		Name:        "Descending Difficulty (Fatigue Management)",
		Goal:        "Build volume while staying consistent",
		Description: "Start hard, get easier as you fatigue",
		Benefits: []string{
			"Great for beginners or comeback training",
			"Builds confidence",
			"Easier to complete consistently",
			"Good volume builder",
		},
	},
	{
		ID:          StrategyAscending,
		Name:        "Ascending Difficulty (Mental Focus)",
		Goal:        "Train focus and control when tired",
		Description: "Start easy, get harder as you fatigue",
		Benefits: []string{
			"Trains mental toughness",
			"Improves technique under fatigue",
			"Forces calm climbing when tired",
			"Most challenging to complete cleanly",
		},
	},
	{
		ID:          StrategyEqual,
		Name:        "Equal Grade (Consistency Challenge)",
		Goal:        "Emphasize precision and endurance at a single level",
		Description: "All problems at the same grade",
		Benefits: []string{
			"Simple progress tracking",
			"Consistent difficulty",
			"Pure endurance focus",
			"Easy to measure improvement",
		},
	},
}

// Strategies lists strategy ids in guide order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(TrainingTypes))
	for _, t := range TrainingTypes {
		out = append(out, t.ID)
	}
	return out
}

func (s Strategy) Valid() bool {
	_, ok := LookupTrainingType(s)
	return ok
}

func LookupTrainingType(s Strategy) (TrainingType, bool) {
	for _, t := range TrainingTypes {
		if t.ID == s {
			return t, true
		}
	}
	return TrainingType{}, false
}

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown training strategy %q", s)
	}
	return st, nil
}

// Next cycles through Strategies; step may be negative.
func (s Strategy) Next(step int) Strategy {
	all := Strategies()
	idx := 0
	for i, id := range all {
		if id == s {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+step)%n+n)%n]
}
