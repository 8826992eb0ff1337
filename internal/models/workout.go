package models

import "time"

// Phase is the global state of the active workout.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseWork      Phase = "work"
	PhaseRest      Phase = "rest"
	PhaseCompleted Phase = "completed"
)

// Timed reports whether the countdown is meaningful in this phase.
func (p Phase) Timed() bool {
	return p == PhaseWork || p == PhaseRest
}

// Problem is one boulder in a round.
type Problem struct {
	ID      int
	Name    string
	Grade   Grade
	Flashed bool
}

// Round holds the four problems attempted in one work interval.
type Round struct {
	ID        int
	Problems  []Problem
	Completed bool
}

// WorkoutStats summarises flash performance.
type WorkoutStats struct {
	CurrentRound    int
	TotalRounds     int
	CompletedRounds int
	FlashedProblems int
	TotalProblems   int
	FlashRate       float64 // percentage, 0-100
}

// WorkoutRecord is the archived summary of a finished workout.
type WorkoutRecord struct {
	ID          string
	Strategy    Strategy
	MaxGrade    Grade
	WorkSeconds int
	RestSeconds int
	StartedAt   time.Time
	CompletedAt time.Time
	Rounds      []Round
	RoundTimes  map[int]int // round id -> seconds left when finished early
}

// Stats computes flash totals over the record's rounds.
func (r WorkoutRecord) Stats() WorkoutStats {
	return ComputeStats(r.Rounds, len(r.Rounds))
}

// ComputeStats counts flashes across rounds.
func ComputeStats(rounds []Round, current int) WorkoutStats {
	st := WorkoutStats{CurrentRound: current, TotalRounds: len(rounds)}
	for _, r := range rounds {
		if r.Completed {
			st.CompletedRounds++
		}
		for _, p := range r.Problems {
			st.TotalProblems++
			if p.Flashed {
				st.FlashedProblems++
			}
		}
	}
	if st.TotalProblems > 0 {
		st.FlashRate = float64(st.FlashedProblems) * 100 / float64(st.TotalProblems)
	}
	return st
}

// CloneRounds deep-copies rounds so callers cannot mutate session state.
func CloneRounds(rounds []Round) []Round {
	out := make([]Round, len(rounds))
	for i, r := range rounds {
		out[i] = r
		out[i].Problems = append([]Problem(nil), r.Problems...)
	}
	return out
}
