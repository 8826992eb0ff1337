package testutil

import (
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	"github.com/google/uuid"
)

// RecordBuilder provides a fluent API for creating test workout records.
type RecordBuilder struct {
	rec models.WorkoutRecord
}

func NewRecord() *RecordBuilder {
	started := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)
	strategy := models.StrategyDescending
	max := models.GradeV4
	rounds := workout.NewRounds(workout.GradeSequence(strategy, max))
	for i := range rounds {
		rounds[i].Completed = true
	}
	return &RecordBuilder{
		rec: models.WorkoutRecord{
			ID:          uuid.NewString(),
			Strategy:    strategy,
			MaxGrade:    max,
			WorkSeconds: 240,
			RestSeconds: 240,
			StartedAt:   started,
			CompletedAt: started.Add(30 * time.Minute),
			Rounds:      rounds,
			RoundTimes:  map[int]int{},
		},
	}
}

func (b *RecordBuilder) WithID(id string) *RecordBuilder {
	b.rec.ID = id
	return b
}

func (b *RecordBuilder) WithStrategy(s models.Strategy, max models.Grade) *RecordBuilder {
	b.rec.Strategy = s
	b.rec.MaxGrade = max
	rounds := workout.NewRounds(workout.GradeSequence(s, max))
	for i := range rounds {
		rounds[i].Completed = true
	}
	b.rec.Rounds = rounds
	return b
}

func (b *RecordBuilder) WithFlash(roundID, problemID int) *RecordBuilder {
	for r := range b.rec.Rounds {
		if b.rec.Rounds[r].ID != roundID {
			continue
		}
		for p := range b.rec.Rounds[r].Problems {
			if b.rec.Rounds[r].Problems[p].ID == problemID {
				b.rec.Rounds[r].Problems[p].Flashed = true
			}
		}
	}
	return b
}

func (b *RecordBuilder) WithRoundTime(roundID, secondsLeft int) *RecordBuilder {
	b.rec.RoundTimes[roundID] = secondsLeft
	return b
}

func (b *RecordBuilder) CompletedAt(t time.Time) *RecordBuilder {
	b.rec.StartedAt = t.Add(-30 * time.Minute)
	b.rec.CompletedAt = t
	return b
}

func (b *RecordBuilder) Build() models.WorkoutRecord {
	rec := b.rec
	rec.Rounds = models.CloneRounds(b.rec.Rounds)
	rec.RoundTimes = make(map[int]int, len(b.rec.RoundTimes))
	for k, v := range b.rec.RoundTimes {
		rec.RoundTimes[k] = v
	}
	return rec
}
