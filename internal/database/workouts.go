package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/akyairhashvil/fourbyfour/internal/util"
)

// SaveWorkout archives a finished workout with its rounds and problems.
// Saving the same id twice replaces the earlier copy.
func (d *Database) SaveWorkout(ctx context.Context, rec models.WorkoutRecord) error {
	if rec.ID == "" {
		return wrapErr(EntityWorkout, "save", "", fmt.Errorf("missing workout id"))
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", rec.ID); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO workouts (id, strategy, max_grade, work_seconds, rest_seconds, started_at, completed_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				rec.ID, string(rec.Strategy), rec.MaxGrade.String(), rec.WorkSeconds, rec.RestSeconds,
				rec.StartedAt.UTC(), rec.CompletedAt.UTC()); err != nil {
				return err
			}
			roundStmt, err := tx.PrepareContext(ctx, "INSERT INTO workout_rounds (workout_id, round_id, completed, seconds_saved) VALUES (?, ?, ?, ?)")
			if err != nil {
				return err
			}
			defer roundStmt.Close()
			problemStmt, err := tx.PrepareContext(ctx, "INSERT INTO workout_problems (workout_id, round_id, problem_id, name, grade, flashed) VALUES (?, ?, ?, ?, ?, ?)")
			if err != nil {
				return err
			}
			defer problemStmt.Close()

			for _, r := range rec.Rounds {
				var saved sql.NullInt64
				if secs, ok := rec.RoundTimes[r.ID]; ok {
					saved = sql.NullInt64{Int64: int64(secs), Valid: true}
				}
				if _, err := roundStmt.ExecContext(ctx, rec.ID, r.ID, util.BoolToInt(r.Completed), saved); err != nil {
					return fmt.Errorf("round %d: %w", r.ID, err)
				}
				for _, p := range r.Problems {
					if _, err := problemStmt.ExecContext(ctx, rec.ID, r.ID, p.ID, p.Name, p.Grade.String(), util.BoolToInt(p.Flashed)); err != nil {
						return fmt.Errorf("round %d problem %d: %w", r.ID, p.ID, err)
					}
				}
			}
			return nil
		})
		return wrapErr(EntityWorkout, "save", rec.ID, err)
	})
}

// ListWorkouts returns the most recently completed workouts first.
func (d *Database) ListWorkouts(ctx context.Context, limit int) ([]models.WorkoutRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.WorkoutRecord, error) {
		rows, err := d.DB.QueryContext(ctx, `
			SELECT id, strategy, max_grade, work_seconds, rest_seconds, started_at, completed_at
			FROM workouts
			ORDER BY completed_at DESC, id ASC
			LIMIT ?`, limit)
		if err != nil {
			return nil, wrapErr(EntityWorkout, "list", "", err)
		}
		var out []models.WorkoutRecord
		for rows.Next() {
			rec, err := scanWorkout(rows)
			if err != nil {
				rows.Close()
				return nil, wrapErr(EntityWorkout, "list", "", err)
			}
			out = append(out, rec)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, wrapErr(EntityWorkout, "list", "", err)
		}
		rows.Close()

		for i := range out {
			if err := d.loadRounds(ctx, &out[i]); err != nil {
				return nil, wrapErr(EntityWorkout, "list", out[i].ID, err)
			}
		}
		return out, nil
	})
}

// GetWorkout loads one archived workout.
func (d *Database) GetWorkout(ctx context.Context, id string) (models.WorkoutRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.WorkoutRecord, error) {
		row := d.DB.QueryRowContext(ctx, `
			SELECT id, strategy, max_grade, work_seconds, rest_seconds, started_at, completed_at
			FROM workouts WHERE id = ?`, id)
		rec, err := scanWorkout(row)
		if err != nil {
			return models.WorkoutRecord{}, wrapErr(EntityWorkout, "get", id, err)
		}
		if err := d.loadRounds(ctx, &rec); err != nil {
			return models.WorkoutRecord{}, wrapErr(EntityWorkout, "get", id, err)
		}
		return rec, nil
	})
}

func (d *Database) DeleteWorkout(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id)
		if err != nil {
			return wrapErr(EntityWorkout, "delete", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return wrapErr(EntityWorkout, "delete", id, ErrNotFound)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (models.WorkoutRecord, error) {
	var rec models.WorkoutRecord
	var strategy, grade string
	var startedAt, completedAt sql.NullTime
	if err := row.Scan(&rec.ID, &strategy, &grade, &rec.WorkSeconds, &rec.RestSeconds, &startedAt, &completedAt); err != nil {
		return rec, err
	}
	rec.Strategy = models.Strategy(strategy)
	g, err := models.ParseGrade(grade)
	if err != nil {
		return rec, err
	}
	rec.MaxGrade = g
	if startedAt.Valid {
		rec.StartedAt = startedAt.Time
	}
	if completedAt.Valid {
		rec.CompletedAt = completedAt.Time
	}
	return rec, nil
}

func (d *Database) loadRounds(ctx context.Context, rec *models.WorkoutRecord) error {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT round_id, completed, seconds_saved
		FROM workout_rounds WHERE workout_id = ? ORDER BY round_id ASC`, rec.ID)
	if err != nil {
		return err
	}
	byID := make(map[int]*models.Round)
	rec.RoundTimes = make(map[int]int)
	for rows.Next() {
		var r models.Round
		var completed int
		var saved sql.NullInt64
		if err := rows.Scan(&r.ID, &completed, &saved); err != nil {
			rows.Close()
			return err
		}
		r.Completed = util.IntToBool(completed)
		if saved.Valid {
			rec.RoundTimes[r.ID] = int(saved.Int64)
		}
		rec.Rounds = append(rec.Rounds, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()
	for i := range rec.Rounds {
		byID[rec.Rounds[i].ID] = &rec.Rounds[i]
	}

	prows, err := d.DB.QueryContext(ctx, `
		SELECT round_id, problem_id, name, grade, flashed
		FROM workout_problems WHERE workout_id = ? ORDER BY round_id ASC, problem_id ASC`, rec.ID)
	if err != nil {
		return err
	}
	defer prows.Close()
	for prows.Next() {
		var roundID, flashed int
		var p models.Problem
		var grade string
		if err := prows.Scan(&roundID, &p.ID, &p.Name, &grade, &flashed); err != nil {
			return err
		}
		g, err := models.ParseGrade(grade)
		if err != nil {
			return err
		}
		p.Grade = g
		p.Flashed = util.IntToBool(flashed)
		if r, ok := byID[roundID]; ok {
			r.Problems = append(r.Problems, p)
		}
	}
	return prows.Err()
}
