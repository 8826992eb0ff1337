package database

import (
	"context"

	"github.com/akyairhashvil/fourbyfour/internal/models"
)

// SettingStore is the key/value preference store.
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// WorkoutRepository defines workout history operations.
type WorkoutRepository interface {
	SaveWorkout(ctx context.Context, rec models.WorkoutRecord) error
	ListWorkouts(ctx context.Context, limit int) ([]models.WorkoutRecord, error)
	GetWorkout(ctx context.Context, id string) (models.WorkoutRecord, error)
	DeleteWorkout(ctx context.Context, id string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_repository_test.go -package=tui
type Repository interface {
	SettingStore
	WorkoutRepository
}

var _ Repository = (*Database)(nil)
