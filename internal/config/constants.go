package config

import (
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/models"
)

// Timer durations.
const (
	WorkDuration = 4 * time.Minute
	RestDuration = 4 * time.Minute

	// WarningThreshold turns the countdown red.
	WarningThreshold = 30 * time.Second
)

// Workout defaults.
const (
	DefaultMaxGrade = models.GradeV4
	DefaultStrategy = models.DefaultStrategy
)

// Settings keys.
const (
	SettingGuideCollapsed = "training-guide-collapsed"
)

// Database/application settings.
const (
	AppName     = "fourbyfour"
	DBFileName  = "fourbyfour.db"
	LogFileName = "fourbyfour.log"
	EnvPrefix   = "FOURBYFOUR_"
)
