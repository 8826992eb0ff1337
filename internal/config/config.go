package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Workout WorkoutConfig `yaml:"workout"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

type WorkoutConfig struct {
	WorkSeconds int    `yaml:"work_seconds"`
	RestSeconds int    `yaml:"rest_seconds"`
	MaxGrade    string `yaml:"max_grade"`
	Strategy    string `yaml:"strategy"`
}

type StorageConfig struct {
	// DBPath overrides the database location. Empty means the data dir.
	DBPath string `yaml:"db_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File overrides the log location. Empty means the data dir.
	File string `yaml:"file"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workout: WorkoutConfig{
			WorkSeconds: int(WorkDuration / time.Second),
			RestSeconds: int(RestDuration / time.Second),
			MaxGrade:    DefaultMaxGrade.String(),
			Strategy:    string(DefaultStrategy),
		},
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{Theme: "default"},
	}
}

// Load builds the configuration from defaults, an optional YAML file, a
// .env file in the working directory and FOURBYFOUR_* environment variables,
// in that order of precedence (later wins):
//
//	FOURBYFOUR_WORK_SECONDS, FOURBYFOUR_REST_SECONDS,
//	FOURBYFOUR_MAX_GRADE, FOURBYFOUR_STRATEGY,
//	FOURBYFOUR_DB_PATH, FOURBYFOUR_LOG_LEVEL, FOURBYFOUR_LOG_FILE,
//	FOURBYFOUR_THEME
//
// An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("config environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// DefaultPath is the config file looked up when none is given, or "" if it
// does not exist.
func DefaultPath() string {
	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	path := filepath.Join(base, AppName, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func applyEnvOverrides(cfg *Config) error {
	for key, dst := range map[string]*int{
		"WORK_SECONDS": &cfg.Workout.WorkSeconds,
		"REST_SECONDS": &cfg.Workout.RestSeconds,
	} {
		v := getEnv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}
	if v := getEnv("MAX_GRADE"); v != "" {
		cfg.Workout.MaxGrade = v
	}
	if v := getEnv("STRATEGY"); v != "" {
		cfg.Workout.Strategy = v
	}
	if v := getEnv("DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := getEnv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getEnv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := getEnv("THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func (c *Config) validate() error {
	if c.Workout.WorkSeconds <= 0 {
		return fmt.Errorf("workout.work_seconds must be positive, got %d", c.Workout.WorkSeconds)
	}
	if c.Workout.RestSeconds <= 0 {
		return fmt.Errorf("workout.rest_seconds must be positive, got %d", c.Workout.RestSeconds)
	}
	if _, err := models.ParseGrade(c.Workout.MaxGrade); err != nil {
		return fmt.Errorf("workout.max_grade: %w", err)
	}
	if _, err := models.ParseStrategy(c.Workout.Strategy); err != nil {
		return fmt.Errorf("workout.strategy: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// MaxGrade returns the validated max grade.
func (c *Config) MaxGrade() models.Grade {
	g, err := models.ParseGrade(c.Workout.MaxGrade)
	if err != nil {
		return DefaultMaxGrade
	}
	return g
}

// Strategy returns the validated training strategy.
func (c *Config) Strategy() models.Strategy {
	s, err := models.ParseStrategy(c.Workout.Strategy)
	if err != nil {
		return DefaultStrategy
	}
	return s
}

// LogLevel returns the parsed zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
