package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/akyairhashvil/fourbyfour/internal/database"
	"github.com/akyairhashvil/fourbyfour/internal/tui"
	"github.com/akyairhashvil/fourbyfour/internal/util"
	"github.com/akyairhashvil/fourbyfour/internal/workout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("fourbyfour needs an interactive terminal")

func main() {
	configPath := flag.String("config", "", "path to config file (default: $XDG_CONFIG_HOME/fourbyfour/config.yaml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(tui.AppVersion)
		return
	}
	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	dbPath, logPath := resolvePaths(cfg)
	logger, logCloser, err := util.SetupLogger(logPath, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer logCloser.Close()
	logger.Info().Str("version", tui.AppVersion).Str("db", dbPath).Msg("fourbyfour starting")

	if err := util.EnsureDir(filepath.Dir(dbPath)); err != nil {
		return err
	}
	ctx := context.Background()
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() {
		util.LogError("closing database", db.Close())
	}()

	if cfg.UI.Theme != "" && !tui.SetTheme(cfg.UI.Theme) {
		logger.Warn().Str("theme", cfg.UI.Theme).Msg("unknown theme, using default")
	}

	model := tui.NewMainModel(ctx, db, tui.Options{
		Session: workout.Options{
			WorkSeconds: cfg.Workout.WorkSeconds,
			RestSeconds: cfg.Workout.RestSeconds,
			MaxGrade:    cfg.MaxGrade(),
			Strategy:    cfg.Strategy(),
			Clock:       clockwork.NewRealClock(),
		},
		ReportsDir: util.ReportsDir(config.AppName),
		Logger:     logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		return err
	}
	logger.Info().Msg("fourbyfour exiting")
	return nil
}

// resolvePaths returns the database and log file locations, honouring
// configured overrides and falling back to the data dir.
func resolvePaths(cfg *config.Config) (dbPath, logPath string) {
	dataDir := util.DataDir(config.AppName)
	dbPath = cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, config.DBFileName)
	}
	logPath = cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(dataDir, config.LogFileName)
	}
	return dbPath, logPath
}
