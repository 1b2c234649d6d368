package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/taskbook/internal/config"
	"github.com/rpggio/taskbook/internal/domain/activity"
	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/rpggio/taskbook/internal/jsonfile"
	"github.com/rpggio/taskbook/internal/sqlite"
)

// app holds the wired services for one process.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	tasks  *task.Service

	// history is set for the SQLite backend only.
	history *sqlite.ActivityRepository

	closers []func() error
}

// newApp opens the configured store and wires the task and activity
// services. Logs go to logOut unless cfg.Log.Path is set.
func newApp(cfg config.Config, logOut io.Writer) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := newLogger(logOut, cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	store, activityRepo, err := a.openStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	activities := activity.NewService(activityRepo, logger.With("component", "activity"))
	a.tasks = task.NewService(store, activities, logger.With("component", "tasks"),
		task.WithLoadErrorPolicy(task.LoadErrorPolicy(cfg.Store.OnLoadError)),
	)

	logger.Debug("store opened", "backend", cfg.Store.Backend, "path", cfg.Store.Path)
	return a, nil
}

// openStore returns the task store and, for SQLite, the activity repository.
// The JSON backend keeps activity in the log only.
func (a *app) openStore() (task.Store, activity.Repository, error) {
	switch a.cfg.Store.Backend {
	case config.BackendSQLite:
		if err := ensureDir(a.cfg.Store.Path); err != nil {
			return nil, nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(a.cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, db.Close)
		if err := db.RunMigrations(); err != nil {
			return nil, nil, err
		}
		a.history = sqlite.NewActivityRepository(db)
		return sqlite.NewTaskRepository(db), a.history, nil
	default:
		return jsonfile.NewTaskStore(a.cfg.Store.Path), nil, nil
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
