package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/rpggio/taskbook/internal/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, c)
}

// flags holds the global options shared by every command.
type flags struct {
	ConfigPath   string
	LogLevel     string
	StoreBackend string
	StorePath    string
}

func main() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	f := &flags{}
	var a *app

	// current returns the app built by Before.
	current := func() *app { return a }

	return &cli.Command{
		Name:      "taskbook",
		Usage:     "Keep a personal task list in a local file",
		UsageText: "taskbook [global options] command [command options]",
		Description: `taskbook stores tasks as a JSON array (or a SQLite database) and
rejects blank titles, invalid dates, unknown priorities and duplicates.

Examples:
  taskbook add --title "Buy book" --due 2025-07-20 --priority High
  taskbook demo
  taskbook serve --transport http --port 8080`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to YAML config file",
				Sources:     cli.EnvVars("TASKBOOK_CONFIG_PATH"),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("TASKBOOK_LOG_LEVEL"),
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "store-backend",
				Usage:       "task store backend (json, sqlite)",
				Sources:     cli.EnvVars("TASKBOOK_STORE_BACKEND"),
				Destination: &f.StoreBackend,
			},
			&cli.StringFlag{
				Name:        "store-path",
				Usage:       "path to the task file or database",
				Sources:     cli.EnvVars("TASKBOOK_STORE_PATH"),
				Destination: &f.StorePath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := loadConfig(f)
			if err != nil {
				return ctx, err
			}
			a, err = newApp(cfg, os.Stderr)
			if err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if a == nil {
				return nil
			}
			return a.Close()
		},
		Commands: []*cli.Command{
			newDemoCmd(current),
			newAddCmd(current),
			newServeCmd(current),
			newActivityCmd(current),
		},
	}
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(f *flags) (config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.StoreBackend != "" {
		cfg.Store.Backend = f.StoreBackend
	}
	if f.StorePath != "" {
		cfg.Store.Path = f.StorePath
	}
	return cfg, nil
}
