package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rpggio/taskbook/internal/domain/activity"
	"github.com/rpggio/taskbook/internal/sqlite"
)

var errNoHistory = errors.New("activity history requires the sqlite store backend")

// activityLine is one JSON line of activity output.
type activityLine struct {
	ID        int64   `json:"id"`
	TaskID    *string `json:"task_id,omitempty"`
	Type      string  `json:"type"`
	Summary   string  `json:"summary"`
	Details   string  `json:"details,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func newActivityCmd(current func() *app) *cli.Command {
	var (
		taskID string
		typ    string
		limit  int
	)

	return &cli.Command{
		Name:      "activity",
		Usage:     "List recorded task activity",
		UsageText: "taskbook activity [--task-id <id>] [--type <type>] [--limit <n>]",
		Description: `Lists activity entries as JSON lines, oldest first.

Types: task_created, validation_rejected, duplicate_rejected, load_failed.
Only the sqlite backend keeps activity history.

Examples:
  taskbook --store-backend sqlite --store-path tasks.db activity
  taskbook --store-backend sqlite --store-path tasks.db activity --type duplicate_rejected`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "task-id",
				Usage:       "only entries for this task",
				Destination: &taskID,
			},
			&cli.StringFlag{
				Name:        "type",
				Usage:       "only entries of this type",
				Destination: &typ,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum number of entries (0 for all)",
				Destination: &limit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			history := current().history
			if history == nil {
				return errNoHistory
			}

			opts := sqlite.ListActivityOptions{Limit: limit}
			if taskID != "" {
				opts.TaskID = &taskID
			}
			if typ != "" {
				t := activity.Type(typ)
				opts.Type = &t
			}

			entries, err := history.List(ctx, opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			for _, e := range entries {
				if err := enc.Encode(activityLine{
					ID:        e.ID,
					TaskID:    e.TaskID,
					Type:      string(e.Type),
					Summary:   e.Summary,
					Details:   e.Details,
					CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
