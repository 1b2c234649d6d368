package main

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/rpggio/taskbook/internal/domain/task"
)

func newAddCmd(current func() *app) *cli.Command {
	var req task.CreateRequest
	var priority string

	return &cli.Command{
		Name:      "add",
		Usage:     "Add one task",
		UsageText: "taskbook add --title <title> --due <YYYY-MM-DD> --priority <Low|Medium|High> [--description <text>] [--recurring]",
		Description: `Adds a task and prints it as JSON.

Exits non-zero when the task is rejected.

Examples:
  taskbook add --title "Buy book" --due 2025-07-20 --priority High
  taskbook add -t Exercise --due 2025-07-21 -p Medium --recurring`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "task title",
				Destination: &req.Title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description",
				Destination: &req.Description,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date (YYYY-MM-DD)",
				Destination: &req.DueDate,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority (Low, Medium, High)",
				Value:       string(task.PriorityMedium),
				Destination: &priority,
			},
			&cli.BoolFlag{
				Name:        "recurring",
				Usage:       "mark the task as recurring",
				Destination: &req.IsRecurring,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req.Priority = task.Priority(priority)
			created, err := current().tasks.AddNewTask(ctx, req)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(created)
		},
	}
}
