package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/rpggio/taskbook/internal/domain/task"
)

// demoRequests is the fixed demonstration sequence.
var demoRequests = []task.CreateRequest{
	{
		Title:       "Buy book",
		Description: "Software engineering textbook",
		DueDate:     "2025-07-20",
		Priority:    task.PriorityHigh,
	},
	{
		Title:       "Buy book",
		Description: "Software engineering textbook",
		DueDate:     "2025-07-20",
		Priority:    task.PriorityHigh,
	},
	{
		Title:       "Exercise",
		Description: "Gym for an hour",
		DueDate:     "2025-07-21",
		Priority:    task.PriorityMedium,
		IsRecurring: true,
	},
	{
		Title:       "",
		Description: "Task with no title",
		DueDate:     "2025-07-22",
		Priority:    task.PriorityLow,
	},
}

func newDemoCmd(current func() *app) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Run the demonstration sequence against the configured store",
		Description: `Adds "Buy book", tries to add it again, adds a recurring "Exercise"
task, then tries a task with an empty title. Rejections are reported and
do not stop the sequence.`,
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := runDemo(ctx, current().tasks, c.Root().Writer)
			return err
		},
	}
}

// runDemo adds every demo request in order and returns how many were
// stored. Validation and duplicate rejections are printed; any other
// failure stops the run.
func runDemo(ctx context.Context, tasks *task.Service, out io.Writer) (int, error) {
	added := 0
	for _, req := range demoRequests {
		created, err := tasks.AddNewTask(ctx, req)
		switch {
		case err == nil:
			added++
			fmt.Fprintf(out, "added %s %q due %s\n", created.ID, created.Title, created.DueDate)
		case isRejection(err):
			fmt.Fprintf(out, "rejected %q: %v\n", req.Title, err)
		default:
			return added, err
		}
	}
	return added, nil
}

func isRejection(err error) bool {
	return errors.Is(err, task.ErrInvalidInput) || errors.Is(err, task.ErrDuplicateTask)
}
