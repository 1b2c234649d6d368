package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/taskbook/internal/domain/task"
)

// AddTaskParams is the input of the add_task tool.
type AddTaskParams struct {
	Title       string `json:"title" jsonschema:"task title, must not be blank"`
	Description string `json:"description,omitempty" jsonschema:"free-form description"`
	DueDate     string `json:"due_date" jsonschema:"due date in YYYY-MM-DD format"`
	Priority    string `json:"priority" jsonschema:"one of Low, Medium, High (case-sensitive)"`
	IsRecurring bool   `json:"is_recurring,omitempty" jsonschema:"marks the task as recurring"`
}

// TaskResponse is the output of the add_task tool.
type TaskResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DueDate       string `json:"due_date"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	LastUpdatedAt string `json:"last_updated_at"`
	IsRecurring   bool   `json:"is_recurring"`
}

func newTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339Nano),
		LastUpdatedAt: t.LastUpdatedAt.Format(time.RFC3339Nano),
		IsRecurring:   t.IsRecurring,
	}
}

func registerTools(server *sdkmcp.Server, tasks TaskService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the personal task list. Rejects blank titles, invalid due dates, unknown priorities, and tasks that duplicate an existing title (case-insensitive) on the same due date.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddTaskParams) (*sdkmcp.CallToolResult, TaskResponse, error) {
		created, err := tasks.AddNewTask(ctx, task.CreateRequest{
			Title:       in.Title,
			Description: in.Description,
			DueDate:     in.DueDate,
			Priority:    task.Priority(in.Priority),
			IsRecurring: in.IsRecurring,
		})
		if err != nil {
			return nil, TaskResponse{}, mapError(err)
		}
		return nil, newTaskResponse(created), nil
	})
}
