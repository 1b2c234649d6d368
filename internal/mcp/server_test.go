package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/taskbook/internal/domain/task"
)

// taskStub returns a fixed task or error and records the last request.
type taskStub struct {
	last *task.CreateRequest
	task *task.Task
	err  error
}

func (s *taskStub) AddNewTask(ctx context.Context, req task.CreateRequest) (*task.Task, error) {
	s.last = &req
	return s.task, s.err
}

func connect(t *testing.T, tasks TaskService) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(Config{Tasks: tasks, Version: "test"})
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func callAddTask(t *testing.T, session *sdkmcp.ClientSession, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "add_task",
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestAddTaskTool_Success(t *testing.T) {
	created := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	stub := &taskStub{task: &task.Task{
		ID:            "task-1",
		Title:         "Buy book",
		Description:   "Software engineering",
		DueDate:       "2025-07-20",
		Priority:      task.PriorityHigh,
		Status:        task.StatusIncomplete,
		CreatedAt:     created,
		LastUpdatedAt: created,
	}}
	session := connect(t, stub)

	res := callAddTask(t, session, map[string]any{
		"title":       "Buy book",
		"description": "Software engineering",
		"due_date":    "2025-07-20",
		"priority":    "High",
	})
	require.False(t, res.IsError, resultText(t, res))

	require.NotNil(t, stub.last)
	require.Equal(t, task.CreateRequest{
		Title:       "Buy book",
		Description: "Software engineering",
		DueDate:     "2025-07-20",
		Priority:    task.PriorityHigh,
	}, *stub.last)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var got TaskResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, "task-1", got.ID)
	require.Equal(t, "Incomplete", got.Status)
	require.Equal(t, "2025-07-01T08:00:00Z", got.CreatedAt)
	require.Equal(t, got.CreatedAt, got.LastUpdatedAt)
}

func TestAddTaskTool_ErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{task.ErrEmptyTitle, "INVALID_TITLE"},
		{task.ErrInvalidDueDate, "INVALID_DUE_DATE"},
		{task.ErrInvalidPriority, "INVALID_PRIORITY"},
		{fmt.Errorf("%w: %q due %s", task.ErrDuplicateTask, "Buy book", "2025-07-20"), "DUPLICATE_TASK"},
		{fmt.Errorf("%w: boom", task.ErrStoreUnavailable), "STORE_UNAVAILABLE"},
		{fmt.Errorf("%w: boom", task.ErrPersistFailed), "PERSIST_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			session := connect(t, &taskStub{err: tc.err})

			res := callAddTask(t, session, map[string]any{
				"title":    "Buy book",
				"due_date": "2025-07-20",
				"priority": "High",
			})
			require.True(t, res.IsError)
			require.Contains(t, resultText(t, res), tc.code)
		})
	}
}

func TestAddTaskTool_WithService(t *testing.T) {
	svc := task.NewService(&memoryStore{}, nil, nil)
	session := connect(t, svc)

	args := map[string]any{
		"title":        "Exercise",
		"due_date":     "2025-07-21",
		"priority":     "Medium",
		"is_recurring": true,
	}
	first := callAddTask(t, session, args)
	require.False(t, first.IsError, resultText(t, first))

	args["title"] = "EXERCISE"
	second := callAddTask(t, session, args)
	require.True(t, second.IsError)
	require.Contains(t, resultText(t, second), "DUPLICATE_TASK")

	blank := callAddTask(t, session, map[string]any{"title": "", "due_date": "2025-07-22", "priority": "Low"})
	require.True(t, blank.IsError)
	require.Contains(t, resultText(t, blank), "INVALID_TITLE")
}

func TestDocResource(t *testing.T) {
	session := connect(t, &taskStub{})

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{
		URI: "taskbook://docs/task-fields",
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "DUPLICATE_TASK")
}

func TestMapError_Unknown(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(fmt.Errorf("something else")))
}

func TestHTTPHandler_Health(t *testing.T) {
	handler := NewHTTPHandler(NewServer(Config{Tasks: &taskStub{}}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

type memoryStore struct {
	tasks []task.Task
}

func (m *memoryStore) Load(ctx context.Context) ([]task.Task, error) {
	return append([]task.Task(nil), m.tasks...), nil
}

func (m *memoryStore) Save(ctx context.Context, tasks []task.Task) error {
	m.tasks = append([]task.Task(nil), tasks...)
	return nil
}
