// Package testserver runs the full add_task stack behind an httptest server.
package testserver

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/taskbook/internal/domain/activity"
	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/rpggio/taskbook/internal/jsonfile"
	"github.com/rpggio/taskbook/internal/mcp"
)

type TestServer struct {
	Server *httptest.Server
	Store  *jsonfile.TaskStore
}

// New starts a server backed by a JSON file in a temp directory.
func New(t *testing.T) *TestServer {
	t.Helper()

	store := jsonfile.NewTaskStore(filepath.Join(t.TempDir(), "tasks_database.json"))
	activities := activity.NewService(nil, nil)
	tasks := task.NewService(store, activities, nil)

	server := httptest.NewServer(mcp.NewHTTPHandler(mcp.NewServer(mcp.Config{
		Tasks:   tasks,
		Version: "test",
	})))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, Store: store}
}

// Connect opens an MCP client session over streamable HTTP.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}
