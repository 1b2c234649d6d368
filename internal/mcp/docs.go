package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `taskbook keeps a personal task list.

Use add_task to create a task. Required: title, due_date (YYYY-MM-DD), priority (Low, Medium, High).
A task is rejected when its title matches an existing task (ignoring case) with the same due date.
Read taskbook://docs/task-fields for the full field reference.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "taskbook://docs/task-fields",
		Name:        "task_fields",
		Title:       "Task fields and rules",
		Description: "Field reference for tasks and the checks add_task applies.",
		Content: `# Task fields

| Field | Notes |
|---|---|
| id | generated UUID, never reused |
| title | required, not blank |
| description | optional free text |
| due_date | required, ` + "`YYYY-MM-DD`" + `, must be a real calendar date |
| priority | ` + "`Low`, `Medium` or `High`" + ` (case-sensitive) |
| status | ` + "`Incomplete`" + ` for every new task |
| created_at | RFC 3339 timestamp set at creation |
| last_updated_at | equals created_at for new tasks |
| is_recurring | flag only, nothing is scheduled |

## Checks, in order

1. title not blank (INVALID_TITLE)
2. due_date not blank and parses (INVALID_DUE_DATE)
3. priority is a known tier (INVALID_PRIORITY)
4. no existing task with the same title, ignoring case, and the same due_date string (DUPLICATE_TASK)

Rejected calls never modify the stored list.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
