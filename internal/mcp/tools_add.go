package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// AddInput is the input for the add tool.
type AddInput struct {
	Content string   `json:"content"         jsonschema:"entry body text (required, non-empty)"`
	Media   []string `json:"media,omitempty" jsonschema:"paths to media files referenced by the entry"`
	Tags    []string `json:"tags,omitempty"  jsonschema:"tags for categorization (case-insensitive)"`
}

// AddOutput is the output for the add tool.
type AddOutput struct {
	ID        string    `json:"id"         jsonschema:"identifier of the created entry"`
	CreatedAt time.Time `json:"created_at" jsonschema:"creation timestamp with zone offset"`
}

func handleAdd(store *journal.Store) mcp.ToolHandlerFor[AddInput, AddOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
		entry, err := journal.NewEntry(input.Content, input.Media, input.Tags, store.Now())
		if err != nil {
			return nil, AddOutput{}, err
		}

		id, err := store.Append(entry)
		if err != nil {
			return nil, AddOutput{}, fmt.Errorf("appending entry: %w", err)
		}

		return nil, AddOutput{ID: id, CreatedAt: entry.CreatedAt}, nil
	}
}
