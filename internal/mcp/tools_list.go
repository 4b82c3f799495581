package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// ListInput is the input for the list tool. At most one of date, recent,
// and days may be set; with none set it defaults to today's entries.
type ListInput struct {
	Date   string   `json:"date,omitempty"   jsonschema:"today, yesterday, or YYYY-MM-DD"`
	Recent int      `json:"recent,omitempty" jsonschema:"retrieve the N most recent entries"`
	Days   int      `json:"days,omitempty"   jsonschema:"retrieve entries from the trailing N days"`
	Tags   []string `json:"tags,omitempty"   jsonschema:"filter by tags (OR logic)"`
}

// ListOutput is the output for the list tool.
type ListOutput struct {
	Count   int              `json:"count"   jsonschema:"number of entries returned"`
	Entries []*journal.Entry `json:"entries" jsonschema:"matching journal entries"`
}

func handleList(store *journal.Store) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		entries, err := listEntries(store, input)
		if err != nil {
			return nil, ListOutput{}, err
		}

		if len(input.Tags) > 0 {
			entries = journal.FilterEntriesByTags(entries, input.Tags)
		}

		return nil, ListOutput{Count: len(entries), Entries: entries}, nil
	}
}

func listEntries(store *journal.Store, input ListInput) ([]*journal.Entry, error) {
	selectors := 0
	if input.Date != "" {
		selectors++
	}
	if input.Recent > 0 {
		selectors++
	}
	if input.Days > 0 {
		selectors++
	}
	if selectors > 1 {
		return nil, errors.New("specify at most one of date, recent, and days")
	}

	switch {
	case input.Recent > 0:
		return store.ListRecent(input.Recent)
	case input.Days > 0:
		return store.ListSince(input.Days)
	default:
		value := input.Date
		if value == "" {
			value = "today"
		}
		date, err := journal.ParseDate(value, store.Now(), store.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		return store.ListByDate(date)
	}
}
