package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anguspiv/micro-journal/internal/export"
	"github.com/anguspiv/micro-journal/internal/journal"
)

// ExportInput is the input for the export tool.
type ExportInput struct {
	Format string `json:"format,omitempty" jsonschema:"markdown, obsidian, text, or json (default markdown)"`
	From   string `json:"from,omitempty"   jsonschema:"range start date (today, yesterday, or YYYY-MM-DD)"`
	To     string `json:"to,omitempty"     jsonschema:"range end date, inclusive"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	Format  string `json:"format"  jsonschema:"format that was rendered"`
	Count   int    `json:"count"   jsonschema:"number of entries rendered"`
	Content string `json:"content" jsonschema:"the rendered document"`
}

// ConsolidateInput is the input for the consolidate tool.
type ConsolidateInput struct {
	Date   string `json:"date,omitempty"   jsonschema:"today, yesterday, or YYYY-MM-DD (default today)"`
	Format string `json:"format,omitempty" jsonschema:"markdown, obsidian, text, or json (default markdown)"`
}

// ConsolidateOutput is the output for the consolidate tool.
type ConsolidateOutput struct {
	Date    string `json:"date"    jsonschema:"the consolidated date"`
	Count   int    `json:"count"   jsonschema:"number of entries in the document"`
	Content string `json:"content" jsonschema:"the rendered daily document"`
}

func handleExport(store *journal.Store) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		format, err := parseFormatDefault(input.Format)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		entries, err := exportEntries(store, input.From, input.To)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		rendered, err := export.RenderEntries(format, entries)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("rendering entries: %w", err)
		}

		return nil, ExportOutput{
			Format:  string(format),
			Count:   len(entries),
			Content: rendered,
		}, nil
	}
}

func handleConsolidate(store *journal.Store) mcp.ToolHandlerFor[ConsolidateInput, ConsolidateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConsolidateInput) (*mcp.CallToolResult, ConsolidateOutput, error) {
		format, err := parseFormatDefault(input.Format)
		if err != nil {
			return nil, ConsolidateOutput{}, err
		}

		value := input.Date
		if value == "" {
			value = "today"
		}
		date, err := journal.ParseDate(value, store.Now(), store.Location())
		if err != nil {
			return nil, ConsolidateOutput{}, fmt.Errorf("invalid date: %w", err)
		}

		doc, err := journal.Consolidate(store, date)
		if err != nil {
			if errors.Is(err, journal.ErrEmptyDay) {
				return nil, ConsolidateOutput{}, fmt.Errorf("no entries for %s", date)
			}
			return nil, ConsolidateOutput{}, fmt.Errorf("consolidating %s: %w", date, err)
		}

		rendered, err := export.RenderDaily(format, doc)
		if err != nil {
			return nil, ConsolidateOutput{}, fmt.Errorf("rendering document: %w", err)
		}

		return nil, ConsolidateOutput{
			Date:    date.String(),
			Count:   len(doc.Entries),
			Content: rendered,
		}, nil
	}
}

// exportEntries resolves the from/to selection: both set means an inclusive
// range, one set means that single date, neither means the whole journal.
func exportEntries(store *journal.Store, fromValue, toValue string) ([]*journal.Entry, error) {
	if fromValue == "" && toValue == "" {
		return store.ListAll()
	}

	if fromValue == "" {
		fromValue = toValue
	}
	if toValue == "" {
		toValue = fromValue
	}

	from, err := journal.ParseDate(fromValue, store.Now(), store.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	to, err := journal.ParseDate(toValue, store.Now(), store.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	return store.ListRange(from, to)
}

func parseFormatDefault(name string) (export.Format, error) {
	if name == "" {
		name = "markdown"
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return "", fmt.Errorf("invalid format: %w", err)
	}
	return format, nil
}
