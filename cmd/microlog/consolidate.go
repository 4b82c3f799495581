// Package main provides the entry point for the microlog CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/export"
	"github.com/anguspiv/micro-journal/internal/journal"
	"github.com/anguspiv/micro-journal/internal/output"
)

// newConsolidateCmd creates the consolidate command.
func newConsolidateCmd() *cobra.Command {
	return newConsolidateCmdInternal(nil)
}

// newConsolidateCmdInternal creates the consolidate command with optional
// store injection.
func newConsolidateCmdInternal(store *journal.Store) *cobra.Command {
	var dateFlag string
	var formatFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge a day's entries into one document",
		Long: `Merge all entries for one calendar date into a single ordered document.

Consolidation is deterministic: the same entries always produce the same
document. A date with no entries is reported, not treated as a failure.

Examples:
  microlog consolidate                          # today
  microlog consolidate --date 2024-01-15
  microlog consolidate --date yesterday --format obsidian --output ./daily.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsolidate(cmd, store, dateFlag, formatFlag, outputFlag)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date to consolidate: today, yesterday, or YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: markdown, obsidian, text, or json (default from config)")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Output file path (if omitted, writes to stdout)")

	return cmd
}

// runConsolidate executes the consolidate command.
func runConsolidate(cmd *cobra.Command, store *journal.Store, dateFlag, formatFlag, outputFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if formatFlag == "" {
		formatFlag = defaultFormat()
	}
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return coreError(printer, err)
	}

	store, err = ensureStore(printer, store)
	if err != nil {
		return err
	}

	value := dateFlag
	if value == "" {
		value = "today"
	}
	date, err := journal.ParseDate(value, store.Now(), store.Location())
	if err != nil {
		return coreError(printer, err)
	}

	doc, err := journal.Consolidate(store, date)
	if err != nil {
		// An empty day is a notice, not a failure. Nothing is written.
		if errors.Is(err, journal.ErrEmptyDay) {
			printer.Warn("no entries for %s", date)
			return nil
		}
		return coreError(printer, err)
	}

	rendered, err := export.RenderDaily(format, doc)
	if err != nil {
		return coreError(printer, err)
	}

	if outputFlag == "" {
		printer.Print("%s", rendered)
		return nil
	}

	if err := export.WriteFile(outputFlag, rendered); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing output file", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Consolidated %d entries for %s to %s", len(doc.Entries), date, outputFlag),
		"date":    date.String(),
		"count":   len(doc.Entries),
		"output":  outputFlag,
	})
}
