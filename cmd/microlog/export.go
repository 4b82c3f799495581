// Package main provides the entry point for the microlog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/export"
	"github.com/anguspiv/micro-journal/internal/journal"
	"github.com/anguspiv/micro-journal/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	return newExportCmdInternal(nil)
}

// newExportCmdInternal creates the export command with optional store injection.
func newExportCmdInternal(store *journal.Store) *cobra.Command {
	var formatFlag string
	var outputFlag string
	var fromFlag string
	var toFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries to a textual format",
		Long: `Export journal entries as markdown, obsidian, text, or json.

With no range flags, exports the whole journal. With one of --from/--to,
exports that single date; with both, the inclusive range.

Examples:
  microlog export --format json                          # whole journal to stdout
  microlog export --from 2024-01-01 --to 2024-01-31      # one month
  microlog export --from yesterday --format obsidian
  microlog export --format markdown --output ./journal.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, store, formatFlag, outputFlag, fromFlag, toFlag)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: markdown, obsidian, text, or json (default from config)")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Output file path (if omitted, writes to stdout)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "Range start date: today, yesterday, or YYYY-MM-DD")
	cmd.Flags().StringVar(&toFlag, "to", "", "Range end date, inclusive")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, store *journal.Store, formatFlag, outputFlag, fromFlag, toFlag string) error {
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

	entries, err := rangeEntries(store, fromFlag, toFlag)
	if err != nil {
		return coreError(printer, err)
	}

	rendered, err := export.RenderEntries(format, entries)
	if err != nil {
		return coreError(printer, err)
	}

	return writeRendered(printer, rendered, outputFlag, len(entries))
}

// rangeEntries resolves the from/to selection: both set means an inclusive
// range, one set means that single date, neither means the whole journal.
func rangeEntries(store *journal.Store, fromFlag, toFlag string) ([]*journal.Entry, error) {
	if fromFlag == "" && toFlag == "" {
		return store.ListAll()
	}

	if fromFlag == "" {
		fromFlag = toFlag
	}
	if toFlag == "" {
		toFlag = fromFlag
	}

	from, err := journal.ParseDate(fromFlag, store.Now(), store.Location())
	if err != nil {
		return nil, err
	}
	to, err := journal.ParseDate(toFlag, store.Now(), store.Location())
	if err != nil {
		return nil, err
	}

	return store.ListRange(from, to)
}

// writeRendered sends a rendered document to a file or stdout.
func writeRendered(printer *output.Printer, rendered, outputFlag string, count int) error {
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
		"message": fmt.Sprintf("Exported %d entries to %s", count, outputFlag),
		"count":   count,
		"output":  outputFlag,
	})
}
