// Package main provides the entry point for the microlog CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/journal"
	"github.com/anguspiv/micro-journal/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return newListCmdInternal(nil)
}

// newListCmdInternal creates the list command with optional store injection.
func newListCmdInternal(store *journal.Store) *cobra.Command {
	var dateFlag string
	var recentFlag int
	var daysFlag int
	var tagFlags []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse journal entries",
		Long: `Browse journal entries by date, recency, or trailing days.

With no flags, lists today's entries.

Examples:
  microlog list                        # today's entries
  microlog list --date yesterday
  microlog list --date 2024-01-15
  microlog list --recent 10            # 10 most recent, newest first
  microlog list --days 7               # trailing week
  microlog list --days 7 --tag work    # trailing week, work entries only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, store, dateFlag, recentFlag, daysFlag, tagFlags)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "List entries for a date: today, yesterday, or YYYY-MM-DD")
	cmd.Flags().IntVar(&recentFlag, "recent", 0, "List the N most recent entries")
	cmd.Flags().IntVar(&daysFlag, "days", 0, "List entries from the trailing N days")
	cmd.Flags().StringSliceVar(&tagFlags, "tag", nil, "Filter by tag (repeatable or comma-separated, OR logic)")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, store *journal.Store, dateFlag string, recentFlag, daysFlag int, tagFlags []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if err := validateListFlags(printer, dateFlag, recentFlag, daysFlag); err != nil {
		return err
	}

	store, err := ensureStore(printer, store)
	if err != nil {
		return err
	}

	entries, err := selectEntries(store, dateFlag, recentFlag, daysFlag)
	if err != nil {
		return coreError(printer, err)
	}

	if len(tagFlags) > 0 {
		entries = journal.FilterEntriesByTags(entries, tagFlags)
	}

	return writeListOutput(printer, entries)
}

// validateListFlags rejects combinations of mutually exclusive selectors.
func validateListFlags(printer *output.Printer, dateFlag string, recentFlag, daysFlag int) error {
	selectors := 0
	if dateFlag != "" {
		selectors++
	}
	if recentFlag > 0 {
		selectors++
	}
	if daysFlag > 0 {
		selectors++
	}
	if selectors > 1 {
		err := output.NewUserError("--date, --recent, and --days are mutually exclusive")
		printer.Error(err)
		return err
	}
	if recentFlag < 0 {
		err := output.NewUserError("--recent must be a positive integer")
		printer.Error(err)
		return err
	}
	if daysFlag < 0 {
		err := output.NewUserError("--days must be a positive integer")
		printer.Error(err)
		return err
	}
	return nil
}

// selectEntries retrieves entries for the chosen selector. The default with
// no selector is today's entries.
func selectEntries(store *journal.Store, dateFlag string, recentFlag, daysFlag int) ([]*journal.Entry, error) {
	switch {
	case recentFlag > 0:
		return store.ListRecent(recentFlag)
	case daysFlag > 0:
		return store.ListSince(daysFlag)
	default:
		value := dateFlag
		if value == "" {
			value = "today"
		}
		date, err := journal.ParseDate(value, store.Now(), store.Location())
		if err != nil {
			return nil, err
		}
		return store.ListByDate(date)
	}
}

// writeListOutput renders the entries: JSON array in JSON mode, otherwise
// one block per entry with timestamp, content, and metadata.
func writeListOutput(printer *output.Printer, entries []*journal.Entry) error {
	if printer.IsJSON() {
		if entries == nil {
			entries = []*journal.Entry{}
		}
		return printer.WriteJSON(entries)
	}

	if len(entries) == 0 {
		printer.Println("No entries.")
		return nil
	}

	for i, entry := range entries {
		if i > 0 {
			printer.Println()
		}
		printer.KeyValue(entry.CreatedAt.Format("2006-01-02 15:04:05 -0700"), entry.ID)
		printer.Println(entry.Content)
		for _, m := range entry.Media {
			printer.Print("  media: %s\n", m)
		}
		if len(entry.Tags) > 0 {
			printer.Print("  tags: %s\n", strings.Join(entry.Tags, ", "))
		}
	}
	return nil
}
