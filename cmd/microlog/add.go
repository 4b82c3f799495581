// Package main provides the entry point for the microlog CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/journal"
	"github.com/anguspiv/micro-journal/internal/output"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	return newAddCmdInternal(nil)
}

// newAddCmdInternal creates the add command with optional store injection.
// If store is nil, a real store is created when the command runs.
func newAddCmdInternal(store *journal.Store) *cobra.Command {
	var mediaFlag []string
	var tagFlags []string

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Record a journal entry",
		Long: `Record a timestamped journal entry.

Content is taken from the arguments, or from stdin when piped.

Examples:
  microlog add "Great coffee meeting with Sarah" --tag work,social
  microlog add "Sketched the new layout" --media ~/sketches/layout.png
  echo "Quick thought" | microlog add`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, store, args, mediaFlag, tagFlags)
		},
	}

	cmd.Flags().StringArrayVar(&mediaFlag, "media", nil, "Path to a media file referenced by the entry (repeatable)")
	cmd.Flags().StringSliceVar(&tagFlags, "tag", nil, "Tag for categorization (repeatable or comma-separated)")

	return cmd
}

// runAdd executes the add command.
func runAdd(cmd *cobra.Command, store *journal.Store, args, media, tags []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	content, err := resolveContent(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	store, err = ensureStore(printer, store)
	if err != nil {
		return err
	}

	entry, err := journal.NewEntry(content, media, tags, store.Now())
	if err != nil {
		return coreError(printer, err)
	}

	warnMissingMedia(printer, entry.Media)

	id, err := store.Append(entry)
	if err != nil {
		return coreError(printer, err)
	}

	return printer.Success(map[string]any{
		"message":    fmt.Sprintf("Added entry %s", id),
		"id":         id,
		"created_at": entry.CreatedAt.Format("2006-01-02 15:04:05 -0700"),
	})
}

// resolveContent takes content from the arguments, falling back to stdin
// when it is piped.
func resolveContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", output.NewUserError("no content given. Pass it as an argument or pipe it on stdin")
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", output.NewSystemErrorWithCause("reading stdin", err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", output.NewUserError("no content given. Pass it as an argument or pipe it on stdin")
	}
	return content, nil
}

// warnMissingMedia emits a warning for referenced media paths that do not
// exist. The entry is stored either way; media are opaque references.
func warnMissingMedia(printer *output.Printer, media []string) {
	for _, path := range media {
		if _, err := os.Stat(path); err != nil {
			printer.Warn("media file not found: %s", path)
		}
	}
}
