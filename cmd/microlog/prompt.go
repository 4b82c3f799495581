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
	"github.com/anguspiv/micro-journal/internal/prompt"
)

// newPromptCmd creates the prompt command.
func newPromptCmd() *cobra.Command {
	return newPromptCmdInternal(nil)
}

// newPromptCmdInternal creates the prompt command with optional store
// injection.
func newPromptCmdInternal(store *journal.Store) *cobra.Command {
	var templateFlag string
	var listFlag bool
	var showFlag bool

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Show a journaling prompt",
		Long: `Show a journaling prompt from a template.

Templates resolve project-local (.microlog/templates/), then global
(config dir), then built-in. Built-ins: daily, gratitude, standup.

When stdin is piped, the piped text is recorded as an entry carrying the
template's tags instead of printing the prompt.

Examples:
  microlog prompt                          # print the daily prompt
  microlog prompt --template gratitude
  microlog prompt --list                   # list available templates
  microlog prompt --template standup --show   # raw body, placeholders unexpanded
  echo "Shipped the exporter" | microlog prompt --template standup`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrompt(cmd, store, templateFlag, listFlag, showFlag)
		},
	}

	cmd.Flags().StringVar(&templateFlag, "template", "daily", "Template name")
	cmd.Flags().BoolVar(&listFlag, "list", false, "List available templates")
	cmd.Flags().BoolVar(&showFlag, "show", false, "Show the raw template body without expanding placeholders")

	return cmd
}

// runPrompt executes the prompt command.
func runPrompt(cmd *cobra.Command, store *journal.Store, templateFlag string, listFlag, showFlag bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if listFlag {
		return writePromptList(printer)
	}

	tmpl, err := prompt.Load(templateFlag)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if showFlag {
		printer.Println(tmpl.Body)
		return nil
	}

	if body, piped := pipedStdin(cmd); piped {
		return addPromptedEntry(printer, store, tmpl, body)
	}

	store, err = ensureStore(printer, store)
	if err != nil {
		return err
	}
	printer.Println(tmpl.Render(store.Now()))
	return nil
}

// writePromptList lists the available templates with their sources.
func writePromptList(printer *output.Printer) error {
	infos := prompt.List()

	if printer.IsJSON() {
		return printer.WriteJSON(infos)
	}

	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source = fmt.Sprintf("%s, overrides %s", info.Source, info.Overrides)
		}
		printer.KeyValue(info.Name, fmt.Sprintf("%s (%s)", info.Description, source))
	}
	return nil
}

// pipedStdin returns stdin's content when it is piped rather than a
// terminal.
func pipedStdin(cmd *cobra.Command) (string, bool) {
	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", false
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", false
	}
	body := strings.TrimSpace(string(data))
	return body, body != ""
}

// addPromptedEntry records piped text as an entry tagged by the template.
func addPromptedEntry(printer *output.Printer, store *journal.Store, tmpl *prompt.Template, body string) error {
	store, err := ensureStore(printer, store)
	if err != nil {
		return err
	}

	entry, err := journal.NewEntry(body, nil, tmpl.Tags, store.Now())
	if err != nil {
		return coreError(printer, err)
	}

	id, err := store.Append(entry)
	if err != nil {
		return coreError(printer, err)
	}

	return printer.Success(map[string]any{
		"message":  fmt.Sprintf("Added entry %s from template %s", id, tmpl.Name),
		"id":       id,
		"template": tmpl.Name,
	})
}
