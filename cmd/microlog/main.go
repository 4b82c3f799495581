// Package main provides the entry point for the microlog CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/config"
	"github.com/anguspiv/micro-journal/internal/envfile"
	"github.com/anguspiv/micro-journal/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// Commands read the flag instead of sharing a global so they stay
// independently testable.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the microlog CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "microlog",
		Short: "A personal micro-journal",
		Long: `Microlog - a personal micro-journaling tool for quick timestamped notes.

Microlog keeps an append-only journal of short entries:
  - Capture a thought in seconds with optional tags and media references
  - Browse by date, recency, or trailing days
  - Consolidate a day's entries into one ordered document
  - Export as markdown, obsidian-flavored markdown, plain text, or json

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'microlog --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load env files so a journal directory can pin data/config locations.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-directory override, gitignored)
//  2. $CWD/.env         (per-directory)
//  3. ~/.config/microlog/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "journal", Title: "Journal Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "publish", Title: "Publish Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newAddCmd(), "journal")
	addGroupedCommand(cmd, newListCmd(), "journal")
	addGroupedCommand(cmd, newPromptCmd(), "journal")

	addGroupedCommand(cmd, newExportCmd(), "publish")
	addGroupedCommand(cmd, newConsolidateCmd(), "publish")

	addGroupedCommand(cmd, newConfigCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
