// Package main provides the entry point for the microlog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/config"
	"github.com/anguspiv/micro-journal/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	var listFlag bool

	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration",
		Long: `Get or set microlog configuration.

Keys: time_zone (IANA name or "local"), default_format (markdown,
obsidian, text, json), data_dir (entry log location).

Examples:
  microlog config --list
  microlog config time_zone
  microlog config time_zone America/Chicago
  microlog config default_format obsidian`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, args, listFlag)
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "List all configuration keys and values")

	return cmd
}

// runConfig executes the config command.
func runConfig(cmd *cobra.Command, args []string, listFlag bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	settings, err := config.Load()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading configuration", err)
		printer.Error(sysErr)
		return sysErr
	}

	switch {
	case listFlag || len(args) == 0:
		return writeConfigList(printer, settings)
	case len(args) == 1:
		return writeConfigValue(printer, settings, args[0])
	default:
		return setConfigValue(printer, settings, args[0], args[1])
	}
}

// writeConfigList shows every known key with its current value.
func writeConfigList(printer *output.Printer, settings config.Settings) error {
	if printer.IsJSON() {
		values := make(map[string]string)
		for _, key := range config.Keys() {
			value, _ := settings.Get(key)
			values[key] = value
		}
		return printer.WriteJSON(values)
	}

	for _, key := range config.Keys() {
		value, _ := settings.Get(key)
		if value == "" {
			value = "(default)"
		}
		printer.KeyValue(key, value)
	}
	return nil
}

// writeConfigValue shows one key's value.
func writeConfigValue(printer *output.Printer, settings config.Settings, key string) error {
	value, err := settings.Get(key)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]string{key: value})
	}
	printer.Println(value)
	return nil
}

// setConfigValue validates, assigns, and persists one key.
func setConfigValue(printer *output.Printer, settings config.Settings, key, value string) error {
	if err := settings.Set(key, value); err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if err := settings.Save(); err != nil {
		sysErr := output.NewSystemErrorWithCause("saving configuration", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Set %s = %s", key, value),
		"key":     key,
		"value":   value,
	})
}
