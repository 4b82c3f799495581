// Package main provides the entry point for the microlog CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/anguspiv/micro-journal/internal/config"
	"github.com/anguspiv/micro-journal/internal/export"
	"github.com/anguspiv/micro-journal/internal/journal"
	"github.com/anguspiv/micro-journal/internal/output"
)

// ensureStore returns the store, constructing one from the persisted
// settings if the caller did not inject one.
func ensureStore(printer *output.Printer, store *journal.Store) (*journal.Store, error) {
	if store != nil {
		return store, nil
	}

	settings, err := config.Load()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading configuration", err)
		printer.Error(sysErr)
		return nil, sysErr
	}

	loc, err := settings.Location()
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return nil, userErr
	}

	return journal.NewStore(settings.ResolveDataDir(), loc), nil
}

// defaultFormat returns the configured default export format, or markdown
// when configuration cannot be read.
func defaultFormat() string {
	settings, err := config.Load()
	if err != nil {
		return "markdown"
	}
	return settings.Format()
}

// coreError maps a typed journal/export failure onto an ExitError, prints
// it, and returns it for propagation. Validation, date, range, and format
// errors are the user's to fix; storage failures are system errors, with
// duplicate appends surfaced as conflicts.
func coreError(printer *output.Printer, err error) error {
	var exitErr *output.ExitError

	var verr *journal.ValidationError
	var derr *journal.InvalidDateError
	var rerr *journal.InvalidRangeError
	var ferr *export.UnsupportedFormatError
	var serr *journal.StorageError

	switch {
	case journal.AsValidationError(err, &verr):
		exitErr = output.NewUserError(verr.Error())
	case errors.As(err, &derr):
		exitErr = output.NewUserError(derr.Error())
	case errors.As(err, &rerr):
		exitErr = output.NewUserError(rerr.Error())
	case errors.As(err, &ferr):
		exitErr = output.NewUserError(ferr.Error())
	case errors.As(err, &serr):
		if serr.Op == "append" {
			exitErr = output.NewConflictError(serr.Error())
		} else {
			exitErr = output.NewSystemErrorWithCause(fmt.Sprintf("%s %s", serr.Op, serr.Path), serr.Err)
		}
	default:
		exitErr = output.NewSystemErrorWithCause(err.Error(), err)
	}

	printer.Error(exitErr)
	return exitErr
}
