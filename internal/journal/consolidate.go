package journal

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyDay signals that a date has no entries to consolidate. It is a
// recoverable condition: callers decide whether an empty day is fatal or
// just an empty export.
var ErrEmptyDay = errors.New("no entries for date")

// DailyDocument is the consolidated, ordered view of one calendar day.
// It is derived from the log on every call and never persisted as
// authoritative state.
type DailyDocument struct {
	Date        Date      `json:"date"`
	GeneratedAt time.Time `json:"generated_at"`
	Entries     []*Entry  `json:"entries"`
}

// Consolidate merges all entries for the given date into a DailyDocument.
// Pure read: the log is never mutated. Entries are ordered by created_at
// ascending with ID ascending on ties, so repeated calls over an unchanged
// log produce identical documents. Returns ErrEmptyDay (wrapped with the
// date) when the day has no entries.
func Consolidate(store *Store, d Date) (*DailyDocument, error) {
	entries, err := store.ListByDate(d)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDay, d)
	}

	return &DailyDocument{
		Date:        d,
		GeneratedAt: store.Now(),
		Entries:     entries,
	}, nil
}
