package journal

import (
	"fmt"
	"time"
)

// dateLayout is the on-disk and CLI calendar date format.
const dateLayout = "2006-01-02"

// Date is a calendar date in the journal's configured time zone.
// It deliberately carries no clock or zone so comparisons are exact.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// InvalidDateError is returned when a date argument cannot be parsed.
type InvalidDateError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q; use YYYY-MM-DD, 'today', or 'yesterday'", e.Input)
}

// InvalidRangeError is returned when a date range is inverted.
type InvalidRangeError struct {
	From Date
	To   Date
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: from %s is after to %s", e.From, e.To)
}

// ParseDate parses a date argument. Accepts ISO 8601 YYYY-MM-DD and the
// relative keywords "today" and "yesterday", resolved against now in the
// given location.
func ParseDate(value string, now time.Time, loc *time.Location) (Date, error) {
	switch value {
	case "today":
		return DateOf(now, loc), nil
	case "yesterday":
		return DateOf(now.AddDate(0, 0, -1), loc), nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, &InvalidDateError{Input: value}
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf returns the calendar date of t in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	t = t.In(loc)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Start returns midnight at the start of the date in the given location.
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Next returns the following calendar date.
func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// MarshalJSON encodes the date as its YYYY-MM-DD string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date JSON: %w", err)
	}
	*d = Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	return nil
}

// After reports whether d is a later calendar date than other.
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}
