package journal

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConsolidateOrdersEntriesAscending(t *testing.T) {
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	mustAppend(t, s, "Finished the report", nil, []string{"work"}, time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC))
	mustAppend(t, s, "Great coffee meeting with Sarah", nil, []string{"work", "social"}, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))

	doc, err := Consolidate(s, Date{2024, time.January, 15})
	if err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}

	if doc.Date != (Date{2024, time.January, 15}) {
		t.Errorf("Date = %v", doc.Date)
	}
	if !doc.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want the store clock", doc.GeneratedAt)
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("len = %d, want 2", len(doc.Entries))
	}
	if doc.Entries[0].Content != "Great coffee meeting with Sarah" {
		t.Errorf("first entry = %q, want the morning entry", doc.Entries[0].Content)
	}
	if len(doc.Entries[1].Tags) != 1 || doc.Entries[1].Tags[0] != "work" {
		t.Errorf("second entry tags = %v, want only its own", doc.Entries[1].Tags)
	}
}

func TestConsolidateEmptyDay(t *testing.T) {
	s := newTestStore(t, time.UTC, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	_, err := Consolidate(s, Date{2024, time.January, 1})
	if err == nil {
		t.Fatal("expected ErrEmptyDay")
	}
	if !errors.Is(err, ErrEmptyDay) {
		t.Errorf("error %v does not wrap ErrEmptyDay", err)
	}
	if !strings.Contains(err.Error(), "2024-01-01") {
		t.Errorf("error %v should name the date", err)
	}
}

func TestConsolidateIsIdempotentOverUnchangedLog(t *testing.T) {
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)
	mustAppend(t, s, "only entry", nil, nil, now.Add(-time.Hour))

	first, err := Consolidate(s, Date{2024, time.January, 15})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Consolidate(s, Date{2024, time.January, 15})
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Entries) != len(second.Entries) {
		t.Fatalf("entry counts differ")
	}
	for i := range first.Entries {
		if first.Entries[i].ID != second.Entries[i].ID {
			t.Errorf("entry order differs at %d", i)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := Date{Year: 2024, Month: time.January, Day: 5}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-01-05"` {
		t.Errorf("Marshal() = %s, want quoted YYYY-MM-DD", data)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if parsed != d {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}
}

func TestDateJSONRejectsMalformed(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"Jan 5"`), &d); err == nil {
		t.Error("expected error for malformed date string")
	}
	if err := json.Unmarshal([]byte(`20240105`), &d); err == nil {
		t.Error("expected error for non-string date")
	}
}
