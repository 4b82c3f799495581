package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T, loc *time.Location, now time.Time) *Store {
	t.Helper()
	return NewStore(t.TempDir(), loc, WithClock(func() time.Time { return now }))
}

func mustAppend(t *testing.T, s *Store, content string, media, tags []string, at time.Time) *Entry {
	t.Helper()
	entry, err := NewEntry(content, media, tags, at)
	if err != nil {
		t.Fatalf("creating entry: %v", err)
	}
	if _, err := s.Append(entry); err != nil {
		t.Fatalf("appending entry: %v", err)
	}
	return entry
}

func TestAppendThenListByDateRoundTrips(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	mustAppend(t, s, "Great coffee meeting with Sarah", []string{"pics/cafe.jpg"}, []string{"Work", "social"}, now)

	entries, err := s.ListByDate(Date{2024, time.January, 15})
	if err != nil {
		t.Fatalf("ListByDate() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}

	got := entries[0]
	if got.Content != "Great coffee meeting with Sarah" {
		t.Errorf("Content = %q", got.Content)
	}
	if len(got.Media) != 1 || got.Media[0] != "pics/cafe.jpg" {
		t.Errorf("Media = %v", got.Media)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "work" || got.Tags[1] != "social" {
		t.Errorf("Tags = %v, want normalized [work social]", got.Tags)
	}
}

func TestAppendRejectsInvalidEntry(t *testing.T) {
	s := newTestStore(t, time.UTC, time.Now().UTC())

	_, err := s.Append(&Entry{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !AsValidationError(err, &verr) {
		t.Errorf("error %v is not a ValidationError", err)
	}
}

func TestAppendDuplicateID(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	entry := mustAppend(t, s, "same", nil, nil, now)

	_, err := s.Append(entry)
	if err == nil {
		t.Fatal("expected error for duplicate entry")
	}
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a StorageError", err)
	}
	if serr.Op != "append" {
		t.Errorf("Op = %q, want append", serr.Op)
	}
}

func TestAppendAtomicityOnWriteFailure(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)
	mustAppend(t, s, "survives", nil, nil, now)

	// Simulate a failure mid-write: the primitive leaves a stray temp file
	// but no visible entry, as atomicWrite does on any pre-rename failure.
	s.writeFile = func(path string, _ []byte) error {
		stray := filepath.Join(filepath.Dir(path), ".tmp-half-written.json")
		_ = os.WriteFile(stray, []byte(`{"id":"trunc`), 0o600)
		return errors.New("disk full")
	}

	victim, err := NewEntry("lost", nil, nil, now.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append(victim); err == nil {
		t.Fatal("expected write failure to surface")
	}

	s.writeFile = atomicWrite
	entries, err := s.ListByDate(Date{2024, time.January, 15})
	if err != nil {
		t.Fatalf("log unreadable after failed append: %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "survives" {
		t.Errorf("entries = %v, want the log unchanged", entries)
	}
}

func TestListByDateEmptyDay(t *testing.T) {
	s := newTestStore(t, time.UTC, time.Now().UTC())

	entries, err := s.ListByDate(Date{2020, time.June, 1})
	if err != nil {
		t.Fatalf("ListByDate() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0", len(entries))
	}
}

func TestListByDateSkipsCorruptFiles(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)
	mustAppend(t, s, "good", nil, nil, now)

	bucket := s.bucketDir(Date{2024, time.January, 15})
	if err := os.WriteFile(filepath.Join(bucket, "corrupt.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bucket, "notes.txt"), []byte("ignore me"), 0o600); err != nil {
		t.Fatal(err)
	}

	entries, err := s.ListByDate(Date{2024, time.January, 15})
	if err != nil {
		t.Fatalf("ListByDate() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "good" {
		t.Errorf("entries = %v, want only the valid entry", entries)
	}
}

func TestBucketingHonorsConfiguredZone(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatal(err)
	}

	// 03:30 UTC on the 16th is 21:30 on the 15th in Chicago.
	instant := time.Date(2024, 1, 16, 3, 30, 0, 0, time.UTC)
	s := newTestStore(t, chicago, instant)
	mustAppend(t, s, "late evening", nil, nil, instant)

	entries, err := s.ListByDate(Date{2024, time.January, 15})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entry not bucketed on the Chicago date, got %d", len(entries))
	}

	wrongDay, err := s.ListByDate(Date{2024, time.January, 16})
	if err != nil {
		t.Fatal(err)
	}
	if len(wrongDay) != 0 {
		t.Errorf("entry appeared on the UTC date too")
	}
}

func TestListRecent(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	total := 5
	for i := 0; i < total; i++ {
		mustAppend(t, s, "entry", nil, nil, now.Add(time.Duration(-i)*6*time.Hour))
	}

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "fewer than total", n: 3, wantLen: 3},
		{name: "exactly total", n: 5, wantLen: 5},
		{name: "more than total", n: 10, wantLen: 5},
		{name: "zero", n: 0, wantLen: 0},
		{name: "negative", n: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.ListRecent(tt.n)
			if err != nil {
				t.Fatalf("ListRecent() error = %v", err)
			}
			if len(entries) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(entries), tt.wantLen)
			}
			for i := 1; i < len(entries); i++ {
				prev, cur := entries[i-1], entries[i]
				if cur.CreatedAt.After(prev.CreatedAt) {
					t.Errorf("not descending at %d", i)
				}
				if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID > prev.ID {
					t.Errorf("tie not broken by descending ID at %d", i)
				}
			}
		})
	}
}

func TestListSinceWindow(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	inside := mustAppend(t, s, "inside", nil, nil, now.Add(-47*time.Hour))
	mustAppend(t, s, "outside", nil, nil, now.Add(-49*time.Hour))
	latest := mustAppend(t, s, "latest", nil, nil, now)

	entries, err := s.ListSince(2)
	if err != nil {
		t.Fatalf("ListSince() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].ID != inside.ID || entries[1].ID != latest.ID {
		t.Errorf("entries = [%s %s], want ascending [inside latest]", entries[0].Content, entries[1].Content)
	}
}

func TestListRange(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	mustAppend(t, s, "before", nil, nil, time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))
	mustAppend(t, s, "start day", nil, nil, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC))
	mustAppend(t, s, "end day", nil, nil, time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))
	mustAppend(t, s, "after", nil, nil, time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC))

	entries, err := s.ListRange(Date{2024, time.January, 5}, Date{2024, time.January, 10})
	if err != nil {
		t.Fatalf("ListRange() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 (range is inclusive)", len(entries))
	}
	if entries[0].Content != "start day" || entries[1].Content != "end day" {
		t.Errorf("entries = [%s %s]", entries[0].Content, entries[1].Content)
	}
}

func TestListRangeInverted(t *testing.T) {
	s := newTestStore(t, time.UTC, time.Now().UTC())

	_, err := s.ListRange(Date{2024, time.January, 10}, Date{2024, time.January, 5})
	if err == nil {
		t.Fatal("expected InvalidRangeError")
	}
	var rerr *InvalidRangeError
	if !errors.As(err, &rerr) {
		t.Errorf("error %v is not an InvalidRangeError", err)
	}
}

func TestListAllAscendingAcrossBuckets(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	mustAppend(t, s, "february", nil, nil, time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC))
	mustAppend(t, s, "december", nil, nil, time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC))
	mustAppend(t, s, "march", nil, nil, now)

	entries, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	want := []string{"december", "february", "march"}
	for i, w := range want {
		if entries[i].Content != w {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Content, w)
		}
	}
}

func TestSameSecondOrderingIsDeterministic(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, time.UTC, now)

	a := mustAppend(t, s, "alpha", nil, nil, now)
	b := mustAppend(t, s, "beta", nil, nil, now)

	entries, err := s.ListByDate(Date{2024, time.January, 15})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}

	// Equal timestamps break the tie by ID ascending.
	wantFirst := a.ID
	if b.ID < a.ID {
		wantFirst = b.ID
	}
	if entries[0].ID != wantFirst {
		t.Errorf("first = %s, want smaller ID %s", entries[0].ID, wantFirst)
	}
}
