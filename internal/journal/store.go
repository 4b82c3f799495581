package journal

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Store provides append-only persistence of entries plus date-indexed
// retrieval. Entries live as one immutable JSON file each under
// <dir>/entries/YYYY/MM/DD/; the file set is the log and the directory
// tree is the date index.
type Store struct {
	dir string
	loc *time.Location
	now func() time.Time

	// writeFile is the durable write primitive; replaceable in tests to
	// simulate mid-write failures.
	writeFile func(path string, data []byte) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's clock. Used by tests and by callers that
// need reproducible "now" semantics.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store rooted at dir, interpreting calendar dates in loc.
// A nil loc means the process's local zone.
func NewStore(dir string, loc *time.Location, opts ...Option) *Store {
	if loc == nil {
		loc = time.Local
	}
	s := &Store{
		dir:       dir,
		loc:       loc,
		now:       time.Now,
		writeFile: atomicWrite,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the store's data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Location returns the zone used for calendar-date bucketing and queries.
func (s *Store) Location() *time.Location {
	return s.loc
}

// Now returns the current time in the store's zone.
func (s *Store) Now() time.Time {
	return s.now().In(s.loc)
}

// Append persists a new entry and returns its ID. The write is atomic and
// durable: on any failure the log is unchanged and a StorageError is
// returned. An exclusive advisory lock is held for the duration so
// concurrent CLI invocations never interleave or lose an entry.
func (s *Store) Append(entry *Entry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &StorageError{Op: "create data dir", Path: s.dir, Err: err}
	}

	lock := flock.New(filepath.Join(s.dir, lockFileName))
	if err := lock.Lock(); err != nil {
		return "", &StorageError{Op: "lock journal", Path: lock.Path(), Err: err}
	}
	defer func() { _ = lock.Unlock() }()

	path := s.entryPath(entry)
	if _, err := os.Stat(path); err == nil {
		return "", &StorageError{Op: "append", Path: path, Err: errors.New("entry already exists")}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &StorageError{Op: "create bucket", Path: filepath.Dir(path), Err: err}
	}

	data, err := entry.ToJSON()
	if err != nil {
		return "", &StorageError{Op: "encode entry", Path: path, Err: err}
	}

	if err := s.writeFile(path, data); err != nil {
		return "", &StorageError{Op: "write entry", Path: path, Err: err}
	}

	return entry.ID, nil
}

// ListByDate returns all entries whose creation time falls on the given
// calendar date in the store's zone, ascending. Reads only that date's
// bucket, so cost is independent of total log size.
func (s *Store) ListByDate(d Date) ([]*Entry, error) {
	return s.readBucket(d)
}

// ListRecent returns the n most recently created entries, descending by
// created_at with ID descending as the tie-break. Walks date buckets
// newest-first and stops as soon as n entries are collected.
func (s *Store) ListRecent(n int) ([]*Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	dates, err := s.bucketDates()
	if err != nil {
		return nil, err
	}

	var recent []*Entry
	for i := len(dates) - 1; i >= 0 && len(recent) < n; i-- {
		bucket, err := s.readBucket(dates[i])
		if err != nil {
			return nil, err
		}
		for j := len(bucket) - 1; j >= 0 && len(recent) < n; j-- {
			recent = append(recent, bucket[j])
		}
	}
	return recent, nil
}

// ListSince returns entries created within the trailing days*24h window
// from now, ascending.
func (s *Store) ListSince(days int) ([]*Entry, error) {
	if days <= 0 {
		return nil, nil
	}

	now := s.Now()
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	entries, err := s.listDateSpan(DateOf(cutoff, s.loc), DateOf(now, s.loc))
	if err != nil {
		return nil, err
	}

	var result []*Entry
	for _, entry := range entries {
		if !entry.CreatedAt.Before(cutoff) {
			result = append(result, entry)
		}
	}
	return result, nil
}

// ListRange returns entries created on dates within [from, to] inclusive,
// ascending. Returns an InvalidRangeError when from is after to.
func (s *Store) ListRange(from, to Date) ([]*Entry, error) {
	if from.After(to) {
		return nil, &InvalidRangeError{From: from, To: to}
	}
	return s.listDateSpan(from, to)
}

// ListAll returns the full log, ascending.
func (s *Store) ListAll() ([]*Entry, error) {
	dates, err := s.bucketDates()
	if err != nil {
		return nil, err
	}

	var all []*Entry
	for _, d := range dates {
		bucket, err := s.readBucket(d)
		if err != nil {
			return nil, err
		}
		all = append(all, bucket...)
	}
	return all, nil
}

// listDateSpan reads the buckets for each date in [from, to], ascending.
// Cost is O(days touched), not O(total entries).
func (s *Store) listDateSpan(from, to Date) ([]*Entry, error) {
	var entries []*Entry
	for d := from; !d.After(to); d = d.Next() {
		bucket, err := s.readBucket(d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, bucket...)
	}
	return entries, nil
}
