package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// entriesDirName is the subdirectory of the data dir holding the entry log.
const entriesDirName = "entries"

// lockFileName is the flock target guarding appends.
const lockFileName = "journal.lock"

// StorageError is returned when the durable log cannot be read or written.
// The log is guaranteed unchanged from before the failing call.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// bucketDir returns the entries/YYYY/MM/DD directory for a date.
// The directory tree is the date index: bucket placement is a pure function
// of the entry's creation date, so the index is rebuilt by re-walking the log.
func (s *Store) bucketDir(d Date) string {
	return filepath.Join(s.dir, entriesDirName,
		fmt.Sprintf("%04d", d.Year), fmt.Sprintf("%02d", d.Month), fmt.Sprintf("%02d", d.Day))
}

// entryPath returns the log file path for an entry.
func (s *Store) entryPath(e *Entry) string {
	return filepath.Join(s.bucketDir(DateOf(e.CreatedAt, s.loc)), e.ID+".json")
}

// readBucket reads all entries in one date bucket, sorted ascending by
// created_at with ID as the tie-break. A missing bucket is an empty day.
// Files that fail to parse are skipped; old readers stay tolerant of
// newer or foreign files.
func (s *Store) readBucket(d Date) ([]*Entry, error) {
	dir := s.bucketDir(d)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "read bucket", Path: dir, Err: err}
	}

	var entries []*Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(dir, de.Name()))
		if readErr != nil {
			return nil, &StorageError{Op: "read entry", Path: filepath.Join(dir, de.Name()), Err: readErr}
		}
		entry, parseErr := FromJSON(data)
		if parseErr != nil || entry.ID == "" {
			continue
		}
		entries = append(entries, entry)
	}

	SortEntriesAscending(entries)
	return entries, nil
}

// bucketDates returns every date that has a bucket directory, ascending.
func (s *Store) bucketDates() ([]Date, error) {
	root := filepath.Join(s.dir, entriesDirName)
	years, err := readNumericDirs(root)
	if err != nil {
		return nil, err
	}

	var dates []Date
	for _, year := range years {
		months, err := readNumericDirs(filepath.Join(root, fmt.Sprintf("%04d", year)))
		if err != nil {
			return nil, err
		}
		for _, month := range months {
			days, err := readNumericDirs(filepath.Join(root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)))
			if err != nil {
				return nil, err
			}
			for _, day := range days {
				dates = append(dates, Date{Year: year, Month: time.Month(month), Day: day})
			}
		}
	}
	return dates, nil
}

// readNumericDirs lists numeric subdirectory names, sorted ascending.
// A missing parent directory yields an empty list.
func readNumericDirs(dir string) ([]int, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "read index", Path: dir, Err: err}
	}

	var nums []int
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		n, convErr := strconv.Atoi(de.Name())
		if convErr != nil {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums, nil
}

// atomicWrite durably writes data to path using write-to-temp-then-rename.
// The file is synced before the rename so a completed append survives a
// crash; a failed append leaves no visible file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
