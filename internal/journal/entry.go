// Package journal provides the entry schema, validation, and persistence
// for the microlog journal.
package journal

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SchemaVersion is the current schema version for microlog entries.
const SchemaVersion = "microlog.entry/v1"

// idPrefix is the prefix for all entry IDs.
const idPrefix = "ml_"

// idDigestLength is the number of hex characters of the content digest
// included in an entry ID.
const idDigestLength = 12

// Entry represents one immutable journal entry.
// Entries are never mutated after persistence; corrections are new entries.
type Entry struct {
	Schema    string    `json:"schema"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	Media     []string  `json:"media,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
}

// ValidationError is returned when entry construction or validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// AsValidationError checks if err is a ValidationError and extracts it.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

// NewEntry constructs an Entry from content, media references, and tags,
// assigning the ID and creation timestamp. Tags are normalized (trimmed,
// lowercased, deduplicated); media paths are kept verbatim and in order.
// Returns a ValidationError for empty content or malformed tags.
func NewEntry(content string, media, tags []string, createdAt time.Time) (*Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Message: "entry content must not be empty"}
	}

	normalized, err := NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	cleanMedia := make([]string, 0, len(media))
	for _, m := range media {
		if m = strings.TrimSpace(m); m != "" {
			cleanMedia = append(cleanMedia, m)
		}
	}
	if len(cleanMedia) == 0 {
		cleanMedia = nil
	}

	return &Entry{
		Schema:    SchemaVersion,
		ID:        GenerateID(createdAt, content, cleanMedia, normalized),
		CreatedAt: createdAt,
		Content:   content,
		Media:     cleanMedia,
		Tags:      normalized,
	}, nil
}

// NormalizeTags trims, lowercases, and deduplicates tags, preserving first
// occurrence order. Rejects tags containing newlines, path separators, or
// the characters used by the export formats.
func NormalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(tags))
	var normalized []string
	var bad []string

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if strings.ContainsAny(tag, "\n\r\t/\\#,") {
			bad = append(bad, tag)
			continue
		}
		if !seen[tag] {
			seen[tag] = true
			normalized = append(normalized, tag)
		}
	}

	if len(bad) > 0 {
		return nil, &ValidationError{
			Fields:  bad,
			Message: "tags must not contain newlines, separators, or format characters",
		}
	}
	return normalized, nil
}

// GenerateID creates a content-derived entry ID.
// Format: ml_<ISO8601-timestamp>_<digest>
// The timestamp is formatted in UTC with second precision; the digest is the
// first 12 hex characters of a SHA-256 over the creation instant (nanosecond
// precision), content, media, and tags. Entries created at the same second
// still sort deterministically by ID.
func GenerateID(createdAt time.Time, content string, media, tags []string) string {
	h := sha256.New()

	var nanos [8]byte
	binary.BigEndian.PutUint64(nanos[:], uint64(createdAt.UnixNano()))
	h.Write(nanos[:])

	h.Write([]byte(content))
	for _, m := range media {
		h.Write([]byte{0})
		h.Write([]byte(m))
	}
	for _, t := range tags {
		h.Write([]byte{1})
		h.Write([]byte(t))
	}

	digest := hex.EncodeToString(h.Sum(nil))[:idDigestLength]
	return idPrefix + createdAt.UTC().Format(time.RFC3339) + "_" + digest
}

// Validate checks that all required fields are present.
func (e *Entry) Validate() error {
	var missing []string
	if e.Schema == "" {
		missing = append(missing, "schema")
	}
	if e.ID == "" {
		missing = append(missing, "id")
	}
	if e.CreatedAt.IsZero() {
		missing = append(missing, "created_at")
	}
	if strings.TrimSpace(e.Content) == "" {
		missing = append(missing, "content")
	}

	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "missing required fields",
		}
	}
	return nil
}

// ToJSON serializes the entry to JSON. The created_at timestamp keeps its
// explicit zone offset so the calendar date is unambiguous.
func (e *Entry) ToJSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("serializing entry to JSON: %w", err)
	}
	return data, nil
}

// FromJSON deserializes an entry from JSON. Unknown fields are ignored so
// newer writers stay readable.
func FromJSON(data []byte) (*Entry, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parsing entry JSON: %w", err)
	}
	return &entry, nil
}
