// Package export renders journal entries and daily documents into the
// supported output formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// Format identifies an output format.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatObsidian Format = "obsidian"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// UnsupportedFormatError is returned for unrecognized format names.
type UnsupportedFormatError struct {
	Name string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q; use markdown, obsidian, text, or json", e.Name)
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatMarkdown, FormatObsidian, FormatText, FormatJSON:
		return Format(name), nil
	}
	return "", &UnsupportedFormatError{Name: name}
}

// RenderEntries renders a sequence of entries. Deterministic: the same
// entries always produce the same bytes. The json format is lossless;
// the text formats are lossy but stable.
func RenderEntries(format Format, entries []*journal.Entry) (string, error) {
	switch format {
	case FormatMarkdown:
		return formatMarkdownEntries(entries), nil
	case FormatObsidian:
		return formatObsidianEntries(entries), nil
	case FormatText:
		return formatTextEntries(entries), nil
	case FormatJSON:
		return formatJSONEntries(entries)
	}
	return "", &UnsupportedFormatError{Name: string(format)}
}

// RenderDaily renders a consolidated daily document. The text formats
// exclude generated_at so regeneration over an unchanged log is
// byte-identical; the json format carries it for provenance.
func RenderDaily(format Format, doc *journal.DailyDocument) (string, error) {
	switch format {
	case FormatMarkdown:
		return formatMarkdownDaily(doc), nil
	case FormatObsidian:
		return formatObsidianDaily(doc), nil
	case FormatText:
		return formatTextDaily(doc), nil
	case FormatJSON:
		return formatJSONDaily(doc)
	}
	return "", &UnsupportedFormatError{Name: string(format)}
}

// WriteFile writes rendered output to path, creating parent directories
// as needed.
func WriteFile(path string, data string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}
