package export

import (
	"encoding/json"
	"fmt"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// formatJSONEntries renders entries as an indented JSON array carrying every
// entry field. Lossless: ParseEntriesJSON reconstructs the input exactly.
func formatJSONEntries(entries []*journal.Entry) (string, error) {
	if entries == nil {
		entries = []*journal.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding entries to JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// formatJSONDaily renders a daily document as JSON, including generated_at.
func formatJSONDaily(doc *journal.DailyDocument) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding daily document to JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// ParseEntriesJSON parses the output of the json format back into entries.
func ParseEntriesJSON(data []byte) ([]*journal.Entry, error) {
	var entries []*journal.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing entries JSON: %w", err)
	}
	return entries, nil
}
