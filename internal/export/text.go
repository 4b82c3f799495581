package export

import (
	"fmt"
	"strings"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// formatTextEntries renders entries as plain text: a timestamp prefix line
// followed by the body, with no markup.
func formatTextEntries(entries []*journal.Entry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeTextEntry(&b, entry)
	}
	return b.String()
}

// formatTextDaily renders a daily document as plain text.
func formatTextDaily(doc *journal.DailyDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", doc.Date)
	for i, entry := range doc.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeTextEntry(&b, entry)
	}
	return b.String()
}

// writeTextEntry writes one plain-text entry block.
func writeTextEntry(b *strings.Builder, entry *journal.Entry) {
	fmt.Fprintf(b, "%s\n", entry.CreatedAt.Format(timestampLayout))
	b.WriteString(entry.Content)
	b.WriteString("\n")

	for _, m := range entry.Media {
		fmt.Fprintf(b, "media: %s\n", m)
	}
	if len(entry.Tags) > 0 {
		fmt.Fprintf(b, "tags: %s\n", strings.Join(entry.Tags, ", "))
	}
}
