package export

import (
	"fmt"
	"strings"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// timestampLayout is the heading timestamp format for the text formats.
// Second precision with explicit offset; lossy formats stay unambiguous.
const timestampLayout = "2006-01-02 15:04:05 -0700"

// formatMarkdownEntries renders entries as plain markdown: one timestamp
// heading per entry, the body as a paragraph, media as a bulleted list,
// tags as a trailing line.
func formatMarkdownEntries(entries []*journal.Entry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeMarkdownEntry(&b, entry)
	}
	return b.String()
}

// formatMarkdownDaily renders a daily document with a date title above the
// entry sections. generated_at is deliberately omitted so consolidating an
// unchanged day twice yields identical bytes.
func formatMarkdownDaily(doc *journal.DailyDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Date)
	for i, entry := range doc.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeMarkdownEntry(&b, entry)
	}
	return b.String()
}

// writeMarkdownEntry writes one entry section.
func writeMarkdownEntry(b *strings.Builder, entry *journal.Entry) {
	fmt.Fprintf(b, "## %s\n\n", entry.CreatedAt.Format(timestampLayout))
	b.WriteString(entry.Content)
	b.WriteString("\n")

	if len(entry.Media) > 0 {
		b.WriteString("\nMedia:\n\n")
		for _, m := range entry.Media {
			fmt.Fprintf(b, "- %s\n", m)
		}
	}

	if len(entry.Tags) > 0 {
		fmt.Fprintf(b, "\nTags: %s\n", strings.Join(entry.Tags, ", "))
	}
}
