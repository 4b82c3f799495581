package export

import (
	"fmt"
	"strings"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// formatObsidianEntries renders entries as Obsidian-flavored markdown:
// media as ![[path]] embeds and tags as #tag tokens.
func formatObsidianEntries(entries []*journal.Entry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeObsidianEntry(&b, entry)
	}
	return b.String()
}

// formatObsidianDaily renders a daily document in the Obsidian dialect.
func formatObsidianDaily(doc *journal.DailyDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Date)
	for i, entry := range doc.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeObsidianEntry(&b, entry)
	}
	return b.String()
}

// writeObsidianEntry writes one entry section in the Obsidian dialect.
func writeObsidianEntry(b *strings.Builder, entry *journal.Entry) {
	fmt.Fprintf(b, "## %s\n\n", entry.CreatedAt.Format(timestampLayout))
	b.WriteString(entry.Content)
	b.WriteString("\n")

	if len(entry.Media) > 0 {
		b.WriteString("\n")
		for _, m := range entry.Media {
			fmt.Fprintf(b, "![[%s]]\n", m)
		}
	}

	if len(entry.Tags) > 0 {
		tokens := make([]string, len(entry.Tags))
		for i, tag := range entry.Tags {
			tokens[i] = "#" + tag
		}
		fmt.Fprintf(b, "\n%s\n", strings.Join(tokens, " "))
	}
}
