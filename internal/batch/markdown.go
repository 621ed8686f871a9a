package batch

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// renderMarkdown lays out a generated description as the .md companion of a request.
func renderMarkdown(title string, desc models.GeneratedDescription, at time.Time) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s", title, at.Format("2006-01-02 15:04"), renderBody(desc))
}

// renderBody is everything below the document title.
func renderBody(desc models.GeneratedDescription) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(desc.Body))
	b.WriteString("\n")

	for _, tb := range desc.TranslatedBodies {
		fmt.Fprintf(&b, "\n## Transcript (%s)\n\n%s\n", tb.Language, strings.TrimSpace(tb.Text))
	}

	if len(desc.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range desc.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
