package links

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// Format validates raw useful links and converts them to entries.
// Every element must hold exactly one label -> URL pair; anything else
// rejects the whole request. URLs are passed through untouched.
func Format(raw []map[string]string) ([]models.LinkEntry, error) {
	entries := make([]models.LinkEntry, 0, len(raw))
	for i, m := range raw {
		if len(m) != 1 {
			return nil, models.NewValidationError(
				fmt.Sprintf("useful_links[%d]", i),
				"entry must contain exactly one key, got %d", len(m),
			)
		}
		for label, url := range m {
			entries = append(entries, models.LinkEntry{Label: label, URL: url})
		}
	}
	return entries, nil
}

// Render lists links one per line as "label: url".
func Render(entries []models.LinkEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Label+": "+e.URL)
	}
	return strings.Join(lines, "\n")
}
