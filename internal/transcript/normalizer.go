package transcript

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

const chunkDelimiter = "||"

// Normalize turns a raw transcript into ordered segments.
// Malformed chunks are dropped and described in the returned warnings; it never fails.
func Normalize(raw string, format models.TranscriptFormat) ([]models.TranscriptSegment, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if format != models.FormatChunked {
		return []models.TranscriptSegment{{Text: raw}}, nil
	}

	var blocks []string
	if strings.Contains(raw, chunkDelimiter) {
		blocks = strings.Split(raw, chunkDelimiter)
	} else {
		blocks = strings.Split(raw, "\n")
	}

	var (
		segments []models.TranscriptSegment
		warnings []string
		last     time.Duration
		haveLast bool
	)

	for i, block := range blocks {
		if strings.TrimSpace(block) == "" {
			warnings = append(warnings, fmt.Sprintf("transcript chunk %d: empty, dropped", i+1))
			continue
		}

		offset, kind, text := splitMarker(block)
		if text == "" {
			warnings = append(warnings, fmt.Sprintf("transcript chunk %d: no text after time marker, dropped", i+1))
			continue
		}

		seg := models.TranscriptSegment{Text: text}
		switch kind {
		case validMarker:
			if haveLast && offset < last {
				warnings = append(warnings, fmt.Sprintf("transcript chunk %d: offset %s goes backwards, ignored", i+1, models.FormatOffset(offset)))
				break
			}
			start := offset
			seg.Start = &start
			last, haveLast = offset, true
		case invalidMarker:
			warnings = append(warnings, fmt.Sprintf("transcript chunk %d: unparseable time marker", i+1))
		}

		segments = append(segments, seg)
	}

	return segments, warnings
}

// Text joins segment text into one transcript string.
func Text(segments []models.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, "\n")
}

// TimedText renders segments with their offsets, for prompts that benefit from timing.
func TimedText(segments []models.TranscriptSegment) string {
	var sb strings.Builder
	for _, s := range segments {
		if s.Start != nil {
			sb.WriteString("[" + models.FormatOffset(*s.Start) + "] ")
		}
		sb.WriteString(s.Text)
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}
