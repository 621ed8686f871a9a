package timestamps

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
	"github.com/nguyentantai21042004/desc-flow/internal/transcript"
)

// Options tunes automatic chaptering.
type Options struct {
	MinGap      time.Duration
	MaxChapters int
	LabelWords  int
}

var reManualLine = regexp.MustCompile(`^([\[(]?\d+(?::\d+){0,2}(?:\.\d+)?s?[\])]?)\s*(.*)$`)

// Resolve produces chapters from manual input or, in automatic mode, from
// segment offsets. ModeNone yields no chapters.
func Resolve(mode models.TimestampsMode, manual string, segments []models.TranscriptSegment, opts Options) ([]models.Chapter, []string) {
	switch mode {
	case models.ModeManual:
		return ParseManual(manual)
	case models.ModeNone:
		return nil, nil
	default:
		return Auto(segments, opts), nil
	}
}

// ParseManual reads one "offset label" entry per line. Separators between the
// offset and the label (dash, em dash, pipe, colon) are optional. Lines with an
// invalid offset, no label or an offset lower than the previous entry are skipped.
func ParseManual(raw string) ([]models.Chapter, []string) {
	var (
		chapters []models.Chapter
		warnings []string
	)

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := reManualLine.FindStringSubmatch(line)
		if m == nil {
			warnings = append(warnings, fmt.Sprintf("manual timestamp line %d: missing offset", i+1))
			continue
		}

		offset, ok := transcript.ParseOffset(m[1])
		if !ok {
			warnings = append(warnings, fmt.Sprintf("manual timestamp line %d: invalid offset %q", i+1, m[1]))
			continue
		}

		label := transcript.TrimSeparators(m[2])
		if label == "" {
			warnings = append(warnings, fmt.Sprintf("manual timestamp line %d: missing label", i+1))
			continue
		}

		if n := len(chapters); n > 0 && offset < chapters[n-1].Offset {
			warnings = append(warnings, fmt.Sprintf("manual timestamp line %d: offset %s is before the previous entry", i+1, models.FormatOffset(offset)))
			continue
		}

		chapters = append(chapters, models.Chapter{Offset: offset, Label: label})
	}

	return chapters, warnings
}

// Auto groups contiguous timed segments into chapters. A chapter starts at the
// first segment at least MinGap after the current chapter's start, so offsets
// strictly increase and there are never more chapters than timed segments.
func Auto(segments []models.TranscriptSegment, opts Options) []models.Chapter {
	var chapters []models.Chapter

	for _, seg := range segments {
		if seg.Start == nil {
			continue
		}
		offset := *seg.Start

		if n := len(chapters); n > 0 {
			prev := chapters[n-1].Offset
			if offset <= prev || offset-prev < opts.MinGap {
				continue
			}
		}

		chapters = append(chapters, models.Chapter{
			Offset: offset,
			Label:  label(seg.Text, opts.LabelWords, len(chapters)+1),
		})
	}

	if opts.MaxChapters > 0 && len(chapters) > opts.MaxChapters {
		chapters = thin(chapters, opts.MaxChapters)
	}
	return chapters
}

// ClampToDuration drops chapters that start at or after the end of the video.
// A zero duration means unknown and keeps everything.
func ClampToDuration(chapters []models.Chapter, d time.Duration) []models.Chapter {
	if d <= 0 {
		return chapters
	}
	kept := chapters[:0:0]
	for _, c := range chapters {
		if c.Offset < d {
			kept = append(kept, c)
		}
	}
	return kept
}

// thin keeps max chapters spread evenly across the list, always including the first.
func thin(chapters []models.Chapter, max int) []models.Chapter {
	n := len(chapters)
	out := make([]models.Chapter, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, chapters[i*n/max])
	}
	return out
}

func label(text string, words, index int) string {
	fields := strings.Fields(text)
	if words > 0 && len(fields) > words {
		fields = fields[:words]
	}

	l := strings.TrimRightFunc(strings.Join(fields, " "), func(r rune) bool {
		return unicode.IsPunct(r) && r != ')' && r != '?' && r != '!'
	})
	if l == "" {
		return fmt.Sprintf("Chapter %d", index)
	}

	r, size := utf8.DecodeRuneInString(l)
	return string(unicode.ToUpper(r)) + l[size:]
}
