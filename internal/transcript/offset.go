package transcript

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	reClock   = regexp.MustCompile(`^\d+(?::\d+){1,2}$`)
	reSeconds = regexp.MustCompile(`^\d+(?:\.\d+)?s?$`)
)

// MaxOffset bounds every parsed offset; anything longer is not a video position.
const MaxOffset = 24 * time.Hour

// markerKind classifies the leading token of a chunk.
type markerKind int

const (
	noMarker markerKind = iota
	validMarker
	invalidMarker
)

// ParseOffset reads HH:MM:SS, MM:SS or plain seconds ("90", "90.5", "90s").
// Surrounding brackets or parentheses are ignored. Offsets past MaxOffset are rejected.
func ParseOffset(tok string) (time.Duration, bool) {
	d, kind := parseMarker(tok)
	return d, kind == validMarker
}

func parseMarker(tok string) (time.Duration, markerKind) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimRight(tok, ":-–—|")
	tok = strings.Trim(tok, "[]()")

	switch {
	case reClock.MatchString(tok):
		parts := strings.Split(tok, ":")
		var total int
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return 0, invalidMarker
			}
			// every component after the first is a base-60 digit
			if i > 0 && n >= 60 {
				return 0, invalidMarker
			}
			total = total*60 + n
			if total > int(MaxOffset/time.Second) {
				return 0, invalidMarker
			}
		}
		return time.Duration(total) * time.Second, validMarker

	case reSeconds.MatchString(tok):
		f, err := strconv.ParseFloat(strings.TrimSuffix(tok, "s"), 64)
		if err != nil || f > MaxOffset.Seconds() {
			return 0, invalidMarker
		}
		return time.Duration(f * float64(time.Second)), validMarker

	default:
		return 0, noMarker
	}
}

// splitMarker separates a leading time marker from the text that follows it.
func splitMarker(block string) (time.Duration, markerKind, string) {
	block = strings.TrimSpace(block)
	tok, rest := block, ""
	if i := strings.IndexFunc(block, unicode.IsSpace); i >= 0 {
		tok, rest = block[:i], block[i:]
	}

	d, kind := parseMarker(tok)
	if kind == noMarker {
		return 0, noMarker, block
	}
	return d, kind, TrimSeparators(rest)
}

// TrimSeparators removes the dash/pipe/colon glue people put between an offset and its label.
func TrimSeparators(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "-–—|:"))
}
