package hashtags

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultMax mirrors YouTube, which ignores every hashtag after the fifteenth.
const DefaultMax = 15

// Result is what the synthesizer weaves into the description.
type Result struct {
	Hashtags      []string
	KeywordPhrase string
	Keywords      []string
	Warnings      []string
}

// Integrate builds the hashtag list from the seed string and, for SEO-oriented
// tones, from the keywords too. Tags are lowercased, prefixed with '#' and
// deduplicated case-insensitively in first-seen order.
func Integrate(keywords, seed, tone string, max int) Result {
	if max <= 0 {
		max = DefaultMax
	}

	kws := splitKeywords(keywords)
	res := Result{
		Keywords:      kws,
		KeywordPhrase: strings.Join(kws, ", "),
	}

	seen := make(map[string]bool)
	add := func(raw string) bool {
		tag := normalize(raw)
		if tag == "" || seen[tag] {
			return true
		}
		if len(res.Hashtags) >= max {
			return false
		}
		seen[tag] = true
		res.Hashtags = append(res.Hashtags, "#"+tag)
		return true
	}

	var dropped []string
	for _, tok := range strings.FieldsFunc(seed, isSeedSeparator) {
		if !add(tok) {
			dropped = append(dropped, "#"+normalize(tok))
		}
	}
	if len(dropped) > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("hashtags: only the first %d are kept, dropped %s", max, strings.Join(dropped, " ")))
	}
	if IsSEOTone(tone) {
		for _, kw := range kws {
			add(kw)
		}
	}

	return res
}

// IsSEOTone reports whether the tone asks for search-optimised output.
func IsSEOTone(tone string) bool {
	return strings.Contains(strings.ToLower(tone), "seo")
}

func splitKeywords(s string) []string {
	sep := func(r rune) bool { return r == ',' || r == ';' || r == '\n' }
	if !strings.ContainsAny(s, ",;\n") {
		sep = unicode.IsSpace
	}

	seen := make(map[string]bool)
	var out []string
	for _, kw := range strings.FieldsFunc(s, sep) {
		kw = strings.Join(strings.Fields(kw), " ")
		key := strings.ToLower(kw)
		if kw == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out
}

// normalize strips everything but letters, digits and underscores and lowercases the rest.
// Multi-word keywords collapse into a single tag.
func normalize(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

func isSeedSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}
