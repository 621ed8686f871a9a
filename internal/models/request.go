package models

import "strings"

// TranscriptFormat tells the normalizer how to read VideoRequest.Transcript.
type TranscriptFormat string

const (
	FormatPlain   TranscriptFormat = "plain"
	FormatChunked TranscriptFormat = "chunked"
)

// ParseTranscriptFormat maps the free-text wire value onto a known format.
// Unknown values fall back to plain.
func ParseTranscriptFormat(s string) TranscriptFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chunks", "chunked", "chunk":
		return FormatChunked
	default:
		return FormatPlain
	}
}

// TimestampsMode selects between manual, automatic or no chapters.
type TimestampsMode string

const (
	ModeAutomatic TimestampsMode = "automatic"
	ModeManual    TimestampsMode = "manual"
	ModeNone      TimestampsMode = "none"
)

// ParseTimestampsMode accepts the English and French spellings used by the web form.
func ParseTimestampsMode(s string) (TimestampsMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "automatic", "automatique", "auto":
		return ModeAutomatic, true
	case "manual", "manuel":
		return ModeManual, true
	case "none", "aucun", "off":
		return ModeNone, true
	default:
		return "", false
	}
}

// VideoRequest is the wire contract of POST /generate.
type VideoRequest struct {
	VideoType        string              `json:"video_type"`
	VideoURL         string              `json:"video_url"`
	DescriptionTone  string              `json:"description_tone"`
	OptionalKeywords string              `json:"optional_keywords"`
	TranscriptFormat string              `json:"transcript_format"`
	Transcript       string              `json:"transcript"`
	Languages        []string            `json:"languages"`
	Translation      string              `json:"translation"`
	Hashtags         string              `json:"hashtags"`
	TimestampsMode   string              `json:"timestamps_mode"`
	ManualTimestamps string              `json:"manual_timestamps"`
	UsefulLinks      []map[string]string `json:"useful_links"`
}

// TranslationTargets returns the languages to translate into, in request order.
// No translation is requested when Translation is empty.
func (r VideoRequest) TranslationTargets() []string {
	if strings.TrimSpace(r.Translation) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var targets []string
	for _, lang := range append([]string{r.Translation}, r.Languages...) {
		lang = strings.TrimSpace(lang)
		key := strings.ToLower(lang)
		if lang == "" || seen[key] {
			continue
		}
		seen[key] = true
		targets = append(targets, lang)
	}
	return targets
}

// PrimaryLanguage is the language the description body is written in.
func (r VideoRequest) PrimaryLanguage() string {
	for _, lang := range r.Languages {
		if lang = strings.TrimSpace(lang); lang != "" {
			return lang
		}
	}
	return ""
}
