package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TranscriptSegment is a span of transcript text with an optional start offset.
type TranscriptSegment struct {
	Start *time.Duration
	Text  string
}

// HasOffset reports whether the segment carries a known start offset.
func (s TranscriptSegment) HasOffset() bool {
	return s.Start != nil
}

// LinkEntry is one validated useful link.
type LinkEntry struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Chapter is a labeled point in the video timeline.
type Chapter struct {
	Offset time.Duration
	Label  string
}

// FormatOffset renders d the way YouTube chapter lists expect: MM:SS, or H:MM:SS past an hour.
func FormatOffset(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func (c Chapter) String() string {
	return FormatOffset(c.Offset) + " " + c.Label
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Offset  string  `json:"offset"`
		Seconds float64 `json:"seconds"`
		Label   string  `json:"label"`
	}{
		Offset:  FormatOffset(c.Offset),
		Seconds: c.Offset.Seconds(),
		Label:   c.Label,
	})
}

// TranslatedBody is the transcript rendered in one target language.
type TranslatedBody struct {
	Language string
	Text     string
}

// TranslatedBodies is an ordered language -> text mapping.
// It serialises as a JSON object whose keys keep slice order.
type TranslatedBodies []TranslatedBody

// Get returns the body for lang.
func (t TranslatedBodies) Get(lang string) (string, bool) {
	for _, b := range t {
		if b.Language == lang {
			return b.Text, true
		}
	}
	return "", false
}

func (t TranslatedBodies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(b.Language)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(b.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GeneratedDescription is the response of one generate call.
type GeneratedDescription struct {
	Body             string           `json:"body"`
	Hashtags         []string         `json:"hashtags"`
	Timestamps       []Chapter        `json:"timestamps"`
	TranslatedBodies TranslatedBodies `json:"translated_bodies"`

	Title        string      `json:"title"`
	Resume       string      `json:"resume"`
	Links        []LinkEntry `json:"links"`
	Keywords     string      `json:"keywords"`
	CallToAction string      `json:"call_to_action"`
	AboutChannel string      `json:"about_channel"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// SynthesisContext bundles everything the generation backend is told about a video.
type SynthesisContext struct {
	VideoType     string
	VideoURL      string
	VideoTitle    string
	ChannelTitle  string
	Tone          string
	Language      string
	Transcript    string
	KeywordPhrase string
	Hashtags      []string
	Chapters      []Chapter
	Links         []LinkEntry
}
