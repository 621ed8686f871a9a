package synthesizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// sections is the JSON shape the description prompt asks the model for.
type sections struct {
	Title        string `json:"title"`
	Resume       string `json:"resume"`
	CallToAction string `json:"call_to_action"`
	AboutChannel string `json:"about_channel"`
}

func (s sections) empty() bool {
	return s.Title == "" && s.Resume == "" && s.CallToAction == "" && s.AboutChannel == ""
}

// Synthesize calls the generation backend once and assembles the description.
// The model only writes prose; chapters, links, keywords and hashtags are
// appended verbatim so they survive whatever the model returns.
func (s *implSynthesizer) Synthesize(ctx context.Context, sc models.SynthesisContext) (models.GeneratedDescription, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.backend.Synthesize(callCtx, sc)
	if err != nil {
		return models.GeneratedDescription{}, fmt.Errorf("%w: %v", models.ErrGeneration, err)
	}

	sec := parseSections(raw)
	if sec.empty() {
		return models.GeneratedDescription{}, fmt.Errorf("%w: empty response from model", models.ErrGeneration)
	}
	s.logger.Debug(ctx, "Generated description %q (%d chars of prose)", sec.Title, len(sec.Resume))

	return models.GeneratedDescription{
		Body:         render(sec, sc),
		Hashtags:     sc.Hashtags,
		Timestamps:   sc.Chapters,
		Title:        sec.Title,
		Resume:       sec.Resume,
		Links:        sc.Links,
		Keywords:     sc.KeywordPhrase,
		CallToAction: sec.CallToAction,
		AboutChannel: sec.AboutChannel,
	}, nil
}

// parseSections reads the model's JSON reply. Code fences and text around the
// object are tolerated; a reply that is not JSON at all becomes the resume.
// A JSON reply with only empty fields stays empty.
func parseSections(raw string) sections {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sections{}
	}

	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && end > start {
		var sec sections
		if err := json.Unmarshal([]byte(raw[start:end+1]), &sec); err == nil {
			sec.Title = strings.TrimSpace(sec.Title)
			sec.Resume = strings.TrimSpace(sec.Resume)
			sec.CallToAction = strings.TrimSpace(sec.CallToAction)
			sec.AboutChannel = strings.TrimSpace(sec.AboutChannel)
			return sec
		}
	}

	return sections{Resume: stripFences(raw)}
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
