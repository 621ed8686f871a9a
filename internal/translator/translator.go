package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
	"github.com/nguyentantai21042004/desc-flow/internal/transcript"
)

// Translate issues one backend call per target language, concurrently.
// A language whose call fails or times out is left out of the result and
// reported as a warning; it never affects the other languages.
func (t *implTranslator) Translate(ctx context.Context, segments []models.TranscriptSegment, targets []string) (models.TranslatedBodies, []string) {
	if len(targets) == 0 || len(segments) == 0 {
		return nil, nil
	}

	text := transcript.Text(segments)
	results := make([]string, len(targets))
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, lang := range targets {
		wg.Add(1)
		go func(i int, lang string) {
			defer wg.Done()
			results[i], errs[i] = t.translateOne(ctx, text, lang)
		}(i, lang)
	}
	wg.Wait()

	var (
		bodies   models.TranslatedBodies
		warnings []string
	)
	for i, lang := range targets {
		if errs[i] != nil {
			t.logger.Warn(ctx, "Translation to %s skipped: %v", lang, errs[i])
			warnings = append(warnings, fmt.Sprintf("translation %s: %v", lang, errs[i]))
			continue
		}
		bodies = append(bodies, models.TranslatedBody{Language: lang, Text: results[i]})
	}

	t.logger.Debug(ctx, "Translated transcript into %d/%d languages", len(bodies), len(targets))
	return bodies, warnings
}

func (t *implTranslator) translateOne(ctx context.Context, text, lang string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	out, err := t.backend.Translate(ctx, text, lang)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty translation")
	}
	return out, nil
}
