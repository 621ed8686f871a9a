package translator

import (
	"context"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// Backend is the outbound translation capability.
type Backend interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Translator renders a transcript into every requested language.
type Translator interface {
	Translate(ctx context.Context, segments []models.TranscriptSegment, targets []string) (models.TranslatedBodies, []string)
}
