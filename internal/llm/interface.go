package llm

import (
	"context"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// Client is the shared handle to the text generation service. It serves both
// the translator and the synthesizer and is safe for concurrent use.
type Client interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
	Synthesize(ctx context.Context, sc models.SynthesisContext) (string, error)
}

// generator is one provider's raw prompt -> text call.
type generator interface {
	generate(ctx context.Context, prompt string, wantJSON bool) (string, error)
	name() string
}
