package synthesizer

import (
	"context"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// Backend is the outbound generation capability. It returns the model's raw reply.
type Backend interface {
	Synthesize(ctx context.Context, sc models.SynthesisContext) (string, error)
}

// Synthesizer turns the merged pipeline outputs into the final description.
type Synthesizer interface {
	Synthesize(ctx context.Context, sc models.SynthesisContext) (models.GeneratedDescription, error)
}
