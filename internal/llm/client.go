package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// Translate asks the model for a plain-text translation.
func (c *implClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return c.call(ctx, "translate:"+targetLang, buildTranslatePrompt(text, targetLang), false)
}

// Synthesize asks the model for the JSON description sections.
func (c *implClient) Synthesize(ctx context.Context, sc models.SynthesisContext) (string, error) {
	return c.call(ctx, "describe", buildDescriptionPrompt(sc), true)
}

func (c *implClient) call(ctx context.Context, op, prompt string, wantJSON bool) (string, error) {
	if err := c.sem.acquire(ctx); err != nil {
		return "", fmt.Errorf("wait for %s slot: %w", c.gen.name(), err)
	}
	defer c.sem.release()

	start := time.Now()
	out, err := c.gen.generate(ctx, prompt, wantJSON)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", c.gen.name(), op, err)
	}

	c.logger.Debug(ctx, "%s %s done in %s (%d chars)", c.gen.name(), op, time.Since(start).Round(time.Millisecond), len(out))
	return out, nil
}
