package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"google.golang.org/genai"
)

type geminiGenerator struct {
	clients     []*genai.Client
	mu          sync.Mutex
	currentKey  int
	model       string
	temperature float32
	logger      logger.Logger
}

func (g *geminiGenerator) name() string { return "gemini" }

// generate sends the prompt to Gemini and returns the reply text.
// Rotates API keys on 429 / quota errors.
func (g *geminiGenerator) generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](g.temperature),
	}
	if wantJSON {
		cfg.ResponseMIMEType = "application/json"
	}

	var lastErr error
	for range len(g.clients) {
		idx := g.key()

		result, err := g.clients[idx].Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiGenerator) key() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey
}

// rotateKey moves past the key at idx unless another request already did.
func (g *geminiGenerator) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.clients)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
