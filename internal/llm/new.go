package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/nguyentantai21042004/desc-flow/internal/config"
	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"google.golang.org/genai"
)

type implClient struct {
	gen    generator
	sem    *semaphore
	logger logger.Logger
}

// New creates the Client for cfg.LLM.Provider. Provider clients are built once
// here and shared by every request.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Client, error) {
	var (
		gen generator
		err error
	)

	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		gen, err = newGemini(ctx, cfg.Gemini.APIKeys, cfg.Gemini.Model, cfg.LLM.Temperature, log)
	case config.ProviderCohere:
		gen = newCohere(cfg.Cohere.APIKey, cfg.Cohere.Model, cfg.LLM.Temperature, cfg.LLM.GenerateTimeout)
	default:
		err = fmt.Errorf("unsupported provider %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.LLM.Provider, err)
	}

	return newClient(gen, cfg.Performance.MaxConcurrent, log), nil
}

func newClient(gen generator, maxConcurrent int, log logger.Logger) *implClient {
	return &implClient{
		gen:    gen,
		sem:    newSemaphore(maxConcurrent),
		logger: log,
	}
}

func newGemini(ctx context.Context, apiKeys []string, model string, temperature float32, log logger.Logger) (*geminiGenerator, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys")
	}

	clients := make([]*genai.Client, 0, len(apiKeys))
	for i, key := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		clients = append(clients, client)
	}

	return &geminiGenerator{
		clients:     clients,
		model:       model,
		temperature: temperature,
		logger:      log,
	}, nil
}

func newCohere(apiKey, model string, temperature float32, timeout time.Duration) *cohereGenerator {
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	return &cohereGenerator{
		client:      client,
		model:       model,
		temperature: float64(temperature),
	}
}
