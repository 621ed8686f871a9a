package llm

import (
	"context"
	"fmt"
	"strings"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

type cohereGenerator struct {
	client      *cohereclient.Client
	model       string
	temperature float64
}

func (c *cohereGenerator) name() string { return "cohere" }

// generate uses the Cohere chat endpoint. Cohere has no JSON response switch
// on this endpoint, the prompt itself asks for JSON.
func (c *cohereGenerator) generate(ctx context.Context, prompt string, _ bool) (string, error) {
	model := c.model
	temperature := c.temperature

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:     prompt,
		Model:       &model,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("empty response from Cohere")
	}
	return resp.Text, nil
}
