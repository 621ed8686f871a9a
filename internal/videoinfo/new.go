package videoinfo

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type youtubeProvider struct {
	service *youtube.Service
	logger  logger.Logger
}

type disabledProvider struct{}

// New creates a Provider backed by the YouTube Data API. Without an API key
// the lookup is disabled and returns empty info.
func New(ctx context.Context, apiKey string, log logger.Logger) (Provider, error) {
	if apiKey == "" {
		return disabledProvider{}, nil
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &youtubeProvider{
		service: service,
		logger:  log,
	}, nil
}

func (disabledProvider) Lookup(context.Context, string) (Info, error) {
	return Info{}, nil
}
