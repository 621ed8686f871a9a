package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// Pipeline generates a description for one request.
type Pipeline interface {
	Generate(ctx context.Context, req models.VideoRequest) (models.GeneratedDescription, error)
}
