package httpapi

import (
	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"github.com/nguyentantai21042004/desc-flow/internal/pipeline"
)

// Handler serves the description pipeline over HTTP.
type Handler struct {
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates a new Handler instance
func New(p pipeline.Pipeline, log logger.Logger) *Handler {
	return &Handler{
		pipeline: p,
		logger:   log,
	}
}
