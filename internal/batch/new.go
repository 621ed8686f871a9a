package batch

import (
	"github.com/nguyentantai21042004/desc-flow/internal/config"
	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"github.com/nguyentantai21042004/desc-flow/internal/pipeline"
)

type implRunner struct {
	paths    config.PathsConfig
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates a new Runner instance
func New(paths config.PathsConfig, p pipeline.Pipeline, log logger.Logger) Runner {
	return &implRunner{
		paths:    paths,
		pipeline: p,
		logger:   log,
	}
}
