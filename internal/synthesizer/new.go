package synthesizer

import (
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/logger"
)

type implSynthesizer struct {
	backend Backend
	timeout time.Duration
	logger  logger.Logger
}

// New creates a Synthesizer whose backend call is bounded by timeout
func New(backend Backend, timeout time.Duration, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		backend: backend,
		timeout: timeout,
		logger:  log,
	}
}
