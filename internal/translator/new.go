package translator

import (
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/logger"
)

type implTranslator struct {
	backend Backend
	timeout time.Duration
	logger  logger.Logger
}

// New creates a Translator that bounds each backend call by timeout
func New(backend Backend, timeout time.Duration, log logger.Logger) Translator {
	return &implTranslator{
		backend: backend,
		timeout: timeout,
		logger:  log,
	}
}
