package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/config"
	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"github.com/nguyentantai21042004/desc-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/desc-flow/internal/timestamps"
	"github.com/nguyentantai21042004/desc-flow/internal/translator"
	"github.com/nguyentantai21042004/desc-flow/internal/videoinfo"
)

// Options holds the tunables of the pure stages.
type Options struct {
	Chapters      timestamps.Options
	MaxHashtags   int
	LookupTimeout time.Duration
}

// OptionsFromConfig maps the pipeline section of the config onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Chapters: timestamps.Options{
			MinGap:      cfg.Pipeline.MinChapterGap,
			MaxChapters: cfg.Pipeline.MaxChapters,
			LabelWords:  cfg.Pipeline.ChapterLabelWords,
		},
		MaxHashtags:   cfg.Pipeline.MaxHashtags,
		LookupTimeout: cfg.YouTube.Timeout,
	}
}

type implPipeline struct {
	translator  translator.Translator
	synthesizer synthesizer.Synthesizer
	videoInfo   videoinfo.Provider
	opts        Options
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(tr translator.Translator, syn synthesizer.Synthesizer, vi videoinfo.Provider, opts Options, log logger.Logger) Pipeline {
	return &implPipeline{
		translator:  tr,
		synthesizer: syn,
		videoInfo:   vi,
		opts:        opts,
		logger:      log,
	}
}
