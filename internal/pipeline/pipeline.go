package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/desc-flow/internal/hashtags"
	"github.com/nguyentantai21042004/desc-flow/internal/models"
	"github.com/nguyentantai21042004/desc-flow/internal/timestamps"
	"github.com/nguyentantai21042004/desc-flow/internal/transcript"
	"github.com/nguyentantai21042004/desc-flow/internal/videoinfo"
)

// Generate validates the request, runs the independent stages concurrently
// and joins their outputs in the synthesizer. Only validation and generation
// failures are returned; every other stage degrades to an empty result.
func (p *implPipeline) Generate(ctx context.Context, req models.VideoRequest) (models.GeneratedDescription, error) {
	startTime := time.Now()

	v, err := validate(req)
	if err != nil {
		p.logger.Warn(ctx, "Rejected request: %v", err)
		return models.GeneratedDescription{}, err
	}

	segments, warnings := transcript.Normalize(req.Transcript, v.format)
	p.logger.Debug(ctx, "Normalized transcript into %d segments", len(segments))

	var (
		bodies     models.TranslatedBodies
		chapters   []models.Chapter
		tags       hashtags.Result
		info       videoinfo.Info
		trWarnings []string
		tsWarnings []string
		infoErr    error
	)

	// Stages degrade on their own failures. Only the caller's cancellation
	// fails the group, which stops the stages still in flight.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bodies, trWarnings = p.translator.Translate(gctx, segments, req.TranslationTargets())
		return ctx.Err()
	})
	g.Go(func() error {
		chapters, tsWarnings = timestamps.Resolve(v.mode, req.ManualTimestamps, segments, p.opts.Chapters)
		return nil
	})
	g.Go(func() error {
		tags = hashtags.Integrate(req.OptionalKeywords, req.Hashtags, req.DescriptionTone, p.opts.MaxHashtags)
		return nil
	})
	g.Go(func() error {
		info, infoErr = p.lookup(gctx, req.VideoURL)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		p.logger.Warn(ctx, "Request abandoned: %v", err)
		return models.GeneratedDescription{}, fmt.Errorf("generate: %w", err)
	}

	warnings = append(warnings, trWarnings...)
	warnings = append(warnings, tsWarnings...)
	warnings = append(warnings, tags.Warnings...)
	if infoErr != nil {
		p.logger.Warn(ctx, "Video lookup skipped: %v", infoErr)
		warnings = append(warnings, fmt.Sprintf("video lookup: %v", infoErr))
	}

	// Manual chapters are the user's own and are kept as given.
	if v.mode == models.ModeAutomatic {
		if clamped := timestamps.ClampToDuration(chapters, info.Duration); len(clamped) < len(chapters) {
			warnings = append(warnings, fmt.Sprintf("%d chapter(s) past the end of the video dropped", len(chapters)-len(clamped)))
			chapters = clamped
		}
	}

	language := req.PrimaryLanguage()
	if language == "" {
		language = info.Language
	}

	desc, err := p.synthesizer.Synthesize(ctx, models.SynthesisContext{
		VideoType:     req.VideoType,
		VideoURL:      req.VideoURL,
		VideoTitle:    info.Title,
		ChannelTitle:  info.ChannelTitle,
		Tone:          req.DescriptionTone,
		Language:      language,
		Transcript:    transcript.TimedText(segments),
		KeywordPhrase: tags.KeywordPhrase,
		Hashtags:      tags.Hashtags,
		Chapters:      chapters,
		Links:         v.links,
	})
	if err != nil {
		p.logger.Error(ctx, "Generation failed: %v", err)
		return models.GeneratedDescription{}, err
	}

	desc.TranslatedBodies = bodies
	desc.Warnings = warnings
	fillEmpty(&desc)

	p.logger.Info(ctx, "Description generated in %s: %d chapters, %d hashtags, %d links, %d translations, %d warnings",
		time.Since(startTime).Round(time.Millisecond), len(desc.Timestamps), len(desc.Hashtags),
		len(desc.Links), len(desc.TranslatedBodies), len(desc.Warnings))

	return desc, nil
}

// lookup asks the video info provider for metadata, bounded by the lookup timeout.
func (p *implPipeline) lookup(ctx context.Context, videoURL string) (videoinfo.Info, error) {
	if p.videoInfo == nil || videoURL == "" {
		return videoinfo.Info{}, nil
	}

	if p.opts.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.LookupTimeout)
		defer cancel()
	}

	info, err := p.videoInfo.Lookup(ctx, videoURL)
	if errors.Is(err, videoinfo.ErrNoVideoID) {
		return videoinfo.Info{}, nil
	}
	return info, err
}

// fillEmpty swaps nil slices for empty ones so the JSON response always carries arrays.
func fillEmpty(d *models.GeneratedDescription) {
	if d.Hashtags == nil {
		d.Hashtags = []string{}
	}
	if d.Timestamps == nil {
		d.Timestamps = []models.Chapter{}
	}
	if d.Links == nil {
		d.Links = []models.LinkEntry{}
	}
}
