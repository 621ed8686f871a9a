package pipeline

import (
	"strings"

	"github.com/nguyentantai21042004/desc-flow/internal/links"
	"github.com/nguyentantai21042004/desc-flow/internal/models"
	"github.com/nguyentantai21042004/desc-flow/internal/timestamps"
)

type validated struct {
	links  []models.LinkEntry
	mode   models.TimestampsMode
	format models.TranscriptFormat
}

// validate rejects a request before any stage runs.
func validate(req models.VideoRequest) (validated, error) {
	entries, err := links.Format(req.UsefulLinks)
	if err != nil {
		return validated{}, err
	}

	mode, ok := models.ParseTimestampsMode(req.TimestampsMode)
	if !ok {
		return validated{}, models.NewValidationError("timestamps_mode", "must be automatic, manual or none, got %q", req.TimestampsMode)
	}

	if mode == models.ModeManual {
		if strings.TrimSpace(req.ManualTimestamps) == "" {
			return validated{}, models.NewValidationError("manual_timestamps", "required when timestamps_mode is manual")
		}
		if chapters, _ := timestamps.ParseManual(req.ManualTimestamps); len(chapters) == 0 {
			return validated{}, models.NewValidationError("manual_timestamps", "no line could be parsed as \"offset label\"")
		}
	}

	if strings.TrimSpace(req.Translation) != "" && req.PrimaryLanguage() == "" {
		return validated{}, models.NewValidationError("languages", "at least one language is required when translation is set")
	}

	return validated{
		links:  entries,
		mode:   mode,
		format: models.ParseTranscriptFormat(req.TranscriptFormat),
	}, nil
}
