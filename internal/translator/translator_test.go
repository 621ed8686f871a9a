package translator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

type stubBackend struct {
	calls atomic.Int32
	fn    func(ctx context.Context, text, lang string) (string, error)
}

func (s *stubBackend) Translate(ctx context.Context, text, lang string) (string, error) {
	s.calls.Add(1)
	return s.fn(ctx, text, lang)
}

var segments = []models.TranscriptSegment{{Text: "hello"}, {Text: "world"}}

func TestTranslateNoTargets(t *testing.T) {
	b := &stubBackend{fn: func(context.Context, string, string) (string, error) { return "x", nil }}
	tr := New(b, time.Second, logger.NewNop())

	bodies, warnings := tr.Translate(context.Background(), segments, nil)
	assert.Empty(t, bodies)
	assert.Empty(t, warnings)
	assert.Zero(t, b.calls.Load())
}

func TestTranslateEmptyTranscript(t *testing.T) {
	b := &stubBackend{fn: func(context.Context, string, string) (string, error) { return "x", nil }}
	tr := New(b, time.Second, logger.NewNop())

	bodies, warnings := tr.Translate(context.Background(), nil, []string{"fr"})
	assert.Empty(t, bodies)
	assert.Empty(t, warnings)
	assert.Zero(t, b.calls.Load())
}

func TestTranslatePreservesOrder(t *testing.T) {
	b := &stubBackend{fn: func(_ context.Context, text, lang string) (string, error) {
		if lang == "fr" {
			time.Sleep(20 * time.Millisecond)
		}
		return lang + ":" + text, nil
	}}
	tr := New(b, time.Second, logger.NewNop())

	bodies, warnings := tr.Translate(context.Background(), segments, []string{"fr", "en", "de"})
	require.Len(t, bodies, 3)
	assert.Empty(t, warnings)
	assert.Equal(t, "fr", bodies[0].Language)
	assert.Equal(t, "fr:hello\nworld", bodies[0].Text)
	assert.Equal(t, "en", bodies[1].Language)
	assert.Equal(t, "de", bodies[2].Language)
}

func TestTranslatePartialFailure(t *testing.T) {
	b := &stubBackend{fn: func(ctx context.Context, _, lang string) (string, error) {
		switch lang {
		case "es":
			return "", errors.New("quota exceeded")
		case "de":
			<-ctx.Done()
			return "", ctx.Err()
		case "it":
			return "   ", nil
		}
		return "ok-" + lang, nil
	}}
	tr := New(b, 50*time.Millisecond, logger.NewNop())

	bodies, warnings := tr.Translate(context.Background(), segments, []string{"fr", "es", "de", "it", "en"})
	require.Len(t, bodies, 2)
	assert.Equal(t, "fr", bodies[0].Language)
	assert.Equal(t, "en", bodies[1].Language)
	assert.Len(t, warnings, 3)
}
