package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"github.com/nguyentantai21042004/desc-flow/internal/models"
	"github.com/nguyentantai21042004/desc-flow/internal/pipeline"
	"github.com/nguyentantai21042004/desc-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/desc-flow/internal/timestamps"
	"github.com/nguyentantai21042004/desc-flow/internal/translator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePipeline struct {
	desc  models.GeneratedDescription
	err   error
	calls int
	got   models.VideoRequest
}

func (f *fakePipeline) Generate(_ context.Context, req models.VideoRequest) (models.GeneratedDescription, error) {
	f.calls++
	f.got = req
	return f.desc, f.err
}

type echoBackend struct{}

func (echoBackend) Translate(_ context.Context, text, lang string) (string, error) {
	return lang + ": " + text, nil
}

func (echoBackend) Synthesize(_ context.Context, sc models.SynthesisContext) (string, error) {
	return `{"title":"Title","resume":"Resume","call_to_action":"Subscribe","about_channel":"About"}`, nil
}

func realRouter() *gin.Engine {
	log := logger.NewNop()
	p := pipeline.New(
		translator.New(echoBackend{}, time.Second, log),
		synthesizer.New(echoBackend{}, time.Second, log),
		nil,
		pipeline.Options{
			Chapters:    timestamps.Options{MinGap: 30 * time.Second, MaxChapters: 12, LabelWords: 6},
			MaxHashtags: 15,
		},
		log,
	)
	return NewRouter(New(p, log), []string{"*"})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(realRouter(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestGenerateEndToEnd(t *testing.T) {
	body := `{
		"video_type": "Tutoriel",
		"transcript_format": "CHUNKS",
		"transcript": "00:00 Intro|| 01:30 Setup",
		"timestamps_mode": "automatic",
		"translation": "fr",
		"languages": ["fr", "en"],
		"hashtags": "#golang",
		"useful_links": [{"Github": "https://github.com/"}]
	}`

	w := do(realRouter(), http.MethodPost, "/generate", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Body       string   `json:"body"`
		Hashtags   []string `json:"hashtags"`
		Timestamps []struct {
			Offset  string  `json:"offset"`
			Seconds float64 `json:"seconds"`
			Label   string  `json:"label"`
		} `json:"timestamps"`
		TranslatedBodies map[string]string  `json:"translated_bodies"`
		Links            []models.LinkEntry `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Body)
	require.Len(t, resp.Links, 1)
	assert.Equal(t, "Github", resp.Links[0].Label)
	require.NotEmpty(t, resp.Timestamps)
	assert.Equal(t, "00:00", resp.Timestamps[0].Offset)
	assert.Zero(t, resp.Timestamps[0].Seconds)
	assert.Contains(t, resp.TranslatedBodies, "fr")
	assert.Contains(t, resp.TranslatedBodies, "en")
	assert.Equal(t, []string{"#golang"}, resp.Hashtags)
}

func TestGenerateRejectsEmptyLinkDict(t *testing.T) {
	w := do(realRouter(), http.MethodPost, "/generate", `{"transcript":"hello","useful_links":[{}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "useful_links[0]", resp["field"])
	assert.NotEmpty(t, resp["error"])
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		calls  int
	}{
		{"malformed json", `{"transcript":`, nil, http.StatusBadRequest, 0},
		{"validation", `{}`, models.NewValidationError("languages", "required"), http.StatusUnprocessableEntity, 1},
		{"generation", `{}`, fmt.Errorf("%w: model down", models.ErrGeneration), http.StatusBadGateway, 1},
		{"unexpected", `{}`, context.Canceled, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := &fakePipeline{err: tt.err}
			r := NewRouter(New(fp, logger.NewNop()), nil)

			w := do(r, http.MethodPost, "/generate", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.calls, fp.calls)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	fp := &fakePipeline{}
	r := NewRouter(New(fp, logger.NewNop()), []string{"https://example.com"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"https://example.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowOrigins)
}
