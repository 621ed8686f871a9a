package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid gemini config",
			config: Config{
				Gemini: GeminiConfig{APIKeys: []string{"key"}},
			},
			wantErr: false,
		},
		{
			name: "valid cohere config",
			config: Config{
				LLM:    LLMConfig{Provider: "Cohere"},
				Cohere: CohereConfig{APIKey: "key"},
			},
			wantErr: false,
		},
		{
			name:    "missing gemini key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "missing cohere key",
			config: Config{
				LLM: LLMConfig{Provider: "cohere"},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				LLM: LLMConfig{Provider: "openai"},
			},
			wantErr: true,
		},
		{
			name: "drop folder without output",
			config: Config{
				Gemini: GeminiConfig{APIKeys: []string{"key"}},
				Paths:  PathsConfig{Input: "data/input"},
			},
			wantErr: true,
		},
		{
			name: "temperature out of range",
			config: Config{
				Gemini: GeminiConfig{APIKeys: []string{"key"}},
				LLM:    LLMConfig{Temperature: 3},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Gemini: GeminiConfig{APIKeys: []string{"key"}}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.LLM.Provider != ProviderGemini {
		t.Errorf("Provider = %v, want %v", cfg.LLM.Provider, ProviderGemini)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":8000")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-2.5-flash")
	}
	if cfg.Pipeline.MinChapterGap != 30*time.Second {
		t.Errorf("MinChapterGap = %v, want %v", cfg.Pipeline.MinChapterGap, 30*time.Second)
	}
	if cfg.Pipeline.MaxHashtags != 15 {
		t.Errorf("MaxHashtags = %v, want %v", cfg.Pipeline.MaxHashtags, 15)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "key-1, key-2,")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("PORT", "9000")

	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  cors_origins: ["http://localhost:3000"]

llm:
  provider: "gemini"
  generate_timeout: 45s

gemini:
  model: "gemini-2.5-pro"

pipeline:
  min_chapter_gap: 1m
  max_chapters: 8

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "key-2" {
		t.Errorf("APIKeys = %v, want [key-1 key-2]", cfg.Gemini.APIKeys)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-2.5-pro")
	}
	if cfg.LLM.GenerateTimeout != 45*time.Second {
		t.Errorf("GenerateTimeout = %v, want %v", cfg.LLM.GenerateTimeout, 45*time.Second)
	}
	if cfg.Pipeline.MinChapterGap != time.Minute {
		t.Errorf("MinChapterGap = %v, want %v", cfg.Pipeline.MinChapterGap, time.Minute)
	}
	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("YouTube.APIKey = %v, want %v", cfg.YouTube.APIKey, "yt-key")
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":9000")
	}
	if cfg.Server.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
