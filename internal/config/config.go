package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	LLM         LLMConfig         `yaml:"llm"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Cohere      CohereConfig      `yaml:"cohere"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
}

type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	CORSOrigins []string      `yaml:"cors_origins"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// PathsConfig drives the drop folder. Leaving Input empty disables it.
type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LLMConfig struct {
	Provider         string        `yaml:"provider"`
	Temperature      float32       `yaml:"temperature"`
	TranslateTimeout time.Duration `yaml:"translate_timeout"`
	GenerateTimeout  time.Duration `yaml:"generate_timeout"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"`
}

type CohereConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"`
}

type YouTubeConfig struct {
	APIKey  string        `yaml:"-"`
	Timeout time.Duration `yaml:"timeout"`
}

type PipelineConfig struct {
	MinChapterGap     time.Duration `yaml:"min_chapter_gap"`
	MaxChapters       int           `yaml:"max_chapters"`
	ChapterLabelWords int           `yaml:"chapter_label_words"`
	MaxHashtags       int           `yaml:"max_hashtags"`
}

const (
	ProviderGemini = "gemini"
	ProviderCohere = "cohere"
)

// Load reads the YAML file at path, overlays secrets from the environment
// (and an optional .env file) and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		c.Gemini.APIKeys = splitList(v)
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKeys = []string{strings.TrimSpace(v)}
	}
	if v := os.Getenv("COHERE_API_KEY"); v != "" {
		c.Cohere.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.YouTube.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = strings.TrimSpace(v)
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + strings.TrimSpace(v)
	}
}

func (c *Config) Validate() error {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}

	switch c.LLM.Provider {
	case ProviderGemini:
		if len(c.Gemini.APIKeys) == 0 {
			return fmt.Errorf("gemini api key is required (GEMINI_API_KEYS)")
		}
	case ProviderCohere:
		if c.Cohere.APIKey == "" {
			return fmt.Errorf("cohere api key is required (COHERE_API_KEY)")
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}

	if c.Paths.Input != "" && c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required when paths.input is set")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Paths.Input != "" && c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.TranslateTimeout == 0 {
		c.LLM.TranslateTimeout = 20 * time.Second
	}
	if c.LLM.GenerateTimeout == 0 {
		c.LLM.GenerateTimeout = 60 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Cohere.Model == "" {
		c.Cohere.Model = "command-r-plus"
	}
	if c.YouTube.Timeout == 0 {
		c.YouTube.Timeout = 5 * time.Second
	}
	if c.Pipeline.MinChapterGap == 0 {
		c.Pipeline.MinChapterGap = 30 * time.Second
	}
	if c.Pipeline.MaxChapters == 0 {
		c.Pipeline.MaxChapters = 12
	}
	if c.Pipeline.ChapterLabelWords == 0 {
		c.Pipeline.ChapterLabelWords = 6
	}
	if c.Pipeline.MaxHashtags == 0 {
		c.Pipeline.MaxHashtags = 15
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
