package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	Storage     StorageConfig `toml:"storage"`
	News        NewsConfig    `toml:"news"`
	Stocks      StocksConfig  `toml:"stocks"`
	Claude      ClaudeConfig  `toml:"claude"`
	Gemini      GeminiConfig  `toml:"gemini"`
	LLM         LLMConfig     `toml:"llm"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"`
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

// NewsConfig controls the RSS aggregation feeding the dashboard.
type NewsConfig struct {
	Feeds    []string `toml:"feeds"`                           // RSS/Atom feed URLs; empty falls back to the built-in seed set
	Limit    int      `toml:"limit" validate:"gte=1"`          // Stories served per feed payload
	Schedule string   `toml:"schedule" validate:"required"`    // Cron schedule for refresh
	Language string   `toml:"language" validate:"oneof=th en"` // Preferred summary language for enrichment
}

// StocksConfig controls the quote snapshot behind the ticker.
type StocksConfig struct {
	Symbols  []string `toml:"symbols"`                      // EODHD symbols, TICKER.EXCHANGE format
	Schedule string   `toml:"schedule" validate:"required"` // Cron schedule for refresh
	APIKey   string   `toml:"api_key"`                      // EODHD API key
	BaseURL  string   `toml:"base_url"`                     // Override for tests; empty uses the EODHD default
}

// ClaudeConfig contains Anthropic Claude API configuration for AI services
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`       // default: "claude-haiku-3-5-20241022"
	MaxTokens   int     `toml:"max_tokens"`  // default: 1024
	Timeout     string  `toml:"timeout"`     // duration string, default: "2m"
	Temperature float32 `toml:"temperature"` // default: 0.2
}

// GeminiConfig contains Google Gemini API configuration for AI services
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`   // default: "gemini-2.5-flash"
	Timeout     string  `toml:"timeout"` // duration string, default: "2m"
	Temperature float32 `toml:"temperature"`
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
)

// LLMConfig contains unified configuration for all AI providers
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider" validate:"oneof=claude gemini"`
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in finflow.toml; technical parameters
// are hardcoded here.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/finflow",
			},
		},
		News: NewsConfig{
			Limit:    20,
			Schedule: "*/15 * * * *",
			Language: "th",
		},
		Stocks: StocksConfig{
			Symbols:  []string{"AAPL.US", "MSFT.US", "GOOGL.US", "NVDA.US", "TSLA.US"},
			Schedule: "*/5 * * * *",
		},
		Claude: ClaudeConfig{
			Model:       "claude-haiku-3-5-20241022",
			MaxTokens:   1024,
			Timeout:     "2m",
			Temperature: 0.2,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.5-flash",
			Timeout:     "2m",
			Temperature: 0.2,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderClaude,
		},
	}
}

// LoadFromFiles loads configuration with precedence:
// defaults -> file1 -> file2 -> ... -> environment variables.
// Later files override earlier ones.
func LoadFromFiles(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies FINFLOW_* environment variables on top of file
// configuration. Provider API keys also honor their vendor-standard names.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FINFLOW_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FINFLOW_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FINFLOW_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FINFLOW_STORAGE_PATH"); v != "" {
		cfg.Storage.Badger.Path = v
	}
	if v := os.Getenv("FINFLOW_NEWS_FEEDS"); v != "" {
		cfg.News.Feeds = splitList(v)
	}
	if v := os.Getenv("FINFLOW_STOCK_SYMBOLS"); v != "" {
		cfg.Stocks.Symbols = splitList(v)
	}
	if v := os.Getenv("FINFLOW_EODHD_API_KEY"); v != "" {
		cfg.Stocks.APIKey = v
	}
	if v := firstEnv("FINFLOW_CLAUDE_API_KEY", "ANTHROPIC_API_KEY"); v != "" {
		cfg.Claude.APIKey = v
	}
	if v := firstEnv("FINFLOW_GEMINI_API_KEY", "GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("FINFLOW_LLM_PROVIDER"); v != "" {
		cfg.LLM.DefaultProvider = LLMProvider(v)
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ApplyFlagOverrides applies command-line flag values (highest priority)
func ApplyFlagOverrides(cfg *Config, port int, host string) {
	if port != 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
