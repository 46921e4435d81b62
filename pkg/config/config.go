package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Auth     AuthConfig     `yaml:"auth" json:"auth" jsonschema:"description=Authentication configuration"`
	Content  ContentConfig  `yaml:"content" json:"content" jsonschema:"description=Article content processing"`
	RSS      RSSConfig      `yaml:"rss" json:"rss" jsonschema:"description=RSS feed configuration"`
	Import   ImportConfig   `yaml:"import" json:"import" jsonschema:"description=Feed import configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=Optional LLM configuration for excerpt summaries"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public site URL used in RSS links and SEO metadata"`
	SiteName string        `yaml:"site_name" json:"site_name" jsonschema:"default=Newsdesk,description=Site name used in RSS and SEO metadata"`
	Throttle int           `yaml:"throttle" json:"throttle" jsonschema:"default=1000,minimum=1,description=Maximum concurrent requests"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdesk.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// AuthConfig holds JWT settings
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret" jsonschema:"required,description=Secret used to sign access tokens (can use environment variable)"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"default=24h,description=Access token lifetime"`
	Issuer    string        `yaml:"issuer" json:"issuer" jsonschema:"default=newsdesk,description=Token issuer"`
}

// ContentConfig controls how article content is processed on write
type ContentConfig struct {
	ExcerptLength  int  `yaml:"excerpt_length" json:"excerpt_length" jsonschema:"default=200,minimum=1,description=Maximum generated excerpt length in characters"`
	WordsPerMinute int  `yaml:"words_per_minute" json:"words_per_minute" jsonschema:"default=200,minimum=1,description=Reading speed used for reading time"`
	AllowIframes   bool `yaml:"allow_iframes" json:"allow_iframes" jsonschema:"default=false,description=Keep iframe embeds in sanitized content"`
}

// RSSConfig holds RSS feed settings
type RSSConfig struct {
	MaxItems    int    `yaml:"max_items" json:"max_items" jsonschema:"default=100,minimum=1,description=Number of articles in the feed"`
	Description string `yaml:"description" json:"description" jsonschema:"description=Channel description"`
	Language    string `yaml:"language" json:"language" jsonschema:"default=en,description=Channel language"`
}

// ImportConfig holds settings for importing articles from external feeds
type ImportConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed and page fetch timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsdesk/1.0,description=User agent for HTTP requests"`
	Extract       bool          `yaml:"extract" json:"extract" jsonschema:"default=false,description=Extract full article text from item links"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum extracted text length to consider valid"`
	MaxItems      int           `yaml:"max_items" json:"max_items" jsonschema:"default=20,minimum=1,description=Maximum items imported per feed"`
	AuthorEmail   string        `yaml:"author_email" json:"author_email" jsonschema:"default=import@newsdesk.local,description=Author assigned to imported articles"`
	Category      string        `yaml:"category" json:"category" jsonschema:"default=imported,description=Category slug assigned to imported articles"`
	Publish       bool          `yaml:"publish" json:"publish" jsonschema:"default=false,description=Publish imported articles immediately"`
}

// LLMConfig holds OpenAI-compatible API settings, summaries are disabled when endpoint is empty
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

// Enabled reports whether the LLM summarizer is configured
func (l LLMConfig) Enabled() bool {
	return l.Endpoint != ""
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}
	if cfg.Server.SiteName == "" {
		cfg.Server.SiteName = "Newsdesk"
	}
	if cfg.Server.Throttle == 0 {
		cfg.Server.Throttle = 1000
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsdesk.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// auth
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "newsdesk"
	}

	// content
	if cfg.Content.ExcerptLength == 0 {
		cfg.Content.ExcerptLength = 200
	}
	if cfg.Content.WordsPerMinute == 0 {
		cfg.Content.WordsPerMinute = 200
	}

	// rss
	if cfg.RSS.MaxItems == 0 {
		cfg.RSS.MaxItems = 100
	}
	if cfg.RSS.Language == "" {
		cfg.RSS.Language = "en"
	}

	// import
	if cfg.Import.Timeout == 0 {
		cfg.Import.Timeout = 30 * time.Second
	}
	if cfg.Import.UserAgent == "" {
		cfg.Import.UserAgent = "Newsdesk/1.0"
	}
	if cfg.Import.MinTextLength == 0 {
		cfg.Import.MinTextLength = 100
	}
	if cfg.Import.MaxItems == 0 {
		cfg.Import.MaxItems = 20
	}
	if cfg.Import.AuthorEmail == "" {
		cfg.Import.AuthorEmail = "import@newsdesk.local"
	}
	if cfg.Import.Category == "" {
		cfg.Import.Category = "imported"
	}

	// llm
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 300
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate auth config
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if len(cfg.Auth.JWTSecret) < 16 {
		return fmt.Errorf("auth.jwt_secret must be at least 16 characters")
	}
	if cfg.Auth.TokenTTL < time.Minute {
		return fmt.Errorf("auth.token_ttl must be at least 1 minute")
	}

	// validate LLM config, only when enabled
	if cfg.LLM.Enabled() && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm.endpoint is set")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	// validate content config
	if cfg.Content.ExcerptLength < 1 {
		return fmt.Errorf("content.excerpt_length must be positive")
	}
	if cfg.Content.WordsPerMinute < 1 {
		return fmt.Errorf("content.words_per_minute must be positive")
	}

	// validate import config
	if cfg.Import.Timeout < time.Second {
		return fmt.Errorf("import timeout must be at least 1 second")
	}
	if cfg.Import.MinTextLength < 0 {
		return fmt.Errorf("import min_text_length must be non-negative")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
