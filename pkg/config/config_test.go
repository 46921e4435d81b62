package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://news.example.com
  site_name: Daily Profit

database:
  dsn: "file:test.db"
  max_open_conns: 3

auth:
  jwt_secret: "0123456789abcdef0123"
  token_ttl: 2h

content:
  excerpt_length: 150

import:
  extract: true
  author_email: bot@example.com

llm:
  endpoint: https://api.openai.com/v1
  model: gpt-4o-mini
  temperature: 0.5
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://news.example.com", cfg.Server.BaseURL)
		assert.Equal(t, "Daily Profit", cfg.Server.SiteName)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, 3, cfg.Database.MaxOpenConns)
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 150, cfg.Content.ExcerptLength)
		assert.True(t, cfg.Import.Extract)
		assert.Equal(t, "bot@example.com", cfg.Import.AuthorEmail)
		assert.True(t, cfg.LLM.Enabled())
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "auth:\n  jwt_secret: 0123456789abcdef\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Equal(t, 1000, cfg.Server.Throttle)

		// check other defaults
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 200, cfg.Content.ExcerptLength)
		assert.Equal(t, 200, cfg.Content.WordsPerMinute)
		assert.Equal(t, 100, cfg.RSS.MaxItems)
		assert.Equal(t, "imported", cfg.Import.Category)
		assert.False(t, cfg.LLM.Enabled())
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("NEWSDESK_TEST_SECRET", "secret-from-env-123")
		cfg, err := Load(writeConfig(t, "auth:\n  jwt_secret: ${NEWSDESK_TEST_SECRET}\n"))
		require.NoError(t, err)
		assert.Equal(t, "secret-from-env-123", cfg.Auth.JWTSecret)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "auth.jwt_secret is required")
	})

	t.Run("llm without model", func(t *testing.T) {
		_, err := Load(writeConfig(t, "auth:\n  jwt_secret: 0123456789abcdef\nllm:\n  endpoint: http://localhost:11434/v1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.model is required")
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Auth: AuthConfig{JWTSecret: "0123456789abcdef"}}
		setDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "short secret", modify: func(c *Config) { c.Auth.JWTSecret = "short" }, errMsg: "at least 16 characters"},
		{name: "short ttl", modify: func(c *Config) { c.Auth.TokenTTL = time.Second }, errMsg: "auth.token_ttl"},
		{name: "temperature", modify: func(c *Config) { c.LLM.Temperature = 3 }, errMsg: "llm.temperature"},
		{name: "server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond }, errMsg: "server timeout"},
		{name: "import timeout", modify: func(c *Config) { c.Import.Timeout = time.Millisecond }, errMsg: "import timeout"},
		{name: "excerpt", modify: func(c *Config) { c.Content.ExcerptLength = -1 }, errMsg: "content.excerpt_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Listen:  ":9090",
			Timeout: 45 * time.Second,
		},
	}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}
