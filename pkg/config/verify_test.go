package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				Server:   ServerConfig{Listen: ":8080", Timeout: 30 * time.Second, BaseURL: "http://localhost:8080"},
				Database: DatabaseConfig{DSN: "file:test.db"},
				Auth:     AuthConfig{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour},
				LLM:      LLMConfig{Endpoint: "http://localhost:8080", APIKey: "test-key", Model: "test-model", Timeout: time.Second},
			},
			wantErr: false,
		},
		{
			name: "missing listen",
			config: &Config{
				Server: ServerConfig{Timeout: 30 * time.Second},
				Auth:   AuthConfig{JWTSecret: "0123456789abcdef"},
			},
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name: "llm enabled without timeout",
			config: &Config{
				Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
				Auth:   AuthConfig{JWTSecret: "0123456789abcdef"},
				LLM:    LLMConfig{Endpoint: "http://localhost:8080", Model: "test-model"},
			},
			wantErr: true,
			errMsg:  "llm.timeout is required when llm is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid minimal config",
			config: &Config{
				Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
				Auth:   AuthConfig{JWTSecret: "0123456789abcdef"},
			},
		},
		{
			name: "missing jwt secret",
			config: &Config{
				Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
			},
			wantErr: true,
			errMsg:  "auth.jwt_secret is required",
		},
		{
			name: "extraction enabled with missing timeout",
			config: &Config{
				Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
				Auth:   AuthConfig{JWTSecret: "0123456789abcdef"},
				Import: ImportConfig{Extract: true},
			},
			wantErr: true,
			errMsg:  "import.timeout is required when extraction is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequiredFields(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEmbeddedSchemaMatchesConfig(t *testing.T) {
	var schema struct {
		Defs map[string]json.RawMessage `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	for _, def := range []string{"Config", "ServerConfig", "DatabaseConfig", "AuthConfig", "ContentConfig",
		"RSSConfig", "ImportConfig", "LLMConfig"} {
		assert.Contains(t, schema.Defs, def)
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "server")
	assert.Contains(t, schemaStr, "jwt_secret")
}
