package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks that every property of the config is known to the schema and that required fields are set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
			Required   []string                   `json:"required"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.Defs["Config"]
	if !ok {
		return fmt.Errorf("schema has no Config definition")
	}
	for key := range configMap {
		if _, ok := root.Properties[key]; !ok {
			return fmt.Errorf("config section %q is not in schema", key)
		}
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check auth config
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	// check llm config if enabled
	if cfg.LLM.Enabled() {
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
		if cfg.LLM.Timeout == 0 {
			return fmt.Errorf("llm.timeout is required when llm is enabled")
		}
	}

	// check import config when extraction is on
	if cfg.Import.Extract && cfg.Import.Timeout == 0 {
		return fmt.Errorf("import.timeout is required when extraction is enabled")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
