package domain

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

// SettingType is the declared type of a stored setting value
type SettingType string

// supported setting types
const (
	SettingText    SettingType = "text"
	SettingBoolean SettingType = "boolean"
	SettingNumber  SettingType = "number"
	SettingJSON    SettingType = "json"
)

// ParseSettingType converts a type name to SettingType, empty means text
func ParseSettingType(s string) (SettingType, error) {
	switch t := SettingType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return SettingText, nil
	case SettingText, SettingBoolean, SettingNumber, SettingJSON:
		return t, nil
	default:
		return "", Invalid("type", fmt.Sprintf("unsupported setting type %q", s))
	}
}

// SettingValue is a decoded setting value tagged with its type.
// Only the field matching Type is meaningful.
type SettingValue struct {
	Type   SettingType
	Text   *string // nil for NULL text
	Bool   bool
	Number float64
	JSON   any
}

// TextValue makes a text setting value
func TextValue(s string) SettingValue { return SettingValue{Type: SettingText, Text: &s} }

// BoolValue makes a boolean setting value
func BoolValue(b bool) SettingValue { return SettingValue{Type: SettingBoolean, Bool: b} }

// NumberValue makes a number setting value
func NumberValue(f float64) SettingValue { return SettingValue{Type: SettingNumber, Number: f} }

// JSONValue makes a json setting value
func JSONValue(v any) SettingValue { return SettingValue{Type: SettingJSON, JSON: v} }

// Any returns the plain Go value: string or nil, bool, float64 or decoded JSON
func (v SettingValue) Any() any {
	switch v.Type {
	case SettingBoolean:
		return v.Bool
	case SettingNumber:
		return v.Number
	case SettingJSON:
		return v.JSON
	default:
		if v.Text == nil {
			return nil
		}
		return *v.Text
	}
}

// MarshalJSON renders the decoded value
func (v SettingValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// DecodeSetting converts stored text to a typed value. It never fails,
// values which don't match the declared type degrade to the type's zero value.
func DecodeSetting(t SettingType, stored sql.NullString) SettingValue {
	switch t {
	case SettingJSON:
		if !stored.Valid || strings.TrimSpace(stored.String) == "" {
			return JSONValue(map[string]any{})
		}
		var res any
		if err := json.Unmarshal([]byte(stored.String), &res); err != nil {
			log.Printf("[DEBUG] setting json value %q not decodable, using empty object: %v", stored.String, err)
			return JSONValue(map[string]any{})
		}
		return JSONValue(res)
	case SettingBoolean:
		return BoolValue(stored.Valid && strings.EqualFold(strings.TrimSpace(stored.String), "true"))
	case SettingNumber:
		if !stored.Valid {
			return NumberValue(0)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(stored.String), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			log.Printf("[DEBUG] setting number value %q not decodable, using 0", stored.String)
			return NumberValue(0)
		}
		return NumberValue(f)
	default:
		if !stored.Valid {
			return SettingValue{Type: SettingText}
		}
		return TextValue(stored.String)
	}
}

// EncodeSetting converts a raw input value (as decoded from a JSON request body) to
// the stored text form for the given type. Nil input for text stores NULL.
func EncodeSetting(t SettingType, raw any) (sql.NullString, error) {
	switch t {
	case SettingJSON:
		if s, ok := raw.(string); ok && json.Valid([]byte(s)) {
			return sql.NullString{String: s, Valid: true}, nil
		}
		data, err := json.Marshal(raw)
		if err != nil {
			return sql.NullString{}, Invalid("value", fmt.Sprintf("can't encode json: %v", err))
		}
		return sql.NullString{String: string(data), Valid: true}, nil
	case SettingBoolean:
		return sql.NullString{String: strconv.FormatBool(truthy(raw)), Valid: true}, nil
	case SettingNumber:
		f, err := toFloat(raw)
		if err != nil {
			return sql.NullString{}, err
		}
		return sql.NullString{String: strconv.FormatFloat(f, 'f', -1, 64), Valid: true}, nil
	default:
		if raw == nil {
			return sql.NullString{}, nil
		}
		return sql.NullString{String: fmt.Sprint(raw), Valid: true}, nil
	}
}

// Encode converts a typed value back to its stored text form
func (v SettingValue) Encode() (sql.NullString, error) {
	return EncodeSetting(v.Type, v.Any())
}

func truthy(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

func toFloat(raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, Invalid("value", fmt.Sprintf("%q is not a number", v.String()))
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, Invalid("value", fmt.Sprintf("%q is not a number", v))
		}
		f = parsed
	default:
		return 0, Invalid("value", fmt.Sprintf("%v is not a number", raw))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Invalid("value", "number must be finite")
	}
	return f, nil
}

// SettingRecord is a setting as stored, value kept as raw text
type SettingRecord struct {
	Key         string      `json:"key"`
	Value       *string     `json:"value"`
	Type        SettingType `json:"type"`
	Description *string     `json:"description"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Decode converts the stored record to a typed Setting
func (r SettingRecord) Decode() Setting {
	stored := sql.NullString{}
	if r.Value != nil {
		stored = sql.NullString{String: *r.Value, Valid: true}
	}
	return Setting{
		Key:         r.Key,
		Value:       DecodeSetting(r.Type, stored),
		Type:        r.Type,
		Description: r.Description,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Setting represents a typed key-value site setting
type Setting struct {
	Key         string       `json:"key"`
	Value       SettingValue `json:"value"`
	Type        SettingType  `json:"type"`
	Description *string      `json:"description"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// SettingUpdate is an upsert request for a single setting.
// Description is only written when not nil.
type SettingUpdate struct {
	Key         string
	Type        SettingType
	Value       any
	Description *string
}

// SettingPatch changes an existing setting and keeps its stored type.
// Value is applied only when SetValue is true, Description only when not nil.
type SettingPatch struct {
	Value       any
	SetValue    bool
	Description *string
}
