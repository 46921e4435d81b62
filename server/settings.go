package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/umputun/newsdesk/pkg/domain"
)

// settingsResponse holds decoded values by key together with the stored records
type settingsResponse struct {
	Settings    map[string]any         `json:"settings"`
	RawSettings []domain.SettingRecord `json:"raw_settings"`
}

// settingRequest is the body of setting creation
type settingRequest struct {
	Key         string  `json:"key"`
	Value       any     `json:"value"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

// settingPatchRequest is the body of setting update, value presence is detected from the raw message
type settingPatchRequest struct {
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description"`
}

// listSettingsHandler returns all settings decoded by their declared types
func (s *Server) listSettingsHandler(w http.ResponseWriter, r *http.Request) {
	values, records, err := s.stores.Settings.List(r.Context())
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, settingsResponse{Settings: values, RawSettings: nonNil(records)})
}

// prefixSettingsHandler returns the stored records of settings sharing a key prefix
func (s *Server) prefixSettingsHandler(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.stores.Settings.ListByPrefix(r.Context(), prefix)
		if err != nil {
			renderErr(w, r, err)
			return
		}
		renderJSON(w, r, http.StatusOK, nonNil(records))
	}
}

func (s *Server) getSettingHandler(w http.ResponseWriter, r *http.Request) {
	setting, err := s.stores.Settings.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, setting)
}

// createSettingHandler stores a setting, replacing the value of an existing key
func (s *Server) createSettingHandler(w http.ResponseWriter, r *http.Request) {
	var req settingRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	key := strings.TrimSpace(req.Key)
	if key == "" {
		renderErr(w, r, domain.Invalid("key", "is required"))
		return
	}
	typ, err := domain.ParseSettingType(req.Type)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	setting, err := s.stores.Settings.Set(r.Context(), domain.SettingUpdate{
		Key: key, Type: typ, Value: req.Value, Description: req.Description})
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, setting)
}

// updateSettingHandler changes value and description of an existing setting, keeping its type
func (s *Server) updateSettingHandler(w http.ResponseWriter, r *http.Request) {
	var req settingPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	patch := domain.SettingPatch{Description: req.Description}
	if len(req.Value) > 0 {
		if err := json.Unmarshal(req.Value, &patch.Value); err != nil {
			renderErr(w, r, domain.Invalid("value", err.Error()))
			return
		}
		patch.SetValue = true
	}
	setting, err := s.stores.Settings.Update(r.Context(), r.PathValue("key"), patch)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, setting)
}

func (s *Server) deleteSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if err := s.stores.Settings.Delete(r.Context(), key); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: fmt.Sprintf("Setting %s deleted successfully", key)})
}
