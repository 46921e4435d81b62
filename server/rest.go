package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/umputun/newsdesk/pkg/domain"
)

// internalErrMsg is sent instead of details of unexpected failures
const internalErrMsg = "internal error"

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderErr maps domain errors to status codes. Unknown errors are logged
// and reported without details.
func renderErr(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		conflict   *domain.ConflictError
	)
	switch {
	case errors.As(err, &notFound):
		renderError(w, r, notFound, http.StatusNotFound)
	case errors.As(err, &validation):
		renderError(w, r, validation, http.StatusBadRequest)
	case errors.As(err, &conflict):
		renderError(w, r, conflict, http.StatusConflict)
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, domain.ErrNotFound, http.StatusNotFound)
	case errors.Is(err, domain.ErrValidation):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnauthorized):
		renderError(w, r, err, http.StatusUnauthorized)
	case errors.Is(err, domain.ErrConflict):
		renderError(w, r, domain.ErrConflict, http.StatusConflict)
	default:
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New(internalErrMsg), http.StatusInternalServerError)
	}
}

// message is a plain confirmation response
type message struct {
	Message string `json:"message"`
}

// decodeJSON reads a JSON request body into v, unknown fields are rejected
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("", "No input data provided")
		}
		return domain.Invalid("", fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// queryInt returns an integer query parameter, def when missing or not a number
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	res, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return res
}

// queryBool returns a boolean query parameter, def when missing
func queryBool(r *http.Request, name string, def bool) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// pathID parses a numeric path parameter
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(name, fmt.Sprintf("invalid id %q", r.PathValue(name)))
	}
	return id, nil
}

// paged is a page of any listing with its metadata
type paged struct {
	Total       int `json:"total"`
	TotalPages  int `json:"pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}

func newPaged(total, page, perPage int) paged {
	return paged{Total: total, TotalPages: domain.TotalPages(total, perPage), CurrentPage: page, PerPage: perPage}
}
