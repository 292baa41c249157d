// internal/app/system/webjson/webjson.go
package webjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

// errorBody is the JSON error envelope every handler returns.
type errorBody struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps a domain error to its HTTP status and writes the JSON
// error envelope. Unrecognized errors become 500s and are logged.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("internal error", zap.Error(err))
		Write(w, status, errorBody{Error: "internal error"})
		return
	}
	Write(w, status, errorBody{Error: err.Error()})
}

// StatusFor returns the HTTP status code for a domain error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, faults.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, faults.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, faults.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, faults.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, faults.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads the request body into dst, rejecting unknown fields and
// trailing garbage.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return faults.Validation("body", "invalid JSON")
	}
	if dec.More() {
		return faults.Validation("body", "unexpected trailing data")
	}
	return nil
}
