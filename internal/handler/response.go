package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/insider-one/telert-api/internal/domain"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// Detail messages
const (
	detailNotConfigured = "No messaging providers configured. Configure providers using environment variables."
	detailInternal      = "Internal Server Error"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(data)
}

// JSONError writes an error response
func JSONError(w http.ResponseWriter, status int, detail any) {
	JSON(w, status, ErrorResponse{Detail: detail})
}

// HandleError maps domain errors to HTTP responses. Notifier failures are
// checked first so that whatever they wrap always surfaces as a 500.
func HandleError(w http.ResponseWriter, err error) {
	var sendErr domain.SendError
	if errors.As(err, &sendErr) {
		JSONError(w, http.StatusInternalServerError, sendErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		JSONError(w, http.StatusServiceUnavailable, detailNotConfigured)

	default:
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			JSONError(w, http.StatusUnprocessableEntity, []domain.ValidationError{validationErr})
			return
		}

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			JSONError(w, http.StatusUnprocessableEntity, validationErrs.Errors)
			return
		}

		JSONError(w, http.StatusInternalServerError, detailInternal)
	}
}

// DecodeJSON decodes JSON request body
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return domain.NewValidationError("body", "request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationErr
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}

	// the body must hold exactly one JSON value
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "unexpected data after JSON body")
	}

	return nil
}
