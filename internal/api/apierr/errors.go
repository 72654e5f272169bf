package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/operator"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidName        = "INVALID_NAME"
	CodeUnknownStage       = "UNKNOWN_STAGE"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeIncomplete         = "INCOMPLETE"
	CodeConfigNotSet       = "CONFIG_NOT_SET"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotReady           = "NOT_READY"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Name must be 2-20 characters"}}
	case errors.Is(err, model.ErrUnknownStage):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStage, "Unknown stage id"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrIncomplete):
		return &httpError{http.StatusConflict, APIError{CodeIncomplete, "Not all stages are complete"}}
	case errors.Is(err, model.ErrConfigNotSet):
		return &httpError{http.StatusNotFound, APIError{CodeConfigNotSet, "Game config has not been set"}}
	case errors.Is(err, model.ErrInvalidConfig):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Invalid game config"}}
	case errors.Is(err, model.ErrStagesNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeNotReady, "Stage definitions not loaded"}}
	case errors.Is(err, model.ErrStorageUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStorageUnavailable, "Storage unavailable"}}

	// Map operator errors
	case errors.Is(err, operator.ErrInvalidKey), errors.Is(err, operator.ErrDisabled):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Operator authentication failed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Operator key required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
