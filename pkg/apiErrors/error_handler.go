package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes surfaced in the report API's error body.
const (
	// ErrEnvVarsMissing marks a request refused before any network call
	// because required credentials or identifiers are absent.
	ErrEnvVarsMissing = "ENV_VARS_MISSING"

	// ErrInternal covers every failure without a more specific provider code.
	ErrInternal = "INTERNAL_ERROR"
)

// FetchFailedMessage is the fixed error message of the report endpoint.
const FetchFailedMessage = "Failed to fetch employee data"

var httpStatusMap = map[string]int{
	ErrEnvVarsMissing: http.StatusInternalServerError,
	ErrInternal:       http.StatusInternalServerError,
}

// APIError is the standard error body.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error body. Unknown codes (including
// provider-supplied ones) map to 500.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteMethodNotAllowed writes the fixed 405 body required by the endpoint
// contract.
func WriteMethodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	json.NewEncoder(w).Encode(APIError{Error: "Method not allowed"})
}
