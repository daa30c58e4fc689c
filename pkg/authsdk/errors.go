package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success envelope returned by the service.
type APIError struct {
	// StatusCode is the envelope (and HTTP) status.
	StatusCode int

	// Message is the envelope message, e.g. "user not found".
	Message string

	// Fields holds per-field validation messages on 400 responses.
	Fields map[string]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("accounts: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports a 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsConflict reports a 409.
func (e *APIError) IsConflict() bool { return e.StatusCode == http.StatusConflict }

// IsUnauthorized reports a 401.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// parseErrorResponse turns a failed response body into an *APIError. Bodies
// that are not envelopes still yield an error carrying the HTTP status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env struct {
		StatusCode int               `json:"statusCode"`
		Message    string            `json:"message"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Message == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	code := env.StatusCode
	if code == 0 {
		code = resp.StatusCode
	}
	return &APIError{StatusCode: code, Message: env.Message, Fields: env.Data}
}
