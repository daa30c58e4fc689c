package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// OK builds a successful envelope.
func OK(code int, message string, data any) Envelope {
	return Envelope{Success: true, StatusCode: code, Message: message, Data: data}
}

// Fail builds a failed envelope.
func Fail(code int, message string) Envelope {
	return Envelope{Success: false, StatusCode: code, Message: message}
}

// Invalid builds a 400 envelope whose data maps each bad field to a reason.
func Invalid(message string, fields map[string]string) Envelope {
	return Envelope{Success: false, StatusCode: http.StatusBadRequest, Message: message, Data: fields}
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteEnvelope writes env using its StatusCode as the HTTP status.
func WriteEnvelope(w http.ResponseWriter, env Envelope) {
	code := env.StatusCode
	if code == 0 {
		code = http.StatusInternalServerError
	}
	WriteJSON(w, code, env)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// SetTokenCookie sets an http-only cookie holding a bearer token.
func SetTokenCookie(w http.ResponseWriter, name, value string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
