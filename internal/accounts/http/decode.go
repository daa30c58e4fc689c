package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

const (
	msgInvalidBody      = "invalid request body"
	msgValidationFailed = "validation failed"
)

// decodeBody reads a JSON body into dst. On failure it writes the 400
// envelope itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.WriteEnvelope(w, httpx.Fail(http.StatusRequestEntityTooLarge, "request body too large"))
			return false
		}
		httpx.WriteEnvelope(w, httpx.Fail(http.StatusBadRequest, msgInvalidBody))
		return false
	}
	return true
}

// validate writes a 400 envelope listing field errors when there are any.
func validate(w http.ResponseWriter, errs map[string]string) bool {
	if len(errs) == 0 {
		return true
	}
	httpx.WriteEnvelope(w, httpx.Invalid(msgValidationFailed, errs))
	return false
}
