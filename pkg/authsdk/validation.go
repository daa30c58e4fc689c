package authsdk

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Password bounds. bcrypt ignores anything past 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Validate checks the login request. Returns nil when valid.
func (r LoginRequest) Validate() map[string]string {
	r.Email = strings.TrimSpace(r.Email)
	return fieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	))
}

// Validate checks the registration request. Returns nil when valid.
func (r CreateUserRequest) Validate() map[string]string {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	return fieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Age, validation.Required, is.Digit, validation.Length(1, 3)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(MinPasswordLength, MaxPasswordLength)),
	))
}

// Validate checks the patch. Absent fields are fine, present ones must not
// be blank.
func (r UpdateUserRequest) Validate() map[string]string {
	return fieldErrors(validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Age, validation.NilOrNotEmpty, is.Digit, validation.Length(1, 3)),
	))
}

// fieldErrors flattens ozzo's error tree into field -> message.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		if ferr != nil {
			out[field] = ferr.Error()
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
