// Package service holds the account operations. Every operation returns an
// httpx.Envelope: expected failures become precise envelopes and anything
// unexpected is logged and collapsed into a generic 500.
package service

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// PasswordHasher hashes and checks passwords. cryptox.BcryptHasher is the
// production implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}

// TokenIssuer mints bearer tokens bound to a user id. jwtx.Issuer is the
// production implementation.
type TokenIssuer interface {
	Issue(subjectID int64, ttl time.Duration) (string, error)
}

// Envelope messages.
const (
	MsgUnexpected = "an unexpected error occurred"

	MsgUserNotFound       = "user not found"
	MsgInvalidCredentials = "invalid credentials"
	MsgLoginSuccessful    = "login successful"

	MsgEmailTaken      = "user with this email already exists"
	MsgUserCreated     = "user created successfully"
	MsgUserIDRequired  = "user id is required"
	MsgUserUpdated     = "user updated successfully"
	MsgDeleteFailed    = "user deletion failed"
	MsgUserDeleted     = "user deleted successfully"
	MsgUserFetched     = "user fetched successfully"
	msgUserIDNotFoundF = "user with id %d not found"
)

// internalError logs err with the request logger and returns the generic 500.
func internalError(ctx context.Context, op string, err error) httpx.Envelope {
	slogx.FromContext(ctx).Error(op+" failed", "err", err)
	return httpx.Fail(http.StatusInternalServerError, MsgUnexpected)
}
