package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes issued on login.
const (
	// DefaultAccessTokenTTL is the lifetime of the access token (and its cookie).
	DefaultAccessTokenTTL = 60 * time.Minute

	// DefaultRefreshTokenTTL is the lifetime of the refresh token (and its cookie).
	DefaultRefreshTokenTTL = 24 * time.Hour
)

// Claims are the claims carried by both access and refresh tokens. The user
// id travels twice: as the numeric "id" claim that clients read, and as the
// registered "sub" claim.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric identifier of the authenticated user.
	UserID int64 `json:"id"`
}

// NewClaims builds minimally-correct claims for subject valid from now for ttl.
func NewClaims(subjectID int64, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		UserID: subjectID,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. Two tokens
// minted in the same second for the same user still differ because of it.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateSubject ensures the token names a user and that "id" and "sub"
// agree.
func (c *Claims) ValidateSubject() error {
	if c.UserID <= 0 {
		return ErrInvalidClaim
	}
	if c.Subject != "" && c.Subject != strconv.FormatInt(c.UserID, 10) {
		return ErrInvalidClaim
	}
	return nil
}

// ValidateExpiryAt ensures the token hasn't expired (exp) and isn't before nbf
// at the given instant, allowing leeway for clock skew.
func (c *Claims) ValidateExpiryAt(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
