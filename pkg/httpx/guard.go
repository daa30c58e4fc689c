package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Authenticate decides whether r carries a valid bearer token. It never
// touches the database: the claims are trusted until the token expires.
func Authenticate(r *http.Request, v jwtx.Verifier) (Identity, bool) {
	raw, ok := BearerToken(r)
	if !ok {
		return Identity{}, false
	}

	claims, err := v.Verify(raw)
	if err != nil {
		slogx.FromContext(r.Context()).Debug("jwt verify failed", "err", err)
		return Identity{}, false
	}

	return Identity{UserID: claims.UserID}, true
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, raw, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// AuthnMiddleware rejects requests without a valid bearer token and injects
// the caller's identity (and a user-scoped logger) into the context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := Authenticate(r, v)
			if !ok {
				writeBearerError(w)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = slogx.WithUserID(ctx, id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteEnvelope(w, Fail(http.StatusUnauthorized, "unauthorized"))
}
