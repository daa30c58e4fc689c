package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type LoginHandler struct {
	AuthService  *service.AuthService
	CookieSecure bool
}

// ServeHTTP handles password login.
//
//	@Summary		Log in
//	@Description	Verifies email and password. On success sets the access_token (1 hour) and
//	@Description	refresh_token (24 hours) http-only cookies and returns both tokens with the user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.Response{data=authsdk.LoginResponse}
//	@Failure		400		{object}	authsdk.Response	"Malformed or invalid body"
//	@Failure		401		{object}	authsdk.Response	"Invalid credentials"
//	@Failure		404		{object}	authsdk.Response	"User not found"
//	@Failure		500		{object}	authsdk.Response	"Internal server error"
//	@Router			/auth [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if !decodeBody(w, r, &req) || !validate(w, req.Validate()) {
		return
	}

	env := h.AuthService.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if sess, ok := env.Data.(domain.Session); ok && env.Success {
		httpx.NoCache(w)
		httpx.SetTokenCookie(w, domain.AccessTokenCookie, sess.AccessToken, sess.AccessTTL, h.CookieSecure)
		httpx.SetTokenCookie(w, domain.RefreshTokenCookie, sess.RefreshToken, sess.RefreshTTL, h.CookieSecure)
	}

	httpx.WriteEnvelope(w, env)
}
