package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type AuthService struct {
	Store      store.Store
	Hasher     PasswordHasher
	Tokens     TokenIssuer
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Login checks email and password and, on success, issues an access and a
// refresh token. The payload is a domain.Session.
func (s *AuthService) Login(ctx context.Context, email, password string) httpx.Envelope {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().FindUser(ctx, store.Lookup{Email: email})
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidLookup):
		return httpx.Fail(http.StatusNotFound, MsgUserNotFound)
	case err != nil:
		return internalError(ctx, "login lookup", err)
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		l.Info("login rejected", "user_id", user.ID)
		return httpx.Fail(http.StatusUnauthorized, MsgInvalidCredentials)
	}

	accessTTL, refreshTTL := s.ttls()

	access, err := s.Tokens.Issue(user.ID, accessTTL)
	if err != nil {
		return internalError(ctx, "issue access token", err)
	}
	refresh, err := s.Tokens.Issue(user.ID, refreshTTL)
	if err != nil {
		return internalError(ctx, "issue refresh token", err)
	}

	l.Info("login successful", "user_id", user.ID)
	return httpx.OK(http.StatusOK, MsgLoginSuccessful, domain.Session{
		User:         user.Public(),
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    accessTTL,
		RefreshTTL:   refreshTTL,
	})
}

func (s *AuthService) ttls() (time.Duration, time.Duration) {
	access, refresh := s.AccessTTL, s.RefreshTTL
	if access <= 0 {
		access = jwtx.DefaultAccessTokenTTL
	}
	if refresh <= 0 {
		refresh = jwtx.DefaultRefreshTokenTTL
	}
	return access, refresh
}
