package authsdk

import (
	"context"
	"net/http"
	"sync"
)

// Session carries the tokens of a logged-in user.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// AccessToken returns the bearer token used for requests.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the long-lived token issued at login.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// UpdateUser patches the session user's profile and returns the new view.
func (s *Session) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPatch, "/user", req, s.AccessToken())
	if err != nil {
		return nil, err
	}

	var out User
	if err := decodeEnvelope(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser soft-deletes the session user. The session's tokens stay
// technically valid until they expire.
func (s *Session) DeleteUser(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/user/delete", nil, s.AccessToken())
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil, http.StatusOK)
}
