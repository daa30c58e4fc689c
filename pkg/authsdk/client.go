package authsdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the accounts service. It provides the public
// operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new accounts service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges email and password for an access/refresh token pair.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth", LoginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeEnvelope(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthenticateWithPassword logs in and wraps the tokens in a Session.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	login, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(login.AccessToken, login.RefreshToken), nil
}

// NewSessionFromTokens creates a session from tokens obtained elsewhere.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{client: c, accessToken: accessToken, refreshToken: refreshToken}
}

// CreateUser registers a new account. The service does not echo the record.
func (c *SDKClient) CreateUser(ctx context.Context, req CreateUserRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/user/create", req, "")
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil, http.StatusCreated)
}

// GetUser fetches the public profile of a user.
func (c *SDKClient) GetUser(ctx context.Context, id int64) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/user/%d", id), nil, "")
	if err != nil {
		return nil, err
	}

	var out User
	if err := decodeEnvelope(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
