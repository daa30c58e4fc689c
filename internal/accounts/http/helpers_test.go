package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accountshttp "github.com/aussiebroadwan/accounts/internal/accounts/http"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

/*
 * Shared fixtures for the HTTP layer tests. Each test gets its own in-memory
 * database and server, and talks to it through the public SDK where it can.
 */

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "accounts"
	testEmail    = "ada@example.com"
	testPassword = "hunter22"
	testVersion  = "test"
)

type testServer struct {
	URL    string
	Client *authsdk.SDKClient
	Store  *sqlite.Store
	Issuer *jwtx.Issuer
}

// setupServer starts the full router against a fresh in-memory store.
func setupServer(t *testing.T) *testServer {
	t.Helper()
	return setupServerWithSigner(t, nil)
}

// setupServerWithSigner is setupServer with a replacement readiness signer.
// A nil signer means the real issuer.
func setupServerWithSigner(t *testing.T, signer accountshttp.SignerChecker) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	issuer, err := jwtx.NewIssuer(jwtx.IssuerOptions{
		Secret: []byte(testSecret),
		Issuer: testIssuer,
	})
	require.NoError(t, err)

	hasher := cryptox.BcryptHasher{Cost: bcrypt.MinCost}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if signer == nil {
		signer = issuer
	}

	router := accountshttp.NewRouter(issuer, signer, testVersion, st, logger)
	router.AuthService = &service.AuthService{
		Store:      st,
		Hasher:     hasher,
		Tokens:     issuer,
		AccessTTL:  jwtx.DefaultAccessTokenTTL,
		RefreshTTL: jwtx.DefaultRefreshTokenTTL,
	}
	router.UserService = &service.UserService{Store: st, Hasher: hasher}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: authsdk.NewSDKClient(srv.URL),
		Store:  st,
		Issuer: issuer,
	}
}

// createUser registers the default test user and returns its id.
func (s *testServer) createUser(t *testing.T, email string) int64 {
	t.Helper()

	err := s.Client.CreateUser(t.Context(), authsdk.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       "36",
		Email:     email,
		Password:  testPassword,
	})
	require.NoError(t, err)

	u, err := s.Store.Users().FindUser(context.Background(), store.Lookup{Email: email})
	require.NoError(t, err)
	return u.ID
}

// do sends a raw request, for cases the SDK deliberately cannot express.
func (s *testServer) do(t *testing.T, method, path, body, token string) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, s.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// requireAPIError asserts err is an *authsdk.APIError with the given status.
func requireAPIError(t *testing.T, err error, status int, message string) *authsdk.APIError {
	t.Helper()

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	if message != "" {
		require.Equal(t, message, apiErr.Message)
	}
	return apiErr
}

type failingSigner struct{}

func (failingSigner) Ready() error { return errors.New("signer offline") }

// forgeToken signs a structurally valid token with a secret the server does
// not know.
func forgeToken(t *testing.T, userID int64) string {
	t.Helper()

	forger, err := jwtx.NewIssuer(jwtx.IssuerOptions{
		Secret: []byte("ffffffffffffffffffffffffffffffff"),
		Issuer: testIssuer,
	})
	require.NoError(t, err)

	token, err := forger.Issue(userID, jwtx.DefaultAccessTokenTTL)
	require.NoError(t, err)
	return token
}
