package http_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
)

func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()

	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, testVersion, health.Version)
	require.NotEmpty(t, health.Uptime)
}

func TestLivezEndpoint(t *testing.T) {
	srv := setupServer(t)

	health, err := srv.Client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
	require.Nil(t, health.Checks)
}

func TestReadyzEndpoint(t *testing.T) {
	srv := setupServer(t)

	health, err := srv.Client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

func TestReadyzEndpoint_Degraded(t *testing.T) {
	t.Run("signer", func(t *testing.T) {
		srv := setupServerWithSigner(t, failingSigner{})

		health := getReadyz(t, srv)
		require.Equal(t, "degraded", health.Status)
		require.Equal(t, "error", health.Checks.Signer)
		require.Equal(t, "ok", health.Checks.Database)
	})

	t.Run("database", func(t *testing.T) {
		srv := setupServer(t)
		require.NoError(t, srv.Store.Close())

		health := getReadyz(t, srv)
		require.Equal(t, "degraded", health.Status)
		require.Equal(t, "error", health.Checks.Database)
	})
}

func getReadyz(t *testing.T, srv *testServer) authsdk.HealthResponse {
	t.Helper()

	health, err := srv.Client.GetReadiness(t.Context())
	requireAPIError(t, err, http.StatusServiceUnavailable, "degraded")
	require.NotNil(t, health)
	require.NotNil(t, health.Checks)
	return *health
}

func TestRequestIDEchoed(t *testing.T) {
	srv := setupServer(t)

	get := func(t *testing.T, reqID string) string {
		t.Helper()
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/livez", nil)
		require.NoError(t, err)
		if reqID != "" {
			req.Header.Set("X-Request-ID", reqID)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		return resp.Header.Get("X-Request-ID")
	}

	t.Run("generated when absent", func(t *testing.T) {
		_, err := idx.Parse(get(t, ""))
		require.NoError(t, err)
	})

	t.Run("valid id kept", func(t *testing.T) {
		id := idx.New().String()
		require.Equal(t, id, get(t, id))
	})

	t.Run("malformed id replaced", func(t *testing.T) {
		got := get(t, "not-a-ulid")
		require.NotEqual(t, "not-a-ulid", got)
		_, err := idx.Parse(got)
		require.NoError(t, err)
	})
}
