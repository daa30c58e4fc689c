package accounts_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies liveness and readiness on a fresh container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.Equal(t, "ok", health.Checks.Database)

	t.Logf("Service healthy, version %s", health.Version)
}

// TestUserLifecycle walks a user from registration to deletion.
func TestUserLifecycle(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	registerUser(t, client)

	// Same email again is a conflict
	err := client.CreateUser(t.Context(), authsdk.CreateUserRequest{
		FirstName: "Dup",
		LastName:  "User",
		Age:       "20",
		Email:     userEmail,
		Password:  userPassword,
	})
	assertStatus(t, err, http.StatusConflict, "duplicate email")

	session, err := client.AuthenticateWithPassword(t.Context(), userEmail, userPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())
	require.NotEmpty(t, session.RefreshToken())

	age := "37"
	updated, err := session.UpdateUser(t.Context(), authsdk.UpdateUserRequest{Age: &age})
	require.NoError(t, err)
	require.Equal(t, "37", updated.Age)

	fetched, err := client.GetUser(t.Context(), updated.ID)
	require.NoError(t, err)
	require.Equal(t, "37", fetched.Age)

	require.NoError(t, session.DeleteUser(t.Context()))

	_, err = client.GetUser(t.Context(), updated.ID)
	assertStatus(t, err, http.StatusNotFound, "deleted user is hidden")

	_, err = client.Login(t.Context(), userEmail, userPassword)
	assertStatus(t, err, http.StatusNotFound, "deleted user cannot log in")

	t.Logf("User %d went through the full lifecycle", updated.ID)
}

// TestInvalidCredentials verifies that login with wrong password is rejected.
func TestInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	registerUser(t, client)

	_, err := client.Login(t.Context(), userEmail, "wrong-password")
	assertStatus(t, err, http.StatusUnauthorized, "invalid password should be rejected")
}

// TestInvalidAccessToken verifies that guarded endpoints reject invalid tokens.
func TestInvalidAccessToken(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	registerUser(t, client)

	invalid := client.NewSessionFromTokens("invalid-token-12345", "")

	name := "Mallory"
	_, err := invalid.UpdateUser(t.Context(), authsdk.UpdateUserRequest{FirstName: &name})
	assertStatus(t, err, http.StatusUnauthorized, "invalid token on update")

	err = invalid.DeleteUser(t.Context())
	assertStatus(t, err, http.StatusUnauthorized, "invalid token on delete")
}

// TestDataSurvivesRestart verifies the default database path is writable by
// the image user and persists across a container restart.
func TestDataSurvivesRestart(t *testing.T) {
	container := startAccountsContainer(t)
	defer terminate(t, container)

	client := authsdk.NewSDKClient(containerURL(t, container))
	registerUser(t, client)

	ctx := context.Background()
	timeout := 10 * time.Second
	require.NoError(t, container.Stop(ctx, &timeout))
	require.NoError(t, container.Start(ctx))

	client = authsdk.NewSDKClient(containerURL(t, container))
	require.Eventually(t, func() bool {
		_, err := client.GetLiveness(t.Context())
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)

	_, err := client.Login(t.Context(), userEmail, userPassword)
	require.NoError(t, err, "user registered before the restart should still log in")
}
