package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres boots a throwaway postgres container and returns a migrated
// store connected to it.
func startPostgres(t *testing.T) *postgres.Store {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "accounts",
			"POSTGRES_PASSWORD": "accounts",
			"POSTGRES_DB":       "accounts",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := postgres.ConnParams{
		Host:     host,
		Port:     port.Int(),
		Username: "accounts",
		Password: "accounts",
		Database: "accounts",
	}.DSN()

	s, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err, fmt.Sprintf("connect %s", dsn))
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations()) // idempotent
	return s
}

func ptr(s string) *string { return &s }

func TestPostgresUsers(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()
	users := s.Users()

	created, err := users.CreateUser(ctx, domain.User{
		FirstName: "Ada", LastName: "Lovelace", Age: "36", Email: "ada@example.com", PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)

	t.Run("find by email ignores case", func(t *testing.T) {
		u, err := users.FindUser(ctx, store.Lookup{Email: "ADA@example.com"})
		require.NoError(t, err)
		require.Equal(t, created.ID, u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := users.CreateUser(ctx, domain.User{
			FirstName: "x", LastName: "y", Age: "1", Email: "Ada@Example.com", PasswordHash: "x",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("invalid lookup", func(t *testing.T) {
		_, err := users.FindUser(ctx, store.Lookup{})
		require.ErrorIs(t, err, store.ErrInvalidLookup)
	})

	t.Run("partial update", func(t *testing.T) {
		u, err := users.UpdateUser(ctx, created.ID, domain.UserPatch{Age: ptr("37")})
		require.NoError(t, err)
		require.Equal(t, "37", u.Age)
		require.Equal(t, "Ada", u.FirstName)

		_, err = users.UpdateUser(ctx, 424242, domain.UserPatch{Age: ptr("1")})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("soft delete then purge", func(t *testing.T) {
		ok, err := users.SoftDeleteUser(ctx, created.ID, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		_, err = users.GetPublicUser(ctx, created.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		ok, err = users.SoftDeleteUser(ctx, created.ID, time.Now())
		require.NoError(t, err)
		require.False(t, ok)

		n, err := users.PurgeDeletedUsers(ctx, time.Now())
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})

	t.Run("transaction rollback", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Users().CreateUser(ctx, domain.User{
				FirstName: "t", LastName: "x", Age: "1", Email: "tx@example.com", PasswordHash: "x",
			}); err != nil {
				return err
			}
			return store.ErrAlreadyExists
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		_, err = users.FindUser(ctx, store.Lookup{Email: "tx@example.com"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestConnParamsDSN(t *testing.T) {
	dsn := postgres.ConnParams{
		Host: "db", Port: 5432, Username: "u", Password: "p@ss", Database: "accounts",
	}.DSN()
	require.Equal(t, "postgres://u:p%40ss@db:5432/accounts?sslmode=disable", dsn)
}
