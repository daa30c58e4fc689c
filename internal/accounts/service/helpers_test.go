package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

type fixture struct {
	store  *sqlite.Store
	hasher cryptox.BcryptHasher
	issuer *jwtx.Issuer
	auth   *service.AuthService
	users  *service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	hasher := cryptox.BcryptHasher{Cost: bcrypt.MinCost}
	issuer, err := jwtx.NewIssuer(jwtx.IssuerOptions{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer: "accounts",
	})
	require.NoError(t, err)

	return &fixture{
		store:  s,
		hasher: hasher,
		issuer: issuer,
		auth: &service.AuthService{
			Store:      s,
			Hasher:     hasher,
			Tokens:     issuer,
			AccessTTL:  jwtx.DefaultAccessTokenTTL,
			RefreshTTL: jwtx.DefaultRefreshTokenTTL,
		},
		users: &service.UserService{Store: s, Hasher: hasher},
	}
}

// register creates a user through the service and returns the stored record.
func (f *fixture) register(t *testing.T, email, password string) domain.User {
	t.Helper()

	env := f.users.CreateUser(context.Background(), service.NewUser{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       "36",
		Email:     email,
		Password:  password,
	})
	require.True(t, env.Success, env.Message)

	u, err := f.store.Users().FindUser(context.Background(), store.Lookup{Email: email})
	require.NoError(t, err)
	return u
}

type failingHasher struct{ cryptox.BcryptHasher }

func (failingHasher) Hash(string) (string, error) { return "", errBoom }

type failingIssuer struct{}

func (failingIssuer) Issue(int64, time.Duration) (string, error) { return "", errBoom }

type issuerFunc func(int64, time.Duration) (string, error)

func (f issuerFunc) Issue(subjectID int64, ttl time.Duration) (string, error) { return f(subjectID, ttl) }

// brokenStore wraps a real store but fails every user operation.
type brokenStore struct {
	store.Store
}

func (b brokenStore) Users() store.Users { return brokenUsers{} }

func (b brokenStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errBoom
}

type brokenUsers struct{}

func (brokenUsers) FindUser(context.Context, store.Lookup) (domain.User, error) {
	return domain.User{}, errBoom
}

func (brokenUsers) CreateUser(context.Context, domain.User) (domain.User, error) {
	return domain.User{}, errBoom
}

func (brokenUsers) UpdateUser(context.Context, int64, domain.UserPatch) (domain.User, error) {
	return domain.User{}, errBoom
}

func (brokenUsers) SoftDeleteUser(context.Context, int64, time.Time) (bool, error) {
	return false, errBoom
}

func (brokenUsers) GetPublicUser(context.Context, int64) (domain.PublicUser, error) {
	return domain.PublicUser{}, errBoom
}

func (brokenUsers) PurgeDeletedUsers(context.Context, time.Time) (int64, error) {
	return 0, errBoom
}

func ptr(s string) *string { return &s }
