package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrInvalidLookup = errors.New("store: lookup needs exactly one of email or id")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a transaction-scoped Store
// looks exactly like the root one.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back, otherwise it is committed. Called on a Tx
	// it joins the existing transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Lookup selects a single user. Exactly one field must be set.
type Lookup struct {
	Email string
	ID    int64
}

// Validate enforces the exactly-one rule.
func (l Lookup) Validate() error {
	hasEmail := l.Email != ""
	hasID := l.ID != 0
	if hasEmail == hasID {
		return ErrInvalidLookup
	}
	return nil
}

// Users persists user records. Soft-deleted rows are invisible to every
// method except PurgeDeletedUsers.
type Users interface {
	// FindUser returns the full record (hash included) for internal use.
	FindUser(ctx context.Context, by Lookup) (domain.User, error)

	// CreateUser inserts u and returns it with the store-assigned id.
	// A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUser applies the non-nil fields of patch and bumps updated_at.
	UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error)

	// SoftDeleteUser stamps deleted_at. It reports false when no live row
	// matched.
	SoftDeleteUser(ctx context.Context, id int64, at time.Time) (bool, error)

	// GetPublicUser returns the redacted projection of a live user.
	GetPublicUser(ctx context.Context, id int64) (domain.PublicUser, error)

	// PurgeDeletedUsers hard-deletes users soft-deleted before the cutoff.
	PurgeDeletedUsers(ctx context.Context, before time.Time) (int64, error)
}
