package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) FindUser(ctx context.Context, by store.Lookup) (domain.User, error) {
	if err := by.Validate(); err != nil {
		return domain.User{}, err
	}

	var (
		row gen.User
		err error
	)
	if by.Email != "" {
		row, err = r.q.GetUserByEmail(ctx, by.Email)
	} else {
		row, err = r.q.GetUserByID(ctx, by.ID)
	}
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()
	row, err := r.q.CreateUser(ctx, gen.CreateUserParams{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Age:          u.Age,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", mapConstraint(err))
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	row, err := r.q.UpdateUser(ctx, gen.UpdateUserParams{
		FirstName: mapOptionalString(patch.FirstName),
		LastName:  mapOptionalString(patch.LastName),
		Age:       mapOptionalString(patch.Age),
		UpdatedAt: time.Now().UTC(),
		ID:        id,
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) SoftDeleteUser(ctx context.Context, id int64, at time.Time) (bool, error) {
	at = at.UTC()
	n, err := r.q.SoftDeleteUser(ctx, gen.SoftDeleteUserParams{
		DeletedAt: sql.NullTime{Time: at, Valid: true},
		UpdatedAt: at,
		ID:        id,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) GetPublicUser(ctx context.Context, id int64) (domain.PublicUser, error) {
	u, err := r.FindUser(ctx, store.Lookup{ID: id})
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

func (r *usersRepo) PurgeDeletedUsers(ctx context.Context, before time.Time) (int64, error) {
	return r.q.PurgeDeletedUsers(ctx, sql.NullTime{Time: before.UTC(), Valid: true})
}
