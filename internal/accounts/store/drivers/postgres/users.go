package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

const userColumns = `id, first_name, last_name, age, email, password_hash, refresh_token, deleted_at, created_at, updated_at`

const (
	getUserByID = `SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND deleted_at IS NULL`

	getUserByEmail = `SELECT ` + userColumns + `
FROM users
WHERE lower(email) = lower($1) AND deleted_at IS NULL`

	createUser = `INSERT INTO users (first_name, last_name, age, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + userColumns

	updateUser = `UPDATE users
SET first_name = COALESCE($1, first_name),
    last_name  = COALESCE($2, last_name),
    age        = COALESCE($3, age),
    updated_at = $4
WHERE id = $5 AND deleted_at IS NULL
RETURNING ` + userColumns

	softDeleteUser = `UPDATE users
SET deleted_at = $1, updated_at = $1
WHERE id = $2 AND deleted_at IS NULL`

	purgeDeletedUsers = `DELETE FROM users
WHERE deleted_at IS NOT NULL AND deleted_at < $1`
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) FindUser(ctx context.Context, by store.Lookup) (domain.User, error) {
	if err := by.Validate(); err != nil {
		return domain.User{}, err
	}

	query, arg := getUserByID, any(by.ID)
	if by.Email != "" {
		query, arg = getUserByEmail, by.Email
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, createUser,
		u.FirstName, u.LastName, u.Age, u.Email, u.PasswordHash, time.Now().UTC())

	created, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", mapConstraint(err))
	}
	return created, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, updateUser,
		nullString(patch.FirstName),
		nullString(patch.LastName),
		nullString(patch.Age),
		time.Now().UTC(),
		id,
	)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) SoftDeleteUser(ctx context.Context, id int64, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, softDeleteUser, at.UTC(), id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
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
	res, err := r.db.ExecContext(ctx, purgeDeletedUsers, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
