package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher

	// Now stamps soft deletes. Defaults to time.Now.
	Now func() time.Time
}

// NewUser is the input to CreateUser. Fields are expected to be validated.
type NewUser struct {
	FirstName string
	LastName  string
	Age       string
	Email     string
	Password  string
}

// CreateUser registers a new account. The uniqueness check and the insert
// share a transaction; the unique index still backs it up under races.
func (s *UserService) CreateUser(ctx context.Context, in NewUser) httpx.Envelope {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().FindUser(ctx, store.Lookup{Email: in.Email})
		switch {
		case err == nil:
			return store.ErrAlreadyExists
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		hash, err := s.Hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		_, err = tx.Users().CreateUser(ctx, domain.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Age:          in.Age,
			Email:        in.Email,
			PasswordHash: hash,
		})
		return err
	})

	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return httpx.Fail(http.StatusConflict, MsgEmailTaken)
	case err != nil:
		return internalError(ctx, "create user", err)
	}

	slogx.FromContext(ctx).Info("user created")
	return httpx.OK(http.StatusCreated, MsgUserCreated, nil)
}

// UpdateUser applies patch to the caller's own record. An empty patch
// returns the record as it is without writing.
func (s *UserService) UpdateUser(ctx context.Context, who httpx.Identity, patch domain.UserPatch) httpx.Envelope {
	if who.UserID <= 0 {
		return httpx.Fail(http.StatusBadRequest, MsgUserIDRequired)
	}

	var (
		user domain.User
		err  error
	)
	if patch.IsEmpty() {
		user, err = s.Store.Users().FindUser(ctx, store.Lookup{ID: who.UserID})
	} else {
		user, err = s.Store.Users().UpdateUser(ctx, who.UserID, patch)
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return httpx.Fail(http.StatusNotFound, fmt.Sprintf(msgUserIDNotFoundF, who.UserID))
	case err != nil:
		return internalError(ctx, "update user", err)
	}

	return httpx.OK(http.StatusOK, MsgUserUpdated, user.Public())
}

// SoftDeleteUser marks the caller's own record as deleted.
func (s *UserService) SoftDeleteUser(ctx context.Context, who httpx.Identity) httpx.Envelope {
	if who.UserID <= 0 {
		return httpx.Fail(http.StatusBadRequest, MsgUserIDRequired)
	}

	ok, err := s.Store.Users().SoftDeleteUser(ctx, who.UserID, s.now())
	switch {
	case err != nil:
		return internalError(ctx, "delete user", err)
	case !ok:
		return httpx.Fail(http.StatusNotFound, MsgDeleteFailed)
	}

	slogx.FromContext(ctx).Info("user soft-deleted")
	return httpx.OK(http.StatusOK, MsgUserDeleted, nil)
}

// GetUser returns the public view of a live user.
func (s *UserService) GetUser(ctx context.Context, id int64) httpx.Envelope {
	if id <= 0 {
		return httpx.Fail(http.StatusBadRequest, MsgUserIDRequired)
	}

	user, err := s.Store.Users().GetPublicUser(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return httpx.Fail(http.StatusNotFound, fmt.Sprintf(msgUserIDNotFoundF, id))
	case err != nil:
		return internalError(ctx, "get user", err)
	}

	return httpx.OK(http.StatusOK, MsgUserFetched, user)
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
