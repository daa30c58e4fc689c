package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate registers a user.
//
//	@Summary		Create user
//	@Description	Registers a new account. The record is not echoed back.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.CreateUserRequest	true	"New user"
//	@Success		201		{object}	authsdk.Response
//	@Failure		400		{object}	authsdk.Response	"Validation failed"
//	@Failure		409		{object}	authsdk.Response	"Email already registered"
//	@Failure		500		{object}	authsdk.Response	"Internal server error"
//	@Router			/user/create [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req authsdk.CreateUserRequest
	if !decodeBody(w, r, &req) || !validate(w, req.Validate()) {
		return
	}

	env := h.UserService.CreateUser(r.Context(), service.NewUser{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Age:       req.Age,
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
	})
	httpx.WriteEnvelope(w, env)
}

// HandleUpdate patches the caller's own profile.
//
//	@Summary		Update user
//	@Description	Updates first name, last name and/or age of the authenticated user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	authsdk.Response{data=authsdk.User}
//	@Failure		400		{object}	authsdk.Response	"Validation failed"
//	@Failure		401		{object}	authsdk.Response	"Missing or invalid token"
//	@Failure		404		{object}	authsdk.Response	"User not found"
//	@Failure		500		{object}	authsdk.Response	"Internal server error"
//	@Router			/user [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req authsdk.UpdateUserRequest
	if !decodeBody(w, r, &req) || !validate(w, req.Validate()) {
		return
	}

	patch := domain.UserPatch{
		FirstName: trimmed(req.FirstName),
		LastName:  trimmed(req.LastName),
		Age:       req.Age,
	}

	env := h.UserService.UpdateUser(r.Context(), identity(r), patch)
	httpx.WriteEnvelope(w, env)
}

// HandleDelete soft-deletes the caller's own account.
//
//	@Summary		Delete user
//	@Description	Soft-deletes the authenticated user. Issued tokens stay valid until they expire.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.Response
//	@Failure		401	{object}	authsdk.Response	"Missing or invalid token"
//	@Failure		404	{object}	authsdk.Response	"User deletion failed"
//	@Failure		500	{object}	authsdk.Response	"Internal server error"
//	@Router			/user/delete [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	env := h.UserService.SoftDeleteUser(r.Context(), identity(r))
	httpx.WriteEnvelope(w, env)
}

// HandleGet returns a user's public profile.
//
//	@Summary		Get user
//	@Description	Fetches the public profile of a live user.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	authsdk.Response{data=authsdk.User}
//	@Failure		400	{object}	authsdk.Response	"Invalid id"
//	@Failure		404	{object}	authsdk.Response	"User not found"
//	@Failure		500	{object}	authsdk.Response	"Internal server error"
//	@Router			/user/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteEnvelope(w, httpx.Fail(http.StatusBadRequest, "invalid user id"))
		return
	}

	env := h.UserService.GetUser(r.Context(), id)
	httpx.WriteEnvelope(w, env)
}

// identity returns the caller set by the guard. A missing identity yields the
// zero value, which the service rejects as a bad request.
func identity(r *http.Request) httpx.Identity {
	id, _ := httpx.IdentityFromContext(r.Context())
	return id
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
