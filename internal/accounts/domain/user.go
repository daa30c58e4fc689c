package domain

import "time"

// User is the stored account record. It carries credentials and lifecycle
// fields and must never be serialised to clients; use Public for that.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Age          string
	Email        string
	PasswordHash string     // bcrypt encoded
	RefreshToken *string    // opaque, nullable
	DeletedAt    *time.Time // set when soft-deleted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       string    `json:"age"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public whitelists the fields that may leave the service. New sensitive
// fields on User stay hidden unless they are added here.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserPatch is a partial update. Nil fields are left untouched; email and
// password are deliberately not patchable.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Age       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Age == nil
}
