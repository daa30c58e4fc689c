package domain

import "time"

// Cookie names the login response sets.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// Session is the result of a successful login.
type Session struct {
	User         PublicUser `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`

	AccessTTL  time.Duration `json:"-"`
	RefreshTTL time.Duration `json:"-"`
}
