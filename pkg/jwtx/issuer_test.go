package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// fakeClock is a settable clock for issuer tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestIssuer(t *testing.T, clock *fakeClock, leeway time.Duration) *jwtx.Issuer {
	t.Helper()
	iss, err := jwtx.NewIssuer(jwtx.IssuerOptions{
		Secret: testSecret,
		Issuer: "accounts",
		Leeway: leeway,
		Now:    clock.Now,
	})
	require.NoError(t, err)
	return iss
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	iss := newTestIssuer(t, clock, 0)

	token, err := iss.Issue(42, jwtx.DefaultAccessTokenTTL)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := iss.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "accounts", claims.Issuer)
	require.WithinDuration(t, clock.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestIssuer_TokensAreUnique(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	iss := newTestIssuer(t, clock, 0)

	a, err := iss.Issue(1, time.Hour)
	require.NoError(t, err)
	b, err := iss.Issue(1, time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestIssuer_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	iss := newTestIssuer(t, clock, 0)

	token, err := iss.Issue(9, time.Hour)
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, err = iss.Verify(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = iss.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestIssuer_ExpiryLeeway(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	iss := newTestIssuer(t, clock, 2*time.Minute)

	token, err := iss.Issue(9, time.Hour)
	require.NoError(t, err)

	clock.Advance(61 * time.Minute)
	_, err = iss.Verify(token)
	require.NoError(t, err)
}

func TestIssuer_RejectsBadTokens(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	iss := newTestIssuer(t, clock, 0)

	good, err := iss.Issue(5, time.Hour)
	require.NoError(t, err)

	other, err := jwtx.NewIssuer(jwtx.IssuerOptions{
		Secret: []byte("ffffffffffffffffffffffffffffffff"),
		Issuer: "accounts",
		Now:    clock.Now,
	})
	require.NoError(t, err)
	forged, err := other.Issue(5, time.Hour)
	require.NoError(t, err)

	foreign, err := jwtx.NewIssuer(jwtx.IssuerOptions{Secret: testSecret, Issuer: "elsewhere", Now: clock.Now})
	require.NoError(t, err)
	wrongIss, err := foreign.Issue(5, time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewClaims(5, time.Hour, "accounts", clock.Now()))
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", jwtx.ErrMissing},
		{"garbage", "not-a-token", jwtx.ErrMalformed},
		{"wrong secret", forged, jwtx.ErrInvalidSig},
		{"tampered signature", tampered, jwtx.ErrInvalidSig},
		{"alg none", unsigned, jwtx.ErrInvalidSig},
		{"wrong issuer", wrongIss, jwtx.ErrIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iss.Verify(tt.token)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIssuer_IssueRejectsInvalidInput(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	iss := newTestIssuer(t, clock, 0)

	_, err := iss.Issue(0, time.Hour)
	require.ErrorIs(t, err, jwtx.ErrTokenGeneration)

	_, err = iss.Issue(1, 0)
	require.ErrorIs(t, err, jwtx.ErrTokenGeneration)
}

func TestNewIssuer_WeakSecret(t *testing.T) {
	_, err := jwtx.NewIssuer(jwtx.IssuerOptions{Secret: []byte("short")})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}
