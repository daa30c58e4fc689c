package jwtx

import (
	"fmt"
	"time"
)

// IssuerOptions configures an Issuer.
type IssuerOptions struct {
	// Secret is the HMAC key shared by signing and verification.
	Secret []byte

	// Issuer is written to "iss" and required on verification.
	Issuer string

	// Leeway tolerates clock skew on exp/nbf checks.
	Leeway time.Duration

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Issuer mints and verifies the bearer tokens handed out on login.
type Issuer struct {
	signer   Signer
	verifier Verifier
	issuer   string
	now      func() time.Time
}

// NewIssuer builds an Issuer backed by an HS256 signer/verifier pair.
func NewIssuer(opts IssuerOptions) (*Issuer, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	signer, err := NewSignerHS256(opts.Secret)
	if err != nil {
		return nil, err
	}

	return &Issuer{
		signer: signer,
		verifier: NewVerifierHS256(opts.Secret, VerifyOptions{
			Issuer: opts.Issuer,
			Leeway: opts.Leeway,
			Now:    opts.Now,
		}),
		issuer: opts.Issuer,
		now:    opts.Now,
	}, nil
}

// Issue signs a token for subjectID that expires ttl from now.
func (i *Issuer) Issue(subjectID int64, ttl time.Duration) (string, error) {
	if subjectID <= 0 || ttl <= 0 {
		return "", fmt.Errorf("%w: subject %d ttl %s", ErrTokenGeneration, subjectID, ttl)
	}

	claims := NewClaims(subjectID, ttl, i.issuer, i.now().UTC())
	token, err := i.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return token, nil
}

// Verify checks a token minted by this issuer and returns its claims.
func (i *Issuer) Verify(token string) (Claims, error) {
	return i.verifier.Verify(token)
}

// Ready reports whether the signer is able to mint tokens.
func (i *Issuer) Ready() error {
	return i.signer.Validate()
}
