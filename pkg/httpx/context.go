package httpx

import "context"

type ctxKey string

const (
	CtxKeyIdentity ctxKey = "identity"
)

// Identity is the caller attached to a request once its bearer token checks out.
type Identity struct {
	UserID int64
}

// WithIdentity stores id on ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, id)
}

// IdentityFromContext returns the identity set by AuthnMiddleware, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(Identity)
	return id, ok
}
