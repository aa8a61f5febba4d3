package scope

import "context"

// Payload carries the identity extracted from a verified token.
type Payload struct {
	UserID    string
	Username  string
	Email     string
	Role      string
	TokenID   string
	Issuer    string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager issues and verifies auth tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type payloadKey struct{}

// SetPayloadToContext returns a child context carrying the payload.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext extracts the payload set by the auth middleware.
// The second return value reports whether a payload was present.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}
