package claims

import (
	"context"

	jwt "github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

// Claims is the token payload: {sub, iat, exp} with sub carrying the
// username. Nothing else is encoded; the user record is resolved from
// the store on every request.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// FromContext extracts the verified claims stored by the auth middleware.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(TokenContextKey).(*Claims)
	if !ok || c == nil || c.Subject == "" {
		return nil, false
	}
	return c, true
}
