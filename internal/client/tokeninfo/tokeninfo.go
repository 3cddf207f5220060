// Package tokeninfo reads the claims of a bearer token for display. The
// signature is NOT verified: only the backend decides whether a token is
// valid, the client merely shows whom it names and when it expires.
package tokeninfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformed = errors.New("malformed token")

type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now. Tokens without
// an exp claim never expire.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Remaining is the time left until expiry, zero when expired or unbounded.
func (c Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() || c.Expired(now) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

func Inspect(token string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	c := Claims{Subject: rc.Subject}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
