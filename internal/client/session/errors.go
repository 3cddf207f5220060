package session

import "errors"

var (
	ErrEmptyToken       = errors.New("empty token")
	ErrResolving        = errors.New("session is still resolving")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("admin role required")
)
