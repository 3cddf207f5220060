// Package session is the single source of truth for "who is logged in".
//
// A Manager owns three pieces of state: the bearer token (kept in a durable
// TokenStore), the resolved user profile and a one-shot resolving latch.
// They change only through Initialize, Login, Logout and UpdateProfile.
//
// # Lifecycle
//
// Initialize runs once at startup. Without a stored token it resolves
// immediately; otherwise it asks the backend who the token belongs to and
// either adopts the profile or clears the token. Either way the latch flips
// and Ready is closed.
//
// Login stores a token and performs the same lookup. A failed lookup leaves
// the token stored with no user and returns the error. Logout forgets both
// and never fails.
//
// UpdateProfile is optimistic: the patch is visible to readers before the
// backend confirms it and is rolled back to the pre-call snapshot on
// failure. Overlapping calls each snapshot the state they saw, so the last
// failing call decides what is restored.
//
// # Concurrency
//
// All methods are safe for concurrent use. The internal lock is never held
// across a network call; stale responses are not filtered.
//
// # Guards
//
// RequireUser and RequireAdmin answer the questions screens ask before
// rendering identity-dependent content:
//
//	u, err := m.RequireAdmin()
//	switch {
//	case errors.Is(err, session.ErrResolving):      // wait for m.Ready()
//	case errors.Is(err, session.ErrNotAuthenticated): // ask to log in
//	case errors.Is(err, session.ErrForbidden):       // hide admin screen
//	}
package session
