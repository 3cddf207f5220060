// Package client contains the client-side building blocks that talk to the
// outside world: the review backend and the local database.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface) covering
//     identity, profile, account flows, universities, reviews and the admin
//     endpoints.
//  2. A REST implementation (see HTTPClient). Every request is decorated by
//     a bearer transport that reads the current token from a TokenSource and
//     adds an X-Request-ID. Requests are rate limited and individually
//     bounded by a timeout.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite file and applying the embedded goose migrations.
//
// # Error Handling
//
// Non-2xx answers come back as *APIError, which unwraps to a sentinel:
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrLocked,
// ErrValidation, ErrUnavailable or ErrUnexpectedStatus. Transport failures
// and timeouts are reported as ErrUnavailable.
//
//	_, err := c.Me(ctx)
//	if errors.Is(err, client.ErrUnauthorized) { ... }
package client
