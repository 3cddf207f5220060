// Package common contains shared constants, sentinel errors and small helpers
// used across the review-universities client.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the opaque token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// TokenMetadataKey is the single durable storage key holding the bearer token.
// Absence of the key means logged-out.
const TokenMetadataKey = "token"
