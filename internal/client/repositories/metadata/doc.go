// Package metadata is the client's durable key/value storage: a single
// SQLite table holding small values that must survive restarts, most
// importantly the bearer token of the current session.
package metadata
