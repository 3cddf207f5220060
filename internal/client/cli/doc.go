// Package cli provides the interactive Review Universities command-line client.
//
// It wires configuration, the local database, the REST client, the session
// and the application services, and runs a REPL on top of them. Typical flow:
// restore the stored session, start a background connectivity watcher, then
// execute user commands until "exit".
//
// Key features:
//   - Login with credentials or an existing token, logout, profile editing
//   - Registration, verification mail and password reset
//   - Browse universities and their reviews, also offline from a local cache
//   - Write and delete reviews, propose universities
//   - Administration: users, universities and reviews
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
