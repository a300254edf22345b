// Package cli provides the interactive kouden command-line client.
//
// It wires configuration, local storage, API services, the push subscriber
// and an interactive REPL that supports online/offline operation. Typical
// flow: prompt for credentials, reopen the last ledger, start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Logout (online with offline fallback)
//   - Ledgers: list, create, open, share with other users
//   - Telegrams, gifts and offerings: list, search, sort, add, edit, delete
//   - Offering photos through presigned URLs
//
// Changes are shown immediately and confirmed or rolled back when the
// server answers; the outcome is printed as a one-line notification.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
