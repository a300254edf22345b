// Package snapshots persists the last confirmed server rows of each
// (table, ledger) pair in the local SQLite database, so a ledger can be
// browsed while the server is unreachable.
//
// Replace issues several statements; run it inside dbx.WithTx so readers
// never observe a half-written snapshot.
package snapshots
