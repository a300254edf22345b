// Package collection reconciles a ledger's list-backed records between the
// server and the client under optimistic writes and pushed change events.
//
// A State holds two ordered maps keyed by record id: the base (last confirmed
// server rows) and the overlay (pending writes, tombstones and pushed rows).
// Merge folds the overlay over the base. A Store is the only write path; it
// applies an optimistic overlay entry, calls the RemoteStore, and then either
// folds the confirmed row into the base or restores the overlay. A Listener
// folds pushed events into the overlay so edits by other members show up
// live.
package collection
