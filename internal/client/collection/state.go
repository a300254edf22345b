package collection

import (
	"sync"

	"github.com/dmitrijs2005/kouden/internal/models"
)

// State owns the base and overlay maps for one (table, ledger) pairing. It
// is safe for concurrent use; push callbacks and mutations may interleave.
//
// Every overlay write and every confirmed base change is stamped with a
// sequence number. A failed mutation only rolls back the entry it wrote
// itself, and a refresh keeps whatever changed after its listing was
// requested.
type State[T models.Record[T]] struct {
	mu      sync.RWMutex
	base    *orderedMap[T]
	overlay *orderedMap[Entry[T]]

	seq       uint64
	stamps    map[string]uint64
	confirmed map[string]uint64
}

func NewState[T models.Record[T]]() *State[T] {
	return &State[T]{
		base:      newOrderedMap[T](),
		overlay:   newOrderedMap[Entry[T]](),
		stamps:    make(map[string]uint64),
		confirmed: make(map[string]uint64),
	}
}

// slot is an overlay entry as it was at some point, stamp included.
type slot[T any] struct {
	entry Entry[T]
	had   bool
	stamp uint64
}

// Base returns the confirmed rows in insertion order.
func (s *State[T]) Base() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base.Values()
}

// Overlay returns the pending entries in insertion order.
func (s *State[T]) Overlay() []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay.Values()
}

// Merged is the list the user sees.
func (s *State[T]) Merged() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Merge(s.base.Values(), s.overlay.Values())
}

// Lookup finds id in the merged view.
func (s *State[T]) Lookup(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id)
}

func (s *State[T]) lookup(id string) (T, bool) {
	if e, ok := s.overlay.Get(id); ok {
		if e.Deleted {
			var zero T
			return zero, false
		}
		return e.Record, true
	}
	return s.base.Get(id)
}

// Load replaces the base with rows and drops the whole overlay. It is used
// to seed a state from a local snapshot.
func (s *State[T]) Load(rows []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = newOrderedMap[T]()
	for _, r := range rows {
		s.base.Set(r.GetMeta().ID, r)
	}
	s.overlay = newOrderedMap[Entry[T]]()
	s.stamps = make(map[string]uint64)
	s.confirmed = make(map[string]uint64)
}

func (s *State[T]) next() uint64 {
	s.seq++
	return s.seq
}

// Mark returns the current sequence number. Changes made after the call
// carry a larger stamp.
func (s *State[T]) Mark() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

func (s *State[T]) setOverlay(id string, e Entry[T]) uint64 {
	s.overlay.Set(id, e)
	s.stamps[id] = s.next()
	return s.stamps[id]
}

func (s *State[T]) deleteOverlay(id string) {
	s.overlay.Delete(id)
	delete(s.stamps, id)
}

// ReplaceBase installs a server listing requested when the sequence was at
// since. Optimistic entries survive. Confirmed overlay values survive when
// newer than the listed row or, for rows the listing lacks, when they were
// pushed after since. Pushed tombstones survive only while the listing
// still has the row. Local creates, updates and deletes confirmed after
// since are kept over the listing.
func (s *State[T]) ReplaceBase(rows []T, since uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.base
	s.base = newOrderedMap[T]()
	for _, r := range rows {
		s.base.Set(r.GetMeta().ID, r)
	}

	for id, at := range s.confirmed {
		if at <= since {
			delete(s.confirmed, id)
			continue
		}
		if _, had := old.Get(id); !had {
			s.base.Delete(id)
		}
	}
	for _, id := range old.Keys() {
		if s.confirmed[id] <= since {
			continue
		}
		prev, _ := old.Get(id)
		listed, ok := s.base.Get(id)
		if !ok || prev.GetMeta().UpdatedAt.After(listed.GetMeta().UpdatedAt) {
			s.base.Set(id, prev)
		}
	}

	for _, id := range s.overlay.Keys() {
		e, _ := s.overlay.Get(id)
		if e.Optimistic {
			continue
		}
		b, inBase := s.base.Get(id)
		switch {
		case e.Deleted && inBase:
		case !e.Deleted && inBase && e.Record.GetMeta().UpdatedAt.After(b.GetMeta().UpdatedAt):
		case !e.Deleted && !inBase && s.stamps[id] > since:
		default:
			s.deleteOverlay(id)
		}
	}
}

func (s *State[T]) slotOf(id string) slot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, had := s.overlay.Get(id)
	return slot[T]{entry: e, had: had, stamp: s.stamps[id]}
}

// putOverlay writes e and returns its stamp.
func (s *State[T]) putOverlay(id string, e Entry[T]) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setOverlay(id, e)
}

func (s *State[T]) dropOverlay(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteOverlay(id)
}

// restoreOverlay puts prev back for id after a failed mutation, provided the
// overlay still holds the entry stamped token. Anything written since, such
// as a pushed update or a remote delete, is newer and stays. It reports
// whether the rollback happened.
func (s *State[T]) restoreOverlay(id string, prev slot[T], token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.stamps[id]; !ok || cur != token {
		return false
	}
	if !prev.had {
		s.deleteOverlay(id)
		return true
	}
	s.overlay.Set(id, prev.entry)
	s.stamps[id] = prev.stamp
	return true
}

// clearConfirmed removes the overlay entry for id unless a pushed entry
// already carries newer information than row.
func (s *State[T]) clearConfirmed(id string, row T) {
	e, ok := s.overlay.Get(id)
	if !ok {
		return
	}
	if !e.Optimistic {
		if e.Deleted {
			return
		}
		if e.Record.GetMeta().UpdatedAt.After(row.GetMeta().UpdatedAt) {
			return
		}
	}
	s.deleteOverlay(id)
}

// confirmCreate swaps the provisional entry for the confirmed row.
func (s *State[T]) confirmCreate(provisionalID string, row T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteOverlay(provisionalID)
	id := row.GetMeta().ID
	s.clearConfirmed(id, row)
	s.base.Set(id, row)
	s.confirmed[id] = s.next()
}

// confirmUpdate replaces id in place. If the base does not hold the row,
// the only visible copy may be a pushed overlay value; it is refreshed so
// the record does not vanish.
func (s *State[T]) confirmUpdate(id string, row T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.base.Get(id); ok {
		s.base.Set(id, row)
		s.confirmed[id] = s.next()
		s.clearConfirmed(id, row)
		return
	}
	if e, ok := s.overlay.Get(id); ok && !e.Deleted {
		if e.Optimistic || !e.Record.GetMeta().UpdatedAt.After(row.GetMeta().UpdatedAt) {
			s.setOverlay(id, Entry[T]{Record: row})
		}
	}
}

func (s *State[T]) confirmDelete(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.base.Delete(id)
		s.deleteOverlay(id)
		s.confirmed[id] = s.next()
	}
}

// applyPushed folds a server-pushed row into the overlay as a confirmed
// entry. Stale pushes and pushes for ids with a pending local delete are
// ignored.
func (s *State[T]) applyPushed(row T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := row.GetMeta().ID
	updated := row.GetMeta().UpdatedAt

	if e, ok := s.overlay.Get(id); ok {
		if e.Deleted {
			return false
		}
		if !e.Optimistic && e.Record.GetMeta().UpdatedAt.After(updated) {
			return false
		}
	} else if b, ok := s.base.Get(id); ok && b.GetMeta().UpdatedAt.After(updated) {
		return false
	}
	s.setOverlay(id, Entry[T]{Record: row})
	return true
}

// applyRemoteDelete tombstones id. The delete is already authoritative.
func (s *State[T]) applyRemoteDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rec T
	if cur, ok := s.lookup(id); ok {
		rec = cur
	} else {
		rec = rec.WithMeta(models.Meta{ID: id})
	}
	s.setOverlay(id, Entry[T]{Record: rec, Deleted: true})
}
