package collection

import "github.com/dmitrijs2005/kouden/internal/models"

// Entry is one overlay slot. Optimistic entries are unconfirmed local
// writes; Deleted entries are tombstones.
type Entry[T any] struct {
	Record     T
	Optimistic bool
	Deleted    bool
}

// Merge builds the rendered list: base rows first, then each overlay entry
// either removes its id (tombstone) or inserts/overwrites it. It is a pure
// function of its inputs.
func Merge[T models.Record[T]](base []T, overlay []Entry[T]) []T {
	m := newOrderedMap[T]()
	for _, r := range base {
		m.Set(r.GetMeta().ID, r)
	}
	for _, e := range overlay {
		id := e.Record.GetMeta().ID
		if e.Deleted {
			m.Delete(id)
			continue
		}
		m.Set(id, e.Record)
	}
	return m.Values()
}
