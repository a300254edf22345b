package collection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// ProvisionalPrefix marks ids assigned locally before the server confirms
// a create.
const ProvisionalPrefix = "tmp-"

const DefaultTimeout = 10 * time.Second

func IsProvisional(id string) bool {
	return strings.HasPrefix(id, ProvisionalPrefix)
}

func newProvisionalID() string {
	return ProvisionalPrefix + ulid.Make().String()
}

// Config describes one entity type.
type Config[T any] struct {
	// Table is the remote table and channel prefix, e.g. "telegrams".
	Table string
	// Label is the singular name used in notifications, e.g. "telegram".
	Label string

	Search   func(T) []string
	SortKeys []SortKey[T]

	// Timeout bounds each remote call. Zero means DefaultTimeout.
	Timeout  time.Duration
	Notifier notify.Notifier
	Logger   logging.Logger

	NewID func() string
	Now   func() time.Time
}

// Store is the mutation façade for one table of one ledger.
type Store[T models.Record[T]] struct {
	parentID string
	remote   RemoteStore[T]
	state    *State[T]
	cfg      Config[T]
	locks    keyedMutex
}

func NewStore[T models.Record[T]](parentID string, remote RemoteStore[T], cfg Config[T]) *Store[T] {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewDiscard()
	}
	if cfg.NewID == nil {
		cfg.NewID = newProvisionalID
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Label == "" {
		cfg.Label = cfg.Table
	}
	return &Store[T]{
		parentID: parentID,
		remote:   remote,
		state:    NewState[T](),
		cfg:      cfg,
	}
}

func (s *Store[T]) ParentID() string { return s.parentID }
func (s *Store[T]) Table() string    { return s.cfg.Table }
func (s *Store[T]) State() *State[T] { return s.state }

// Rows is the merged view.
func (s *Store[T]) Rows() []T { return s.state.Merged() }

// View returns one filtered, sorted page of the merged view.
func (s *Store[T]) View(q Query) (Page[T], error) {
	return ViewOf(s.state.Merged(), q, s.cfg.Search, s.cfg.SortKeys)
}

// SortKeyNames lists the fields View can sort by.
func (s *Store[T]) SortKeyNames() []string {
	names := make([]string, len(s.cfg.SortKeys))
	for i, k := range s.cfg.SortKeys {
		names[i] = k.Name
	}
	return names
}

// Load seeds the base from previously saved rows.
func (s *Store[T]) Load(rows []T) { s.state.Load(rows) }

// Refresh refetches every row of the ledger and installs it as the base.
func (s *Store[T]) Refresh(ctx context.Context) error {
	since := s.state.Mark()
	var rows []T
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.remote.Select(ctx, s.parentID)
		return err
	})
	if err != nil {
		s.cfg.Logger.Error(ctx, "refresh failed", "table", s.cfg.Table, "ledger", s.parentID, "err", err)
		return &RemoteWriteError{Op: OpRefresh, Table: s.cfg.Table, Err: err}
	}
	s.state.ReplaceBase(rows, since)
	return nil
}

// Create shows input immediately under a provisional id, inserts it and
// swaps in the server row.
func (s *Store[T]) Create(ctx context.Context, input T) (T, error) {
	var zero T
	tmpID := s.cfg.NewID()
	now := s.cfg.Now()

	provisional := input.WithMeta(models.Meta{
		ID:        tmpID,
		LedgerID:  s.parentID,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: models.PendingUser,
	})
	s.state.putOverlay(tmpID, Entry[T]{Record: provisional, Optimistic: true})

	var row T
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		row, err = s.remote.Insert(ctx, input.WithMeta(models.Meta{LedgerID: s.parentID}))
		return err
	})
	if err != nil {
		s.state.dropOverlay(tmpID)
		return zero, s.fail(ctx, OpCreate, tmpID, err)
	}

	s.state.confirmCreate(tmpID, row)
	s.succeed(ctx, OpCreate, row.GetMeta().ID, capitalize(s.cfg.Label)+" created")
	return row, nil
}

// Update writes input to id. When id is visible locally the new value is
// shown while the call is in flight. On failure the previous overlay entry
// is restored unless a pushed change replaced the optimistic one meanwhile. An unknown id is still sent to the server.
func (s *Store[T]) Update(ctx context.Context, id string, input T) (T, error) {
	var zero T
	if IsProvisional(id) {
		return zero, s.fail(ctx, OpUpdate, id, ErrPendingRecord)
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return zero, s.fail(ctx, OpUpdate, id, err)
	}
	defer unlock()

	meta := models.Meta{ID: id, LedgerID: s.parentID}
	cur, known := s.state.Lookup(id)
	if known {
		meta = cur.GetMeta()
	}
	patch := input.WithMeta(meta)

	prev := s.state.slotOf(id)
	var token uint64
	if known {
		optimistic := meta
		optimistic.UpdatedAt = s.cfg.Now()
		token = s.state.putOverlay(id, Entry[T]{Record: input.WithMeta(optimistic), Optimistic: true})
	}

	var row T
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		row, err = s.remote.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		if known {
			s.state.restoreOverlay(id, prev, token)
		}
		return zero, s.fail(ctx, OpUpdate, id, err)
	}

	s.state.confirmUpdate(id, row)
	s.succeed(ctx, OpUpdate, id, capitalize(s.cfg.Label)+" updated")
	return row, nil
}

// Delete tombstones id, deletes it remotely and drops it from the base.
// Deleting an id that is not visible still reaches the server, whose delete
// is idempotent, and leaves local state untouched.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if IsProvisional(id) {
		return s.fail(ctx, OpDelete, id, ErrPendingRecord)
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return s.fail(ctx, OpDelete, id, err)
	}
	defer unlock()

	prev := s.state.slotOf(id)
	cur, known := s.state.Lookup(id)
	var token uint64
	if known {
		token = s.state.putOverlay(id, Entry[T]{Record: cur, Optimistic: true, Deleted: true})
	}

	err = s.call(ctx, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	})
	if err != nil {
		if known {
			s.state.restoreOverlay(id, prev, token)
		}
		return s.fail(ctx, OpDelete, id, err)
	}

	if known {
		s.state.confirmDelete(id)
	}
	s.succeed(ctx, OpDelete, id, capitalize(s.cfg.Label)+" deleted")
	return nil
}

// BulkDelete removes ids as one atomic batch. Every id must be visible;
// otherwise a StaleReferenceError is returned before anything is sent.
// On failure every tombstone still in place is rolled back.
func (s *Store[T]) BulkDelete(ctx context.Context, ids []string) error {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if IsProvisional(id) {
			return s.fail(ctx, OpBulkDelete, id, ErrPendingRecord)
		}
	}

	unlock, err := s.locks.LockAll(ctx, ids)
	if err != nil {
		return s.fail(ctx, OpBulkDelete, "", err)
	}
	defer unlock()

	var missing []string
	current := make([]T, 0, len(ids))
	for _, id := range ids {
		cur, ok := s.state.Lookup(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		current = append(current, cur)
	}
	if len(missing) > 0 {
		return s.fail(ctx, OpBulkDelete, "", &StaleReferenceError{IDs: missing})
	}

	prev := make(map[string]slot[T], len(ids))
	tokens := make(map[string]uint64, len(ids))
	for i, id := range ids {
		prev[id] = s.state.slotOf(id)
		tokens[id] = s.state.putOverlay(id, Entry[T]{Record: current[i], Optimistic: true, Deleted: true})
	}

	err = s.call(ctx, func(ctx context.Context) error {
		return s.remote.DeleteMany(ctx, ids)
	})
	if err != nil {
		for _, id := range ids {
			s.state.restoreOverlay(id, prev[id], tokens[id])
		}
		return s.fail(ctx, OpBulkDelete, "", err)
	}

	s.state.confirmDelete(ids...)
	s.succeed(ctx, OpBulkDelete, strings.Join(ids, ","), fmt.Sprintf("%d %s records deleted", len(ids), s.cfg.Label))
	return nil
}

// call runs fn under the store timeout. A remote call that ignores its
// context is abandoned when the deadline passes.
func (s *Store[T]) call(ctx context.Context, fn func(ctx context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn(cctx) }()

	select {
	case err := <-done:
		if err != nil && errors.Is(cctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w after %s: %w", ErrMutationTimeout, s.cfg.Timeout, context.DeadlineExceeded)
		}
		return err
	case <-cctx.Done():
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w after %s: %w", ErrMutationTimeout, s.cfg.Timeout, context.DeadlineExceeded)
	}
}

func (s *Store[T]) fail(ctx context.Context, op Op, id string, err error) error {
	var stale *StaleReferenceError
	if !errors.As(err, &stale) {
		err = &RemoteWriteError{Op: op, Table: s.cfg.Table, ID: id, Err: err}
	}
	s.cfg.Logger.Error(ctx, "mutation failed", "op", string(op), "table", s.cfg.Table, "id", id, "err", err)
	s.cfg.Notifier.Notify(ctx, notify.Notification{
		Title:       fmt.Sprintf("Failed to %s %s", op, s.cfg.Label),
		Description: describe(err),
		Variant:     notify.VariantError,
	})
	return err
}

func (s *Store[T]) succeed(ctx context.Context, op Op, id, title string) {
	s.cfg.Logger.Debug(ctx, "mutation confirmed", "op", string(op), "table", s.cfg.Table, "id", id)
	s.cfg.Notifier.Notify(ctx, notify.Notification{Title: title, Variant: notify.VariantSuccess})
}

func describe(err error) string {
	var rw *RemoteWriteError
	if errors.As(err, &rw) {
		return rw.Err.Error()
	}
	return err.Error()
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
