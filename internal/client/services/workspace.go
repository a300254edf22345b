package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/client/collection"
	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
)

type WorkspaceOptions struct {
	Rows       client.RowAPI
	Subscriber collection.Subscriber
	DB         *sql.DB
	Notifier   notify.Notifier
	Logger     logging.Logger
	Timeout    time.Duration
	Now        func() time.Time
}

// Workspace holds the three stores of one open ledger together with their
// push listeners and local snapshots.
type Workspace struct {
	Ledger    models.Ledger
	Telegrams *collection.Store[models.Telegram]
	Gifts     *collection.Store[models.Gift]
	Offerings *collection.Store[models.Offering]

	tables []workspaceTable
	db     *sql.DB
	log    logging.Logger
	notify notify.Notifier
	now    func() time.Time
}

// workspaceTable erases the row type so the workspace can drive all three
// stores the same way.
type workspaceTable interface {
	name() string
	loadSnapshot(ctx context.Context, repo snapshots.Repository) (time.Time, error)
	saveSnapshot(ctx context.Context, repo snapshots.Repository, savedAt time.Time) error
	refresh(ctx context.Context) error
	listen(ctx context.Context, sub collection.Subscriber) error
	close() error
}

type tableHandle[T models.Record[T]] struct {
	store    *collection.Store[T]
	listener *collection.Listener[T]
}

func (h *tableHandle[T]) name() string { return h.store.Table() }

func (h *tableHandle[T]) loadSnapshot(ctx context.Context, repo snapshots.Repository) (time.Time, error) {
	saved, savedAt, err := repo.Load(ctx, h.store.Table(), h.store.ParentID())
	if err != nil {
		return time.Time{}, err
	}
	rows := make([]T, 0, len(saved))
	for _, s := range saved {
		var row T
		if err := json.Unmarshal(s.Body, &row); err != nil {
			return time.Time{}, fmt.Errorf("decode %s snapshot row %s: %w", h.store.Table(), s.ID, err)
		}
		rows = append(rows, row)
	}
	h.store.Load(rows)
	return savedAt, nil
}

// confirmedRows is the merged view without optimistic entries: what the
// server is known to hold.
func (h *tableHandle[T]) confirmedRows() []T {
	state := h.store.State()
	overlay := state.Overlay()
	confirmed := make([]collection.Entry[T], 0, len(overlay))
	for _, e := range overlay {
		if !e.Optimistic {
			confirmed = append(confirmed, e)
		}
	}
	return collection.Merge(state.Base(), confirmed)
}

func (h *tableHandle[T]) saveSnapshot(ctx context.Context, repo snapshots.Repository, savedAt time.Time) error {
	rows := h.confirmedRows()
	out := make([]snapshots.Row, 0, len(rows))
	for _, r := range rows {
		id := r.GetMeta().ID
		if collection.IsProvisional(id) {
			continue
		}
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode %s row %s: %w", h.store.Table(), id, err)
		}
		out = append(out, snapshots.Row{ID: id, Body: b})
	}
	return repo.Replace(ctx, h.store.Table(), h.store.ParentID(), out, savedAt)
}

func (h *tableHandle[T]) refresh(ctx context.Context) error {
	return h.store.Refresh(ctx)
}

func (h *tableHandle[T]) listen(ctx context.Context, sub collection.Subscriber) error {
	l, err := h.store.Listen(ctx, sub)
	if err != nil {
		return err
	}
	h.listener = l
	return nil
}

func (h *tableHandle[T]) close() error {
	if h.listener == nil {
		return nil
	}
	return h.listener.Close()
}

func newStoreConfig[T any](table, label string, search func(T) []string, keys []collection.SortKey[T], opts WorkspaceOptions) collection.Config[T] {
	return collection.Config[T]{
		Table:    table,
		Label:    label,
		Search:   search,
		SortKeys: keys,
		Timeout:  opts.Timeout,
		Notifier: opts.Notifier,
		Logger:   opts.Logger,
		Now:      opts.Now,
	}
}

func telegramKeys() []collection.SortKey[models.Telegram] {
	return []collection.SortKey[models.Telegram]{
		collection.StringKey("sender", func(t models.Telegram) string { return t.SenderName }),
		collection.StringKey("organization", func(t models.Telegram) string { return t.SenderOrganization }),
		collection.BoolKey("delivered", func(t models.Telegram) bool { return t.Delivered }),
		collection.TimeKey("created", func(t models.Telegram) time.Time { return t.CreatedAt }),
		collection.TimeKey("updated", func(t models.Telegram) time.Time { return t.UpdatedAt }),
	}
}

func giftKeys() []collection.SortKey[models.Gift] {
	return []collection.SortKey[models.Gift]{
		collection.StringKey("giver", func(g models.Gift) string { return g.GiverName }),
		collection.StringKey("organization", func(g models.Gift) string { return g.Organization }),
		collection.StringKey("relationship", func(g models.Gift) string { return g.Relationship }),
		collection.DecimalKey("amount", func(g models.Gift) decimal.Decimal { return g.Amount }),
		collection.StringKey("return", func(g models.Gift) string { return string(g.ReturnStatus) }),
		collection.TimeKey("created", func(g models.Gift) time.Time { return g.CreatedAt }),
		collection.TimeKey("updated", func(g models.Gift) time.Time { return g.UpdatedAt }),
	}
}

func offeringKeys() []collection.SortKey[models.Offering] {
	return []collection.SortKey[models.Offering]{
		collection.StringKey("type", func(o models.Offering) string { return o.OfferingType }),
		collection.StringKey("provider", func(o models.Offering) string { return o.ProviderName }),
		collection.StringKey("organization", func(o models.Offering) string { return o.Organization }),
		collection.NullDecimalKey("price", func(o models.Offering) decimal.NullDecimal { return o.Price }),
		collection.IntKey("quantity", func(o models.Offering) int { return o.Quantity }),
		collection.TimeKey("created", func(o models.Offering) time.Time { return o.CreatedAt }),
		collection.TimeKey("updated", func(o models.Offering) time.Time { return o.UpdatedAt }),
	}
}

// OpenWorkspace builds the stores of ledger and seeds them from the local
// snapshot. When online it then refreshes every table from the server,
// saves fresh snapshots and subscribes to push channels. A failed
// subscription is reported but does not prevent opening the ledger.
func OpenWorkspace(ctx context.Context, ledger models.Ledger, online bool, opts WorkspaceOptions) (*Workspace, error) {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewDiscard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := opts.Logger.With("ledger", ledger.ID)

	telegrams := collection.NewStore(ledger.ID,
		client.NewTable[models.Telegram](opts.Rows, models.TableTelegrams, ledger.ID),
		newStoreConfig(models.TableTelegrams, "telegram", models.Telegram.SearchFields, telegramKeys(), opts))
	gifts := collection.NewStore(ledger.ID,
		client.NewTable[models.Gift](opts.Rows, models.TableGifts, ledger.ID),
		newStoreConfig(models.TableGifts, "gift", models.Gift.SearchFields, giftKeys(), opts))
	offerings := collection.NewStore(ledger.ID,
		client.NewTable[models.Offering](opts.Rows, models.TableOfferings, ledger.ID),
		newStoreConfig(models.TableOfferings, "offering", models.Offering.SearchFields, offeringKeys(), opts))

	w := &Workspace{
		Ledger:    ledger,
		Telegrams: telegrams,
		Gifts:     gifts,
		Offerings: offerings,
		tables: []workspaceTable{
			&tableHandle[models.Telegram]{store: telegrams},
			&tableHandle[models.Gift]{store: gifts},
			&tableHandle[models.Offering]{store: offerings},
		},
		db:     opts.DB,
		log:    log,
		notify: opts.Notifier,
		now:    opts.Now,
	}

	repo := snapshots.NewSQLiteRepository(opts.DB)
	loaded := 0
	for _, t := range w.tables {
		savedAt, err := t.loadSnapshot(ctx, repo)
		switch {
		case errors.Is(err, common.ErrorNotFound):
		case err != nil:
			log.Warn(ctx, "snapshot load failed", "table", t.name(), "err", err)
		default:
			loaded++
			log.Debug(ctx, "snapshot loaded", "table", t.name(), "saved_at", savedAt)
		}
	}

	if !online {
		if loaded == 0 {
			return nil, client.ErrLocalDataNotAvailable
		}
		return w, nil
	}

	if err := w.RefreshAll(ctx); err != nil {
		if loaded == 0 {
			return nil, err
		}
		log.Warn(ctx, "refresh failed, showing saved rows", "err", err)
	}

	if opts.Subscriber != nil {
		for _, t := range w.tables {
			if err := t.listen(ctx, opts.Subscriber); err != nil {
				log.Error(ctx, "live updates unavailable", "table", t.name(), "err", err)
				w.notify.Notify(ctx, notify.Notification{
					Title:       "Live updates unavailable",
					Description: fmt.Sprintf("%s: %v", t.name(), err),
					Variant:     notify.VariantError,
				})
			}
		}
	}
	return w, nil
}

// CanWrite reports whether the caller may change rows of the ledger.
func (w *Workspace) CanWrite() bool {
	return w.Ledger.Role == "" || w.Ledger.Role.CanWrite()
}

// Refresh refetches one table and saves its snapshot.
func (w *Workspace) Refresh(ctx context.Context, table string) error {
	for _, t := range w.tables {
		if t.name() == table {
			if err := t.refresh(ctx); err != nil {
				return err
			}
			return w.save(ctx, t)
		}
	}
	return fmt.Errorf("unknown table %q", table)
}

// RefreshAll refetches every table. Tables that refreshed are saved even
// when another one failed.
func (w *Workspace) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, t := range w.tables {
		if err := t.refresh(ctx); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := w.save(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *Workspace) save(ctx context.Context, t workspaceTable) error {
	savedAt := w.now()
	err := dbx.WithTx(ctx, w.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return t.saveSnapshot(ctx, snapshots.NewSQLiteRepository(tx), savedAt)
	})
	if err != nil {
		w.log.Error(ctx, "snapshot save failed", "table", t.name(), "err", err)
		return fmt.Errorf("save %s snapshot: %w", t.name(), err)
	}
	return nil
}

// Close unsubscribes every listener and saves the final snapshots.
func (w *Workspace) Close(ctx context.Context) error {
	var errs []error
	for _, t := range w.tables {
		if err := t.close(); err != nil {
			errs = append(errs, err)
		}
		if err := w.save(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
