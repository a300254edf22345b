package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/records"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/repomanager"
)

type entity[T any] interface {
	models.Record[T]
	Validate() error
}

// rowTable adapts one typed repository to the JSON rows carried on the wire.
type rowTable[T entity[T]] struct {
	name string
	repo func(db dbx.DBTX) records.Repository[T]
}

type rowHandler interface {
	list(ctx context.Context, db dbx.DBTX, ledgerID string) ([]json.RawMessage, error)
	insert(ctx context.Context, db dbx.DBTX, meta models.Meta, raw json.RawMessage) (json.RawMessage, error)
	update(ctx context.Context, db dbx.DBTX, ledgerID, id string, raw json.RawMessage) (json.RawMessage, error)
	remove(ctx context.Context, db dbx.DBTX, ledgerID, id string) (bool, error)
	removeMany(ctx context.Context, db dbx.DBTX, ledgerID string, ids []string) (int64, error)
}

func (t *rowTable[T]) decode(raw json.RawMessage) (T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("%w: malformed %s row: %v", common.ErrorValidation, t.name, err)
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

func (t *rowTable[T]) list(ctx context.Context, db dbx.DBTX, ledgerID string) ([]json.RawMessage, error) {
	rows, err := t.repo(db).List(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (t *rowTable[T]) insert(ctx context.Context, db dbx.DBTX, meta models.Meta, raw json.RawMessage) (json.RawMessage, error) {
	rec, err := t.decode(raw)
	if err != nil {
		return nil, err
	}
	saved, err := t.repo(db).Insert(ctx, rec.WithMeta(meta))
	if err != nil {
		return nil, err
	}
	return json.Marshal(saved)
}

func (t *rowTable[T]) update(ctx context.Context, db dbx.DBTX, ledgerID, id string, raw json.RawMessage) (json.RawMessage, error) {
	rec, err := t.decode(raw)
	if err != nil {
		return nil, err
	}
	meta := rec.GetMeta()
	meta.ID, meta.LedgerID = id, ledgerID
	saved, err := t.repo(db).Update(ctx, rec.WithMeta(meta))
	if err != nil {
		return nil, err
	}
	return json.Marshal(saved)
}

func (t *rowTable[T]) remove(ctx context.Context, db dbx.DBTX, ledgerID, id string) (bool, error) {
	return t.repo(db).Delete(ctx, ledgerID, id)
}

func (t *rowTable[T]) removeMany(ctx context.Context, db dbx.DBTX, ledgerID string, ids []string) (int64, error) {
	return t.repo(db).DeleteMany(ctx, ledgerID, ids)
}

// RowService serves the list-backed tables. Writes are authorized by ledger
// role, persisted, then published to the realtime channel of the ledger.
type RowService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   Publisher
	logger      logging.Logger
	tables      map[string]rowHandler
	newID       func() string
}

func NewRowService(db *sql.DB, m repomanager.RepositoryManager, pub Publisher, logger logging.Logger) *RowService {
	if pub == nil {
		pub = nopPublisher{}
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &RowService{
		db:          db,
		repomanager: m,
		publisher:   pub,
		logger:      logger,
		newID:       uuid.NewString,
		tables: map[string]rowHandler{
			models.TableTelegrams: &rowTable[models.Telegram]{name: models.TableTelegrams, repo: m.Telegrams},
			models.TableGifts:     &rowTable[models.Gift]{name: models.TableGifts, repo: m.Gifts},
			models.TableOfferings: &rowTable[models.Offering]{
				name: models.TableOfferings,
				repo: func(db dbx.DBTX) records.Repository[models.Offering] { return m.Offerings(db) },
			},
		},
	}
}

func (s *RowService) handler(table string) (rowHandler, error) {
	h, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownTable, table)
	}
	return h, nil
}

func (s *RowService) Select(ctx context.Context, userID, table, ledgerID string) ([]json.RawMessage, error) {
	h, err := s.handler(table)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, s.repomanager, s.db, ledgerID, userID, false); err != nil {
		return nil, err
	}
	return h.list(ctx, s.db, ledgerID)
}

// Insert stores raw as a new row. The server assigns the id and author;
// any id the client sent is discarded.
func (s *RowService) Insert(ctx context.Context, userID, table string, raw json.RawMessage) (json.RawMessage, error) {
	h, err := s.handler(table)
	if err != nil {
		return nil, err
	}

	var meta models.Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: malformed row: %v", common.ErrorValidation, err)
	}
	if _, err := authorize(ctx, s.repomanager, s.db, meta.LedgerID, userID, true); err != nil {
		return nil, err
	}

	saved, err := h.insert(ctx, s.db, models.Meta{ID: s.newID(), LedgerID: meta.LedgerID, CreatedBy: userID}, raw)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, table, meta.LedgerID, models.Event{Type: models.EventInsert, Table: table, New: saved})
	return saved, nil
}

func (s *RowService) Update(ctx context.Context, userID, table, ledgerID, id string, raw json.RawMessage) (json.RawMessage, error) {
	h, err := s.handler(table)
	if err != nil {
		return nil, err
	}
	if err := checkIDs(id); err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, s.repomanager, s.db, ledgerID, userID, true); err != nil {
		return nil, err
	}

	saved, err := h.update(ctx, s.db, ledgerID, id, raw)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, table, ledgerID, models.Event{Type: models.EventUpdate, Table: table, New: saved, Old: &models.OldRef{ID: id}})
	return saved, nil
}

// Delete removes one row. Deleting an absent row succeeds with a count of
// zero and publishes nothing.
func (s *RowService) Delete(ctx context.Context, userID, table, ledgerID, id string) (int, error) {
	h, err := s.handler(table)
	if err != nil {
		return 0, err
	}
	if err := checkIDs(id); err != nil {
		return 0, err
	}
	if _, err := authorize(ctx, s.repomanager, s.db, ledgerID, userID, true); err != nil {
		return 0, err
	}

	ok, err := h.remove(ctx, s.db, ledgerID, id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	s.publish(ctx, table, ledgerID, models.Event{Type: models.EventDelete, Table: table, Old: &models.OldRef{ID: id}})
	return 1, nil
}

// DeleteMany removes all of ids or none of them.
func (s *RowService) DeleteMany(ctx context.Context, userID, table, ledgerID string, ids []string) (int, error) {
	h, err := s.handler(table)
	if err != nil {
		return 0, err
	}
	if err := checkIDs(ids...); err != nil {
		return 0, err
	}
	if _, err := authorize(ctx, s.repomanager, s.db, ledgerID, userID, true); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var n int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		n, err = h.removeMany(ctx, tx, ledgerID, ids)
		return err
	})
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		s.publish(ctx, table, ledgerID, models.Event{Type: models.EventDelete, Table: table, Old: &models.OldRef{ID: id}})
	}
	return int(n), nil
}

func (s *RowService) publish(ctx context.Context, table, ledgerID string, ev models.Event) {
	channel := common.ChannelKey(table, ledgerID)
	s.logger.Debug(ctx, "publishing change", "channel", channel, "event", ev.Type)
	s.publisher.Publish(channel, ev)
}
