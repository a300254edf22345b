package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, table, ledgerID string, rows []Row, savedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshot_rows WHERE table_name = ? AND ledger_id = ?`, table, ledgerID); err != nil {
		return fmt.Errorf("failed to clear snapshot %s/%s: %w", table, ledgerID, err)
	}

	for i, row := range rows {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO snapshot_rows (table_name, ledger_id, id, position, body)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(table_name, ledger_id, id) DO UPDATE SET position = excluded.position, body = excluded.body
		`, table, ledgerID, row.ID, i, []byte(row.Body))
		if err != nil {
			return fmt.Errorf("failed to write snapshot row %s: %w", row.ID, err)
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (table_name, ledger_id, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(table_name, ledger_id) DO UPDATE SET saved_at = excluded.saved_at
	`, table, ledgerID, savedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to stamp snapshot %s/%s: %w", table, ledgerID, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, table, ledgerID string) ([]Row, time.Time, error) {
	var savedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT saved_at FROM snapshots WHERE table_name = ? AND ledger_id = ?`, table, ledgerID).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, common.ErrorNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot %s/%s: %w", table, ledgerID, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, body FROM snapshot_rows
		WHERE table_name = ? AND ledger_id = ?
		ORDER BY position
	`, table, ledgerID)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to select snapshot rows: %w", err)
	}
	result, err := dbx.CollectRows(rows, func(sc dbx.Scanner) (Row, error) {
		var item Row
		var body []byte
		err := sc.Scan(&item.ID, &body)
		item.Body = body
		return item, err
	})
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to scan snapshot rows: %w", err)
	}
	return result, savedAt, nil
}

func (r *SQLiteRepository) DeleteLedger(ctx context.Context, ledgerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshot_rows WHERE ledger_id = ?`, ledgerID); err != nil {
		return fmt.Errorf("failed to delete snapshot rows of %s: %w", ledgerID, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE ledger_id = ?`, ledgerID); err != nil {
		return fmt.Errorf("failed to delete snapshots of %s: %w", ledgerID, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshot_rows`); err != nil {
		return fmt.Errorf("failed to clear snapshot rows: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
