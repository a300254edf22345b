package snapshots

import (
	"context"
	"encoding/json"
	"time"
)

// Row is one cached record. Body is the record as the server sent it.
type Row struct {
	ID   string
	Body json.RawMessage
}

type Repository interface {
	// Replace drops the stored snapshot of (table, ledgerID) and writes rows
	// in order.
	Replace(ctx context.Context, table, ledgerID string, rows []Row, savedAt time.Time) error

	// Load returns the rows in their saved order and the time they were
	// saved. common.ErrorNotFound means the pair was never saved.
	Load(ctx context.Context, table, ledgerID string) ([]Row, time.Time, error)

	// DeleteLedger forgets every table of ledgerID.
	DeleteLedger(ctx context.Context, ledgerID string) error

	Clear(ctx context.Context) error
}
