package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/kouden/internal/models"
)

// Table is the remote store for one table of one ledger. It implements
// collection.RemoteStore[T].
type Table[T models.Record[T]] struct {
	api      RowAPI
	table    string
	ledgerID string
}

func NewTable[T models.Record[T]](api RowAPI, table, ledgerID string) *Table[T] {
	return &Table[T]{api: api, table: table, ledgerID: ledgerID}
}

func (t *Table[T]) Select(ctx context.Context, parentID string) ([]T, error) {
	raw, err := t.api.SelectRows(ctx, t.table, parentID)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0, len(raw))
	for _, r := range raw {
		row, err := t.decode(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *Table[T]) Insert(ctx context.Context, row T) (T, error) {
	var zero T
	body, err := json.Marshal(row)
	if err != nil {
		return zero, fmt.Errorf("encode %s row: %w", t.table, err)
	}
	out, err := t.api.InsertRow(ctx, t.table, body)
	if err != nil {
		return zero, err
	}
	return t.decode(out)
}

func (t *Table[T]) Update(ctx context.Context, id string, row T) (T, error) {
	var zero T
	body, err := json.Marshal(row)
	if err != nil {
		return zero, fmt.Errorf("encode %s row: %w", t.table, err)
	}
	out, err := t.api.UpdateRow(ctx, t.table, t.ledgerID, id, body)
	if err != nil {
		return zero, err
	}
	return t.decode(out)
}

// Delete is idempotent: deleting a row that no longer exists succeeds.
func (t *Table[T]) Delete(ctx context.Context, id string) error {
	_, err := t.api.DeleteRow(ctx, t.table, t.ledgerID, id)
	return err
}

// DeleteMany is all-or-nothing on the server.
func (t *Table[T]) DeleteMany(ctx context.Context, ids []string) error {
	_, err := t.api.DeleteRows(ctx, t.table, t.ledgerID, ids)
	return err
}

func (t *Table[T]) decode(raw json.RawMessage) (T, error) {
	var row T
	if err := json.Unmarshal(raw, &row); err != nil {
		return row, fmt.Errorf("decode %s row: %w", t.table, err)
	}
	return row, nil
}
