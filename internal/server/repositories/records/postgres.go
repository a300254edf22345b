package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
)

type PostgresRepository[T any] struct {
	db     dbx.DBTX
	schema Schema[T]

	selectCols string
	listQuery  string
	getQuery   string
	insertSQL  string
	updateSQL  string
	deleteSQL  string
}

func NewPostgresRepository[T any](db dbx.DBTX, schema Schema[T]) *PostgresRepository[T] {
	r := &PostgresRepository[T]{db: db, schema: schema}

	all := append(append([]string{}, metaColumns...), schema.Columns...)
	r.selectCols = strings.Join(all, ", ")

	r.listQuery = fmt.Sprintf(
		"SELECT %s FROM %s WHERE ledger_id = $1 ORDER BY created_at, id",
		r.selectCols, schema.Table)

	r.getQuery = fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectCols, schema.Table)

	insertCols := append([]string{"id", "ledger_id", "created_by"}, schema.Columns...)
	r.insertSQL = fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		schema.Table, strings.Join(insertCols, ", "), dbx.Placeholders(1, len(insertCols)), r.selectCols)

	sets := make([]string, 0, len(schema.Columns)+1)
	for i, c := range schema.Columns {
		sets = append(sets, c+" = $"+strconv.Itoa(i+3))
	}
	sets = append(sets, "updated_at = now()")
	r.updateSQL = fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $1 AND ledger_id = $2 RETURNING %s",
		schema.Table, strings.Join(sets, ", "), r.selectCols)

	r.deleteSQL = fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND ledger_id = $2", schema.Table)

	return r
}

func (r *PostgresRepository[T]) scan(row dbx.Scanner) (T, error) {
	var rec T
	m := r.schema.Meta(&rec)
	dest := append([]any{&m.ID, &m.LedgerID, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy}, r.schema.Targets(&rec)...)
	err := row.Scan(dest...)
	return rec, err
}

func (r *PostgresRepository[T]) List(ctx context.Context, ledgerID string) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.listQuery, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	result, err := dbx.CollectRows(rows, r.scan)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository[T]) Get(ctx context.Context, id string) (T, error) {
	rec, err := r.scan(r.db.QueryRowContext(ctx, r.getQuery, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, common.ErrorNotFound
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository[T]) Insert(ctx context.Context, rec T) (T, error) {
	m := r.schema.Meta(&rec)
	args := append([]any{m.ID, m.LedgerID, m.CreatedBy}, r.schema.Values(rec)...)

	saved, err := r.scan(r.db.QueryRowContext(ctx, r.insertSQL, args...))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}

func (r *PostgresRepository[T]) Update(ctx context.Context, rec T) (T, error) {
	m := r.schema.Meta(&rec)
	args := append([]any{m.ID, m.LedgerID}, r.schema.Values(rec)...)

	saved, err := r.scan(r.db.QueryRowContext(ctx, r.updateSQL, args...))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, common.ErrorNotFound
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}

func (r *PostgresRepository[T]) Delete(ctx context.Context, ledgerID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, id, ledgerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository[T]) DeleteMany(ctx context.Context, ledgerID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE ledger_id = $1 AND id IN (%s)",
		r.schema.Table, dbx.Placeholders(2, len(ids)))

	args := make([]any, 0, len(ids)+1)
	args = append(args, ledgerID)
	for _, id := range ids {
		args = append(args, id)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	if n != int64(len(ids)) {
		return n, fmt.Errorf("%w: %d of %d rows", common.ErrorNotFound, n, len(ids))
	}
	return n, nil
}

// OfferingsRepository adds photo bookkeeping to the generic offerings table.
type OfferingsRepository struct {
	*PostgresRepository[models.Offering]
}

func NewOfferingsRepository(db dbx.DBTX) *OfferingsRepository {
	return &OfferingsRepository{NewPostgresRepository(db, OfferingSchema)}
}

// SetPhotoKey stores the object key of an uploaded photo. A nil key clears it.
func (r *OfferingsRepository) SetPhotoKey(ctx context.Context, id string, key *string) (models.Offering, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET photo_key = $2, updated_at = now() WHERE id = $1 RETURNING %s",
		models.TableOfferings, r.selectCols)

	saved, err := r.scan(r.db.QueryRowContext(ctx, query, id, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Offering{}, common.ErrorNotFound
		}
		return models.Offering{}, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}
