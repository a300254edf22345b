package records

import (
	"context"
)

type Repository[T any] interface {
	// List returns the rows of one ledger, oldest first.
	List(ctx context.Context, ledgerID string) ([]T, error)

	// Get returns common.ErrorNotFound when id is absent.
	Get(ctx context.Context, id string) (T, error)

	// Insert stores rec with the id, ledger and author from its meta and
	// returns the row with server timestamps filled in.
	Insert(ctx context.Context, rec T) (T, error)

	// Update replaces the domain columns of rec and bumps updated_at.
	// It returns common.ErrorNotFound when the row is absent.
	Update(ctx context.Context, rec T) (T, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, ledgerID, id string) (bool, error)

	// DeleteMany removes every listed row or fails with
	// common.ErrorNotFound when any of them is missing. Callers run it in a
	// transaction so a partial delete is rolled back.
	DeleteMany(ctx context.Context, ledgerID string, ids []string) (int64, error)
}
