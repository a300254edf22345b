package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/repomanager"
)

// Publisher fans a change event out to the subscribers of channel.
type Publisher interface {
	Publish(channel string, ev models.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, models.Event) {}

// authorize returns the caller's role in the ledger. Non-members and
// viewers asking for write access get common.ErrorForbidden.
func authorize(ctx context.Context, rm repomanager.RepositoryManager, db dbx.DBTX, ledgerID, userID string, write bool) (models.Role, error) {
	if ledgerID == "" {
		return "", fmt.Errorf("%w: ledger id is required", common.ErrorValidation)
	}
	if err := checkIDs(ledgerID); err != nil {
		return "", err
	}
	role, err := rm.Ledgers(db).GetRole(ctx, ledgerID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorForbidden
		}
		return "", err
	}
	if write && !role.CanWrite() {
		return role, common.ErrorForbidden
	}
	return role, nil
}

// checkIDs rejects ids that are not UUIDs; every server table keys on uuid
// columns.
func checkIDs(ids ...string) error {
	for _, id := range ids {
		if err := uuid.Validate(id); err != nil {
			return fmt.Errorf("%w: malformed id %q", common.ErrorValidation, id)
		}
	}
	return nil
}
