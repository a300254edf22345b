// Package ledgers stores ledgers and their membership. Every list-backed
// record belongs to exactly one ledger, and access to it is decided by the
// caller's role in ledger_members.
package ledgers

import (
	"context"

	"github.com/dmitrijs2005/kouden/internal/models"
)

type Repository interface {
	Create(ctx context.Context, ledger *models.Ledger) (*models.Ledger, error)

	// AddMember inserts the membership or replaces the role of an existing one.
	AddMember(ctx context.Context, ledgerID, userID string, role models.Role) error

	// GetRole returns common.ErrorNotFound when userID is not a member.
	GetRole(ctx context.Context, ledgerID, userID string) (models.Role, error)

	ListForUser(ctx context.Context, userID string) ([]models.Ledger, error)
	ListMembers(ctx context.Context, ledgerID string) ([]models.Member, error)
}
