package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/repomanager"
)

// LedgerService manages ledgers and who may see or edit them.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager) *LedgerService {
	return &LedgerService{db: db, repomanager: m}
}

func (s *LedgerService) List(ctx context.Context, userID string) ([]models.Ledger, error) {
	ledgers, err := s.repomanager.Ledgers(s.db).ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing ledgers: %w", err)
	}
	return ledgers, nil
}

// Create stores the ledger and makes userID its owner.
func (s *LedgerService) Create(ctx context.Context, userID string, ledger models.Ledger) (*models.Ledger, error) {
	if strings.TrimSpace(ledger.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	ledger.OwnerID = userID

	var created *models.Ledger
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Ledgers(tx)
		l, err := repo.Create(ctx, &ledger)
		if err != nil {
			return err
		}
		if err := repo.AddMember(ctx, l.ID, userID, models.RoleOwner); err != nil {
			return err
		}
		l.Role = models.RoleOwner
		created = l
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating ledger: %w", err)
	}
	return created, nil
}

// Share grants username the given role. Only owners may share, and
// ownership itself cannot be granted.
func (s *LedgerService) Share(ctx context.Context, userID, ledgerID, username string, role models.Role) (*models.Member, error) {
	if role != models.RoleEditor && role != models.RoleViewer {
		return nil, fmt.Errorf("%w: role must be editor or viewer", common.ErrorValidation)
	}

	callerRole, err := authorize(ctx, s.repomanager, s.db, ledgerID, userID, true)
	if err != nil {
		return nil, err
	}
	if callerRole != models.RoleOwner {
		return nil, common.ErrorForbidden
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.ID == userID {
		return nil, fmt.Errorf("%w: cannot change own role", common.ErrorValidation)
	}

	if err := s.repomanager.Ledgers(s.db).AddMember(ctx, ledgerID, user.ID, role); err != nil {
		return nil, fmt.Errorf("error sharing ledger: %w", err)
	}
	return &models.Member{LedgerID: ledgerID, UserID: user.ID, UserName: user.UserName, Role: role}, nil
}

func (s *LedgerService) Members(ctx context.Context, userID, ledgerID string) ([]models.Member, error) {
	if _, err := authorize(ctx, s.repomanager, s.db, ledgerID, userID, false); err != nil {
		return nil, err
	}
	members, err := s.repomanager.Ledgers(s.db).ListMembers(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	return members, nil
}
