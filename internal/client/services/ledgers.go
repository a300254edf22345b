package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// LedgerService lists, creates and shares ledgers. Listings made online are
// cached so the ledger picker also works offline.
type LedgerService interface {
	List(ctx context.Context, online bool) ([]models.Ledger, error)
	Create(ctx context.Context, l models.Ledger) (models.Ledger, error)
	Share(ctx context.Context, ledgerID, username string, role models.Role) (models.Member, error)
	Members(ctx context.Context, ledgerID string) ([]models.Member, error)
	Find(ctx context.Context, online bool, ref string) (models.Ledger, error)
	Remember(ctx context.Context, ledgerID string) error
	Last(ctx context.Context) (string, error)
}

type ledgerService struct {
	client client.Client
	db     *sql.DB
}

func NewLedgerService(client client.Client, db *sql.DB) LedgerService {
	return &ledgerService{client: client, db: db}
}

func (s *ledgerService) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *ledgerService) List(ctx context.Context, online bool) ([]models.Ledger, error) {
	if !online {
		return s.cached(ctx)
	}

	ledgers, err := s.client.ListLedgers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}

	if err := metadata.SetJSON(ctx, s.repo(), metadata.KeyLedgers, ledgers); err != nil {
		return nil, fmt.Errorf("cache ledgers: %w", err)
	}
	return ledgers, nil
}

func (s *ledgerService) cached(ctx context.Context) ([]models.Ledger, error) {
	var ledgers []models.Ledger
	found, err := metadata.GetJSON(ctx, s.repo(), metadata.KeyLedgers, &ledgers)
	if err != nil {
		return nil, fmt.Errorf("read cached ledgers: %w", err)
	}
	if !found {
		return nil, client.ErrLocalDataNotAvailable
	}
	return ledgers, nil
}

func (s *ledgerService) Create(ctx context.Context, l models.Ledger) (models.Ledger, error) {
	if strings.TrimSpace(l.Title) == "" {
		return models.Ledger{}, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.client.CreateLedger(ctx, l)
}

func (s *ledgerService) Share(ctx context.Context, ledgerID, username string, role models.Role) (models.Member, error) {
	if !role.Valid() || role == models.RoleOwner {
		return models.Member{}, fmt.Errorf("%w: role must be editor or viewer", common.ErrorValidation)
	}
	return s.client.ShareLedger(ctx, ledgerID, username, role)
}

func (s *ledgerService) Members(ctx context.Context, ledgerID string) ([]models.Member, error) {
	return s.client.ListMembers(ctx, ledgerID)
}

// Find resolves ref as a ledger id, then as a 1-based position in the
// listing, then as an exact title.
func (s *ledgerService) Find(ctx context.Context, online bool, ref string) (models.Ledger, error) {
	ledgers, err := s.List(ctx, online)
	if err != nil {
		return models.Ledger{}, err
	}

	for _, l := range ledgers {
		if l.ID == ref {
			return l, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ledgers) {
		return ledgers[n-1], nil
	}
	for _, l := range ledgers {
		if l.Title == ref {
			return l, nil
		}
	}
	return models.Ledger{}, fmt.Errorf("ledger %q: %w", ref, common.ErrorNotFound)
}

func (s *ledgerService) Remember(ctx context.Context, ledgerID string) error {
	return s.repo().Set(ctx, metadata.KeyLastLedger, []byte(ledgerID))
}

// Last returns the ledger opened most recently, or "".
func (s *ledgerService) Last(ctx context.Context) (string, error) {
	b, err := s.repo().Get(ctx, metadata.KeyLastLedger)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
