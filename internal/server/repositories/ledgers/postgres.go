package ledgers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ledger *models.Ledger) (*models.Ledger, error) {
	query := `
		INSERT INTO ledgers (title, deceased_name, funeral_date, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	var funeral sql.NullTime
	if ledger.FuneralDate != nil {
		funeral = sql.NullTime{Time: *ledger.FuneralDate, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, ledger.Title, ledger.DeceasedName, funeral, ledger.OwnerID).
		Scan(&ledger.ID, &ledger.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ledger, nil
}

func (r *PostgresRepository) AddMember(ctx context.Context, ledgerID, userID string, role models.Role) error {
	query := `
		INSERT INTO ledger_members (ledger_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (ledger_id, user_id) DO UPDATE SET role = EXCLUDED.role
	`
	if _, err := r.db.ExecContext(ctx, query, ledgerID, userID, string(role)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetRole(ctx context.Context, ledgerID, userID string) (models.Role, error) {
	query := `
		SELECT role FROM ledger_members
		WHERE ledger_id = $1 AND user_id = $2
	`
	var role string
	if err := r.db.QueryRowContext(ctx, query, ledgerID, userID).Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return models.Role(role), nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.Ledger, error) {
	query := `
		SELECT l.id, l.title, l.deceased_name, l.funeral_date, l.owner_id, l.created_at, m.role
		FROM ledgers l
		JOIN ledger_members m ON m.ledger_id = l.id
		WHERE m.user_id = $1
		ORDER BY l.created_at DESC, l.id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Ledger{}
	for rows.Next() {
		var (
			l       models.Ledger
			funeral sql.NullTime
			role    string
		)
		if err := rows.Scan(&l.ID, &l.Title, &l.DeceasedName, &funeral, &l.OwnerID, &l.CreatedAt, &role); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if funeral.Valid {
			t := funeral.Time
			l.FuneralDate = &t
		}
		l.Role = models.Role(role)
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, ledgerID string) ([]models.Member, error) {
	query := `
		SELECT m.user_id, u.username, m.role
		FROM ledger_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.ledger_id = $1
		ORDER BY u.username
	`
	rows, err := r.db.QueryContext(ctx, query, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Member{}
	for rows.Next() {
		m := models.Member{LedgerID: ledgerID}
		var role string
		if err := rows.Scan(&m.UserID, &m.UserName, &role); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.Role = models.Role(role)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
