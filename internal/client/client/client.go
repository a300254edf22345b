package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/kouden/internal/models"
)

// Client is the backend API used by the CLI services.
type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, key []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, key []byte) error
	Logout()
	AccessToken() string
	Refresh(ctx context.Context) error
	Ping(ctx context.Context) error

	ListLedgers(ctx context.Context) ([]models.Ledger, error)
	CreateLedger(ctx context.Context, l models.Ledger) (models.Ledger, error)
	ShareLedger(ctx context.Context, ledgerID, username string, role models.Role) (models.Member, error)
	ListMembers(ctx context.Context, ledgerID string) ([]models.Member, error)

	RowAPI

	GetPhotoUploadURL(ctx context.Context, offeringID, contentType string) (string, string, error)
	GetPhotoURL(ctx context.Context, offeringID string) (string, error)
}

// RowAPI is the table-agnostic row transport. Rows travel as JSON.
type RowAPI interface {
	SelectRows(ctx context.Context, table, ledgerID string) ([]json.RawMessage, error)
	InsertRow(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error)
	UpdateRow(ctx context.Context, table, ledgerID, id string, row json.RawMessage) (json.RawMessage, error)
	DeleteRow(ctx context.Context, table, ledgerID, id string) (int, error)
	DeleteRows(ctx context.Context, table, ledgerID string, ids []string) (int, error)
}
