package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
	"github.com/dmitrijs2005/kouden/internal/server/migrations"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/ledgers"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/records"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/users"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Ledgers(db dbx.DBTX) ledgers.Repository {
	return ledgers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Telegrams(db dbx.DBTX) records.Repository[models.Telegram] {
	return records.NewPostgresRepository(db, records.TelegramSchema)
}

func (m *PostgresRepositoryManager) Gifts(db dbx.DBTX) records.Repository[models.Gift] {
	return records.NewPostgresRepository(db, records.GiftSchema)
}

func (m *PostgresRepositoryManager) Offerings(db dbx.DBTX) OfferingsRepository {
	return records.NewOfferingsRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
