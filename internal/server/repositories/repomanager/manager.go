// Package repomanager vends repository implementations bound to a database
// handle or a transaction, and runs the schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/ledgers"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/records"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/users"
)

// OfferingsRepository is the offerings table plus photo bookkeeping.
type OfferingsRepository interface {
	records.Repository[models.Offering]
	SetPhotoKey(ctx context.Context, id string, key *string) (models.Offering, error)
}

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Ledgers(db dbx.DBTX) ledgers.Repository
	Telegrams(db dbx.DBTX) records.Repository[models.Telegram]
	Gifts(db dbx.DBTX) records.Repository[models.Gift]
	Offerings(db dbx.DBTX) OfferingsRepository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
