// Package records stores the list-backed ledger tables (telegrams, gifts,
// offerings) through one generic repository parameterised by a Schema.
package records

import (
	"github.com/dmitrijs2005/kouden/internal/models"
)

// metaColumns prefix every select and returning clause.
var metaColumns = []string{"id", "ledger_id", "created_at", "updated_at", "created_by"}

// Schema maps a record type onto its table. Columns excludes the meta
// columns; Values and Targets must follow the order of Columns.
type Schema[T any] struct {
	Table   string
	Columns []string
	Values  func(rec T) []any
	Targets func(rec *T) []any
	Meta    func(rec *T) *models.Meta
}

var TelegramSchema = Schema[models.Telegram]{
	Table: models.TableTelegrams,
	Columns: []string{
		"sender_name", "sender_organization", "sender_position", "message", "notes", "delivered",
	},
	Values: func(t models.Telegram) []any {
		return []any{t.SenderName, t.SenderOrganization, t.SenderPosition, t.Message, t.Notes, t.Delivered}
	},
	Targets: func(t *models.Telegram) []any {
		return []any{&t.SenderName, &t.SenderOrganization, &t.SenderPosition, &t.Message, &t.Notes, &t.Delivered}
	},
	Meta: func(t *models.Telegram) *models.Meta { return &t.Meta },
}

var GiftSchema = Schema[models.Gift]{
	Table: models.TableGifts,
	Columns: []string{
		"giver_name", "organization", "position", "relationship", "amount", "return_status", "notes",
	},
	Values: func(g models.Gift) []any {
		status := g.ReturnStatus
		if status == "" {
			status = models.ReturnPending
		}
		return []any{g.GiverName, g.Organization, g.Position, g.Relationship, g.Amount, string(status), g.Notes}
	},
	Targets: func(g *models.Gift) []any {
		return []any{&g.GiverName, &g.Organization, &g.Position, &g.Relationship, &g.Amount, &g.ReturnStatus, &g.Notes}
	},
	Meta: func(g *models.Gift) *models.Meta { return &g.Meta },
}

var OfferingSchema = Schema[models.Offering]{
	Table: models.TableOfferings,
	Columns: []string{
		"offering_type", "provider_name", "organization", "price", "quantity", "photo_key", "notes",
	},
	Values: func(o models.Offering) []any {
		return []any{o.OfferingType, o.ProviderName, o.Organization, o.Price, o.Quantity, o.PhotoKey, o.Notes}
	},
	Targets: func(o *models.Offering) []any {
		return []any{&o.OfferingType, &o.ProviderName, &o.Organization, &o.Price, &o.Quantity, &o.PhotoKey, &o.Notes}
	},
	Meta: func(o *models.Offering) *models.Meta { return &o.Meta },
}
