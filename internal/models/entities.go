package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/kouden/internal/common"
)

// Telegram is a condolence telegram (弔電) received for a ledger.
type Telegram struct {
	Meta
	SenderName         string `json:"sender_name"`
	SenderOrganization string `json:"sender_organization"`
	SenderPosition     string `json:"sender_position"`
	Message            string `json:"message"`
	Notes              string `json:"notes"`
	Delivered          bool   `json:"delivered"`
}

func (t Telegram) WithMeta(m Meta) Telegram { t.Meta = m; return t }

func (t Telegram) SearchFields() []string {
	return []string{t.SenderName, t.SenderOrganization, t.SenderPosition, t.Message}
}

func (t Telegram) Validate() error {
	if strings.TrimSpace(t.SenderName) == "" {
		return fmt.Errorf("%w: sender name is required", common.ErrorValidation)
	}
	return nil
}

// ReturnStatus tracks the return gift (香典返し) for a monetary gift.
type ReturnStatus string

const (
	ReturnPending     ReturnStatus = "pending"
	ReturnArranged    ReturnStatus = "arranged"
	ReturnSent        ReturnStatus = "sent"
	ReturnNotRequired ReturnStatus = "not_required"
)

func (s ReturnStatus) Valid() bool {
	switch s {
	case ReturnPending, ReturnArranged, ReturnSent, ReturnNotRequired:
		return true
	}
	return false
}

// Gift is a monetary condolence gift (香典).
type Gift struct {
	Meta
	GiverName    string          `json:"giver_name"`
	Organization string          `json:"organization"`
	Position     string          `json:"position"`
	Relationship string          `json:"relationship"`
	Amount       decimal.Decimal `json:"amount"`
	ReturnStatus ReturnStatus    `json:"return_status"`
	Notes        string          `json:"notes"`
}

func (g Gift) WithMeta(m Meta) Gift { g.Meta = m; return g }

func (g Gift) SearchFields() []string {
	return []string{g.GiverName, g.Organization, g.Position, g.Relationship}
}

func (g Gift) Validate() error {
	if strings.TrimSpace(g.GiverName) == "" {
		return fmt.Errorf("%w: giver name is required", common.ErrorValidation)
	}
	if g.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", common.ErrorValidation)
	}
	if g.ReturnStatus != "" && !g.ReturnStatus.Valid() {
		return fmt.Errorf("%w: unknown return status %q", common.ErrorValidation, g.ReturnStatus)
	}
	return nil
}

// Offering is a physical offering (供物, 供花) such as flowers or a basket.
type Offering struct {
	Meta
	OfferingType string              `json:"offering_type"`
	ProviderName string              `json:"provider_name"`
	Organization string              `json:"organization"`
	Price        decimal.NullDecimal `json:"price"`
	Quantity     int                 `json:"quantity"`
	PhotoKey     *string             `json:"photo_key"`
	Notes        string              `json:"notes"`
}

func (o Offering) WithMeta(m Meta) Offering { o.Meta = m; return o }

func (o Offering) SearchFields() []string {
	return []string{o.OfferingType, o.ProviderName, o.Organization}
}

func (o Offering) Validate() error {
	if strings.TrimSpace(o.OfferingType) == "" {
		return fmt.Errorf("%w: offering type is required", common.ErrorValidation)
	}
	if strings.TrimSpace(o.ProviderName) == "" {
		return fmt.Errorf("%w: provider name is required", common.ErrorValidation)
	}
	if o.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", common.ErrorValidation)
	}
	if o.Price.Valid && o.Price.Decimal.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", common.ErrorValidation)
	}
	return nil
}
