// Package models defines the ledger records shared by the server, the wire
// layer and the client collection core.
package models

import (
	"time"
)

// PendingUser marks CreatedBy on optimistic records the server has not
// confirmed yet.
const PendingUser = "pending"

// Table names double as push channel prefixes.
const (
	TableTelegrams = "telegrams"
	TableGifts     = "gifts"
	TableOfferings = "offerings"
)

// Tables lists every list-backed table in display order.
var Tables = []string{TableTelegrams, TableGifts, TableOfferings}

// Meta is the server-owned part of every list-backed record.
type Meta struct {
	ID        string    `json:"id"`
	LedgerID  string    `json:"ledger_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
}

func (m Meta) GetMeta() Meta { return m }
func (m Meta) RecordID() string { return m.ID }
func (m Meta) ParentID() string { return m.LedgerID }
func (m Meta) Updated() time.Time { return m.UpdatedAt }
func (m Meta) IsPending() bool { return m.CreatedBy == PendingUser }

// Record is implemented by every list-backed entity. WithMeta returns a copy
// of the record carrying m.
type Record[T any] interface {
	GetMeta() Meta
	WithMeta(m Meta) T
}
