package models

import "time"

// Role is a member's permission level within one ledger.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleEditor || r == RoleViewer
}

// CanWrite reports whether the role may change rows of the ledger.
func (r Role) CanWrite() bool {
	return r == RoleOwner || r == RoleEditor
}

// Ledger is the parent of every list-backed record.
type Ledger struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	DeceasedName string     `json:"deceased_name"`
	FuneralDate  *time.Time `json:"funeral_date,omitempty"`
	OwnerID      string     `json:"owner_id"`
	CreatedAt    time.Time  `json:"created_at"`

	// Role is the caller's role; set on listings only.
	Role Role `json:"role,omitempty"`
}

type Member struct {
	LedgerID string `json:"ledger_id"`
	UserID   string `json:"user_id"`
	UserName string `json:"username"`
	Role     Role   `json:"role"`
}
