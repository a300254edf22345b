package models

import "encoding/json"

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// OldRef identifies the row a delete event removed.
type OldRef struct {
	ID string `json:"id"`
}

// Event is one change pushed to subscribers of a "<table>:<ledger>" channel.
// New is set for inserts and updates, Old for deletes.
type Event struct {
	Type  EventType       `json:"eventType"`
	Table string          `json:"table"`
	New   json.RawMessage `json:"new,omitempty"`
	Old   *OldRef         `json:"old,omitempty"`
}

// DecodeNew unmarshals the pushed row into v.
func (e Event) DecodeNew(v any) error {
	return json.Unmarshal(e.New, v)
}
