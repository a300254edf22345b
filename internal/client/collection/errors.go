package collection

import (
	"errors"
	"fmt"
	"strings"
)

// Op names a mutation in errors, logs and notifications.
type Op string

const (
	OpCreate     Op = "create"
	OpUpdate     Op = "update"
	OpDelete     Op = "delete"
	OpBulkDelete Op = "bulk delete"
	OpRefresh    Op = "refresh"
)

var (
	// ErrMutationTimeout is wrapped into a RemoteWriteError when the remote
	// call does not resolve within the store's timeout.
	ErrMutationTimeout = errors.New("mutation timed out")

	// ErrPendingRecord is returned when a caller targets a provisional id
	// whose create has not been confirmed yet.
	ErrPendingRecord = errors.New("record is still being saved")
)

// RemoteWriteError means the remote store rejected or never answered a write.
// The overlay has already been restored when it is returned.
type RemoteWriteError struct {
	Op    Op
	Table string
	ID    string
	Err   error
}

func (e *RemoteWriteError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Table, e.ID, e.Err)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

// StaleReferenceError is returned before any remote call when a bulk
// operation names ids the client does not currently see. Refresh and retry.
type StaleReferenceError struct {
	IDs []string
}

func (e *StaleReferenceError) Error() string {
	return "stale reference: unknown ids " + strings.Join(e.IDs, ", ")
}

// SubscriptionError means the push channel could not be established.
type SubscriptionError struct {
	Channel string
	Err     error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscribe %s: %v", e.Channel, e.Err)
}

func (e *SubscriptionError) Unwrap() error { return e.Err }
