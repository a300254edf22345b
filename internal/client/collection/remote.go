package collection

import (
	"context"

	"github.com/dmitrijs2005/kouden/internal/models"
)

// RemoteStore is the row API of the source of truth. Every write returns
// the affected row or an error.
type RemoteStore[T any] interface {
	Select(ctx context.Context, parentID string) ([]T, error)
	Insert(ctx context.Context, row T) (T, error)
	Update(ctx context.Context, id string, row T) (T, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

// Subscriber opens push channels. onResync, when not nil, is called after
// the transport re-established a dropped channel; events may have been
// missed in between.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string, onEvent func(models.Event), onResync func()) (Subscription, error)
}

type Subscription interface {
	Unsubscribe() error
}
