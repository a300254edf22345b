package collection

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// ResyncTimeout bounds the refetch a Listener runs after a reconnect.
const ResyncTimeout = 30 * time.Second

// Listener folds pushed events for one store into its overlay. Close must be
// called when the owning session ends.
type Listener[T models.Record[T]] struct {
	store   *Store[T]
	channel string
	log     logging.Logger

	onApplied func(models.Event)

	mu   sync.Mutex
	sub  Subscription
	done bool
}

type listenOptions struct {
	onApplied func(models.Event)
}

type ListenOption func(*listenOptions)

// WithOnApplied registers fn to run after each event that changed the
// state. It runs on the subscriber's goroutine.
func WithOnApplied(fn func(models.Event)) ListenOption {
	return func(o *listenOptions) {
		o.onApplied = fn
	}
}

// Listen subscribes the store to "<table>:<ledger>".
func (s *Store[T]) Listen(ctx context.Context, sub Subscriber, opts ...ListenOption) (*Listener[T], error) {
	var o listenOptions
	for _, opt := range opts {
		opt(&o)
	}

	l := &Listener[T]{
		store:     s,
		channel:   common.ChannelKey(s.cfg.Table, s.parentID),
		log:       s.cfg.Logger.With("channel", common.ChannelKey(s.cfg.Table, s.parentID)),
		onApplied: o.onApplied,
	}

	handle, err := sub.Subscribe(ctx, l.channel, l.handle, l.resync)
	if err != nil {
		l.log.Error(ctx, "subscribe failed", "err", err)
		return nil, &SubscriptionError{Channel: l.channel, Err: err}
	}

	l.mu.Lock()
	l.sub = handle
	l.mu.Unlock()
	return l, nil
}

func (l *Listener[T]) Channel() string { return l.channel }

func (l *Listener[T]) handle(ev models.Event) {
	ctx := context.Background()
	state := l.store.state

	switch ev.Type {
	case models.EventInsert, models.EventUpdate:
		var row T
		if err := json.Unmarshal(ev.New, &row); err != nil {
			l.log.Warn(ctx, "dropping malformed event", "type", string(ev.Type), "err", err)
			return
		}
		meta := row.GetMeta()
		if meta.ID == "" || (meta.LedgerID != "" && meta.LedgerID != l.store.parentID) {
			l.log.Warn(ctx, "dropping event for another ledger", "id", meta.ID, "ledger", meta.LedgerID)
			return
		}
		if !state.applyPushed(row) {
			l.log.Debug(ctx, "ignored stale event", "type", string(ev.Type), "id", meta.ID)
			return
		}
	case models.EventDelete:
		if ev.Old == nil || ev.Old.ID == "" {
			l.log.Warn(ctx, "dropping delete event without id")
			return
		}
		state.applyRemoteDelete(ev.Old.ID)
	default:
		l.log.Warn(ctx, "unknown event type", "type", string(ev.Type))
		return
	}

	l.log.Debug(ctx, "event applied", "type", string(ev.Type))
	if l.onApplied != nil {
		l.onApplied(ev)
	}
}

// resync refetches the ledger after the transport reconnected, repairing
// whatever was pushed while the channel was down.
func (l *Listener[T]) resync() {
	ctx, cancel := context.WithTimeout(context.Background(), ResyncTimeout)
	defer cancel()

	if err := l.store.Refresh(ctx); err != nil {
		l.log.Warn(ctx, "resync failed", "err", err)
		return
	}
	l.log.Info(ctx, "resynced after reconnect")
}

// Close unsubscribes. It is safe to call more than once.
func (l *Listener[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done || l.sub == nil {
		l.done = true
		return nil
	}
	l.done = true
	return l.sub.Unsubscribe()
}
