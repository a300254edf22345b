package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/models"
)

var (
	t0        = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	errRemote = errors.New("permission denied")
)

func tg(id, sender string) models.Telegram {
	return models.Telegram{
		Meta:       models.Meta{ID: id, LedgerID: "L1", CreatedAt: t0, UpdatedAt: t0, CreatedBy: "u1"},
		SenderName: sender,
	}
}

func ids(rows []models.Telegram) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

// fakeRemote records calls and assigns server ids on insert.
type fakeRemote struct {
	mu    sync.Mutex
	seq   int
	rows  []models.Telegram
	calls []string

	insertFn     func(ctx context.Context, row models.Telegram) (models.Telegram, error)
	updateFn     func(ctx context.Context, id string, row models.Telegram) (models.Telegram, error)
	deleteFn     func(ctx context.Context, id string) error
	deleteManyFn func(ctx context.Context, ids []string) error
	selectErr    error
	// afterSelect runs once the listing has been taken, before it is returned.
	afterSelect func()
}

func (f *fakeRemote) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRemote) Select(_ context.Context, parentID string) ([]models.Telegram, error) {
	f.record("select " + parentID)
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	f.mu.Lock()
	rows := append([]models.Telegram(nil), f.rows...)
	f.mu.Unlock()
	if f.afterSelect != nil {
		f.afterSelect()
	}
	return rows, nil
}

func (f *fakeRemote) Insert(ctx context.Context, row models.Telegram) (models.Telegram, error) {
	f.record("insert")
	if f.insertFn != nil {
		return f.insertFn(ctx, row)
	}
	return f.confirm(row), nil
}

func (f *fakeRemote) confirm(row models.Telegram) models.Telegram {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return row.WithMeta(models.Meta{
		ID:        fmt.Sprintf("srv-%d", f.seq),
		LedgerID:  row.LedgerID,
		CreatedAt: t0.Add(time.Minute),
		UpdatedAt: t0.Add(time.Minute),
		CreatedBy: "u1",
	})
}

func (f *fakeRemote) Update(ctx context.Context, id string, row models.Telegram) (models.Telegram, error) {
	f.record("update " + id)
	if f.updateFn != nil {
		return f.updateFn(ctx, id, row)
	}
	m := row.Meta
	m.ID = id
	m.UpdatedAt = t0.Add(2 * time.Minute)
	return row.WithMeta(m), nil
}

func (f *fakeRemote) Delete(ctx context.Context, id string) error {
	f.record("delete " + id)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRemote) DeleteMany(ctx context.Context, ids []string) error {
	f.record(fmt.Sprintf("deleteMany %v", ids))
	if f.deleteManyFn != nil {
		return f.deleteManyFn(ctx, ids)
	}
	return nil
}

func newTestStore(remote *fakeRemote) (*Store[models.Telegram], *notify.Recorder) {
	rec := &notify.Recorder{}
	var n atomic.Int64
	s := NewStore[models.Telegram]("L1", remote, Config[models.Telegram]{
		Table:    models.TableTelegrams,
		Label:    "telegram",
		Search:   models.Telegram.SearchFields,
		SortKeys: []SortKey[models.Telegram]{StringKey("sender", func(t models.Telegram) string { return t.SenderName })},
		Timeout:  time.Second,
		Notifier: rec,
		NewID: func() string {
			return fmt.Sprintf("%s%d", ProvisionalPrefix, n.Add(1))
		},
		Now: func() time.Time { return t0 },
	})
	return s, rec
}

// fakeSubscriber captures the callbacks of the last Subscribe call.
type fakeSubscriber struct {
	mu       sync.Mutex
	channel  string
	onEvent  func(models.Event)
	onResync func()
	err      error
	unsubs   int
}

func (f *fakeSubscriber) Subscribe(_ context.Context, channel string, onEvent func(models.Event), onResync func()) (Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channel, f.onEvent, f.onResync = channel, onEvent, onResync
	return f, nil
}

func (f *fakeSubscriber) Unsubscribe() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubs++
	return nil
}

func (f *fakeSubscriber) emit(ev models.Event) {
	f.mu.Lock()
	fn := f.onEvent
	f.mu.Unlock()
	fn(ev)
}
