package collection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/models"
)

func TestStore_Create_RoundTrip(t *testing.T) {
	remote := &fakeRemote{}
	s, rec := newTestStore(remote)
	ctx := context.Background()

	row, err := s.Create(ctx, models.Telegram{SenderName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", row.ID)

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, row, rows[0])
	assert.Empty(t, s.State().Overlay(), "no optimistic duplicate may remain")
	assert.Equal(t, []string{"srv-1"}, ids(s.State().Base()))

	last, _ := rec.Last()
	assert.Equal(t, notify.Notification{Title: "Telegram created", Variant: notify.VariantSuccess}, last)
}

func TestStore_Create_SendsLedgerWithoutProvisionalID(t *testing.T) {
	var sent models.Telegram
	remote := &fakeRemote{}
	remote.insertFn = func(_ context.Context, row models.Telegram) (models.Telegram, error) {
		sent = row
		return remote.confirm(row), nil
	}
	s, _ := newTestStore(remote)

	_, err := s.Create(context.Background(), models.Telegram{SenderName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "L1", sent.LedgerID)
	assert.Empty(t, sent.ID)
}

func TestStore_Create_ShowsOptimisticEntryWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	remote := &fakeRemote{}
	remote.insertFn = func(_ context.Context, row models.Telegram) (models.Telegram, error) {
		close(started)
		<-release
		return remote.confirm(row), nil
	}
	s, _ := newTestStore(remote)

	done := make(chan error, 1)
	go func() {
		_, err := s.Create(context.Background(), models.Telegram{SenderName: "Alice"})
		done <- err
	}()

	<-started
	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "tmp-1", rows[0].ID)
	assert.Equal(t, models.PendingUser, rows[0].CreatedBy)
	assert.Equal(t, "L1", rows[0].LedgerID)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"srv-1"}, ids(s.Rows()))
}

func TestStore_Create_FailureClearsOverlay(t *testing.T) {
	remote := &fakeRemote{}
	remote.insertFn = func(context.Context, models.Telegram) (models.Telegram, error) {
		return models.Telegram{}, errRemote
	}
	s, rec := newTestStore(remote)

	_, err := s.Create(context.Background(), models.Telegram{SenderName: "Alice"})
	require.Error(t, err)

	var rw *RemoteWriteError
	require.ErrorAs(t, err, &rw)
	assert.Equal(t, OpCreate, rw.Op)
	assert.ErrorIs(t, err, errRemote)

	assert.Empty(t, s.Rows())
	assert.Empty(t, s.State().Overlay())
	assert.Empty(t, s.State().Base())

	last, _ := rec.Last()
	assert.Equal(t, notify.VariantError, last.Variant)
	assert.Equal(t, "Failed to create telegram", last.Title)
	assert.Equal(t, errRemote.Error(), last.Description)
}

func TestStore_Create_PushArrivesBeforeResponse(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)
	remote.insertFn = func(_ context.Context, row models.Telegram) (models.Telegram, error) {
		confirmed := remote.confirm(row)
		s.State().applyPushed(confirmed)
		return confirmed, nil
	}

	_, err := s.Create(context.Background(), models.Telegram{SenderName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"srv-1"}, ids(s.Rows()))
	assert.Empty(t, s.State().Overlay())
}

func TestStore_Update_ReplacesInPlace(t *testing.T) {
	remote := &fakeRemote{}
	s, rec := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B"), tg("c", "C")})

	row, err := s.Update(context.Background(), "b", models.Telegram{SenderName: "B2"})
	require.NoError(t, err)
	assert.Equal(t, "B2", row.SenderName)

	base := s.State().Base()
	assert.Equal(t, []string{"a", "b", "c"}, ids(base))
	assert.Equal(t, "B2", base[1].SenderName)
	assert.Empty(t, s.State().Overlay())

	last, _ := rec.Last()
	assert.Equal(t, "Telegram updated", last.Title)
}

func TestStore_Update_SendsExistingMeta(t *testing.T) {
	var sent models.Telegram
	remote := &fakeRemote{}
	remote.updateFn = func(_ context.Context, id string, row models.Telegram) (models.Telegram, error) {
		sent = row
		return row, nil
	}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})

	_, err := s.Update(context.Background(), "a", models.Telegram{SenderName: "A2"})
	require.NoError(t, err)
	assert.Equal(t, "a", sent.ID)
	assert.Equal(t, "L1", sent.LedgerID)
	assert.Equal(t, "A2", sent.SenderName)
}

func TestStore_Update_FailureRestoresPreviousOverlay(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	remote := &fakeRemote{}
	remote.updateFn = func(context.Context, string, models.Telegram) (models.Telegram, error) {
		close(started)
		<-release
		return models.Telegram{}, errRemote
	}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})
	pushed := tg("a", "A-pushed")
	pushed.UpdatedAt = t0.Add(time.Second)
	require.True(t, s.State().applyPushed(pushed))

	done := make(chan error, 1)
	go func() {
		_, err := s.Update(context.Background(), "a", models.Telegram{SenderName: "A-local"})
		done <- err
	}()

	<-started
	assert.Equal(t, "A-local", s.Rows()[0].SenderName, "optimistic value is shown while in flight")

	close(release)
	require.Error(t, <-done)

	overlay := s.State().Overlay()
	require.Len(t, overlay, 1)
	assert.Equal(t, "A-pushed", overlay[0].Record.SenderName)
	assert.False(t, overlay[0].Optimistic)
	assert.Equal(t, "A-pushed", s.Rows()[0].SenderName)
	assert.Equal(t, "A", s.State().Base()[0].SenderName)
}

func TestStore_Update_UnknownIDStillCallsRemote(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})

	_, err := s.Update(context.Background(), "zzz", models.Telegram{SenderName: "Z"})
	require.NoError(t, err)
	assert.Contains(t, remote.Calls(), "update zzz")
	assert.Equal(t, []string{"a"}, ids(s.Rows()), "local replace is a no-op")
	assert.Empty(t, s.State().Overlay())
}

func TestStore_Update_OverlayOnlyRowStaysVisible(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)
	require.True(t, s.State().applyPushed(tg("p", "Pushed")))

	_, err := s.Update(context.Background(), "p", models.Telegram{SenderName: "Edited"})
	require.NoError(t, err)

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Edited", rows[0].SenderName)
}

func TestStore_Delete_RemovesFromBase(t *testing.T) {
	remote := &fakeRemote{}
	s, rec := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B")})

	require.NoError(t, s.Delete(context.Background(), "a"))
	assert.Equal(t, []string{"b"}, ids(s.State().Base()))
	assert.Empty(t, s.State().Overlay())

	last, _ := rec.Last()
	assert.Equal(t, "Telegram deleted", last.Title)
}

func TestStore_Delete_FailureRestores(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	remote := &fakeRemote{}
	remote.deleteFn = func(context.Context, string) error {
		close(started)
		<-release
		return errRemote
	}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B")})

	done := make(chan error, 1)
	go func() { done <- s.Delete(context.Background(), "a") }()

	<-started
	assert.Equal(t, []string{"b"}, ids(s.Rows()), "tombstone hides the row while in flight")

	close(release)
	err := <-done
	require.ErrorIs(t, err, errRemote)
	assert.Equal(t, []string{"a", "b"}, ids(s.Rows()))
	assert.Empty(t, s.State().Overlay())
}

func TestStore_Delete_AbsentIDIsNoop(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})
	before, beforeOverlay := s.State().Base(), s.State().Overlay()

	require.NoError(t, s.Delete(context.Background(), "gone"))
	require.NoError(t, s.Delete(context.Background(), "gone"))

	assert.Equal(t, before, s.State().Base())
	assert.Equal(t, beforeOverlay, s.State().Overlay())
	assert.Equal(t, []string{"delete gone", "delete gone"}, remote.Calls())
}

func TestStore_ProvisionalIDsAreRejected(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)

	_, err := s.Update(context.Background(), "tmp-9", models.Telegram{})
	require.ErrorIs(t, err, ErrPendingRecord)
	require.ErrorIs(t, s.Delete(context.Background(), "tmp-9"), ErrPendingRecord)
	require.ErrorIs(t, s.BulkDelete(context.Background(), []string{"tmp-9"}), ErrPendingRecord)
	assert.Empty(t, remote.Calls())
}

func TestStore_BulkDelete_StaleReference(t *testing.T) {
	remote := &fakeRemote{}
	s, rec := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B")})

	err := s.BulkDelete(context.Background(), []string{"a", "x", "y"})
	var stale *StaleReferenceError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, []string{"x", "y"}, stale.IDs)
	assert.Empty(t, remote.Calls(), "no remote call on stale input")
	assert.Empty(t, s.State().Overlay())

	last, _ := rec.Last()
	assert.Equal(t, notify.VariantError, last.Variant)
}

func TestStore_BulkDelete_Success(t *testing.T) {
	remote := &fakeRemote{}
	s, rec := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B"), tg("c", "C")})

	require.NoError(t, s.BulkDelete(context.Background(), []string{"a", "c", "a"}))
	assert.Equal(t, []string{"b"}, ids(s.Rows()))
	assert.Empty(t, s.State().Overlay())
	assert.Equal(t, []string{"deleteMany [a c]"}, remote.Calls())

	last, _ := rec.Last()
	assert.Equal(t, "2 telegram records deleted", last.Title)
}

func TestStore_BulkDelete_FailureRestoresTombstones(t *testing.T) {
	remote := &fakeRemote{}
	remote.deleteManyFn = func(context.Context, []string) error { return errRemote }
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B"), tg("c", "C")})

	err := s.BulkDelete(context.Background(), []string{"a", "c"})
	require.ErrorIs(t, err, errRemote)
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.Rows()))
	assert.Empty(t, s.State().Overlay())
}

func TestStore_BulkDelete_Empty(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)
	require.NoError(t, s.BulkDelete(context.Background(), nil))
	assert.Empty(t, remote.Calls())
}

func TestStore_TimeoutClearsOverlay(t *testing.T) {
	hang := make(chan struct{})
	defer close(hang)

	remote := &fakeRemote{}
	remote.insertFn = func(context.Context, models.Telegram) (models.Telegram, error) {
		<-hang
		return models.Telegram{}, nil
	}
	s, rec := newTestStore(remote)
	s.cfg.Timeout = 50 * time.Millisecond

	_, err := s.Create(context.Background(), models.Telegram{SenderName: "Alice"})
	require.ErrorIs(t, err, ErrMutationTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, s.Rows())

	last, _ := rec.Last()
	assert.Equal(t, notify.VariantError, last.Variant)
}

func TestStore_TimeoutWhenRemoteHonoursContext(t *testing.T) {
	remote := &fakeRemote{}
	remote.deleteFn = func(ctx context.Context, _ string) error {
		<-ctx.Done()
		return ctx.Err()
	}
	s, _ := newTestStore(remote)
	s.cfg.Timeout = 20 * time.Millisecond
	s.Load([]models.Telegram{tg("a", "A")})

	err := s.Delete(context.Background(), "a")
	require.ErrorIs(t, err, ErrMutationTimeout)
	assert.Equal(t, []string{"a"}, ids(s.Rows()))
}

func TestStore_SameIDMutationsAreSerialized(t *testing.T) {
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	remote := &fakeRemote{}
	remote.updateFn = func(_ context.Context, id string, row models.Telegram) (models.Telegram, error) {
		mu.Lock()
		inFlight++
		maxInFlight = max(maxInFlight, inFlight)
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return row, nil
	}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(context.Background(), "a", models.Telegram{SenderName: "A"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight)
	assert.Equal(t, 0, s.locks.size())
}

func TestStore_Refresh(t *testing.T) {
	remote := &fakeRemote{rows: []models.Telegram{tg("a", "A"), tg("b", "B")}}
	s, _ := newTestStore(remote)
	s.State().putOverlay("tmp-7", Entry[models.Telegram]{Record: tg("tmp-7", "pending"), Optimistic: true})
	require.True(t, s.State().applyPushed(tg("old", "gone")))

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []string{"a", "b"}, ids(s.State().Base()))
	assert.Equal(t, []string{"a", "b", "tmp-7"}, ids(s.Rows()))
	assert.Equal(t, []string{"select L1"}, remote.Calls())
}

func TestStore_Refresh_Error(t *testing.T) {
	remote := &fakeRemote{selectErr: errors.New("unavailable")}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})

	err := s.Refresh(context.Background())
	var rw *RemoteWriteError
	require.ErrorAs(t, err, &rw)
	assert.Equal(t, OpRefresh, rw.Op)
	assert.Equal(t, []string{"a"}, ids(s.Rows()))
}

func TestStore_View(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("1", "Alice Corp"), tg("2", "bob"), tg("3", "ALICE Inc")})

	page, err := s.View(Query{Search: "alice", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(page.Rows))
	assert.Equal(t, []string{"sender"}, s.SortKeyNames())
}

func TestStore_Refresh_KeepsPushDuringListing(t *testing.T) {
	remote := &fakeRemote{rows: []models.Telegram{tg("a", "A")}}
	sub := &fakeSubscriber{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})
	_, err := s.Listen(context.Background(), sub)
	require.NoError(t, err)

	remote.afterSelect = func() {
		sub.emit(pushEvent(t, models.EventInsert, tg("b", "B")))
	}
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []string{"a", "b"}, ids(s.Rows()))

	remote.afterSelect = nil
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []string{"a"}, ids(s.Rows()), "a later listing without b is authoritative")
}

func TestStore_Refresh_KeepsLocalWritesDuringListing(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{rows: []models.Telegram{tg("a", "A"), tg("b", "B")}}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B")})

	remote.afterSelect = func() {
		_, err := s.Create(ctx, models.Telegram{SenderName: "C"})
		assert.NoError(t, err)
		_, err = s.Update(ctx, "a", models.Telegram{SenderName: "A2"})
		assert.NoError(t, err)
		assert.NoError(t, s.Delete(ctx, "b"))
	}
	require.NoError(t, s.Refresh(ctx))

	rows := s.Rows()
	assert.Equal(t, []string{"a", "srv-1"}, ids(rows))
	assert.Equal(t, "A2", rows[0].SenderName)
	assert.Empty(t, s.State().Overlay())
}

// blockingFailure returns a remote call that waits for release and then
// fails, signalling started when it is entered.
func blockingFailure() (started, release chan struct{}, wait func() error) {
	started = make(chan struct{})
	release = make(chan struct{})
	return started, release, func() error {
		close(started)
		<-release
		return errRemote
	}
}

func TestStore_FailedUpdateKeepsConcurrentPush(t *testing.T) {
	ctx := context.Background()
	started, release, wait := blockingFailure()
	remote := &fakeRemote{}
	remote.updateFn = func(context.Context, string, models.Telegram) (models.Telegram, error) {
		return models.Telegram{}, wait()
	}
	sub := &fakeSubscriber{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})
	_, err := s.Listen(ctx, sub)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.Update(ctx, "a", models.Telegram{SenderName: "A-local"})
		done <- err
	}()

	<-started
	other := tg("a", "A-other-client")
	other.UpdatedAt = t0.Add(time.Hour)
	sub.emit(pushEvent(t, models.EventUpdate, other))
	close(release)
	require.ErrorIs(t, <-done, errRemote)

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "A-other-client", rows[0].SenderName)
}

func TestStore_FailedDeleteKeepsRemoteDelete(t *testing.T) {
	ctx := context.Background()
	started, release, wait := blockingFailure()
	remote := &fakeRemote{}
	remote.deleteFn = func(context.Context, string) error { return wait() }
	sub := &fakeSubscriber{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A")})
	_, err := s.Listen(ctx, sub)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Delete(ctx, "a") }()

	<-started
	sub.emit(models.Event{Type: models.EventDelete, Table: models.TableTelegrams, Old: &models.OldRef{ID: "a"}})
	close(release)
	require.ErrorIs(t, <-done, errRemote)

	assert.Empty(t, s.Rows())
}

func TestStore_FailedBulkDeleteKeepsRemoteDelete(t *testing.T) {
	ctx := context.Background()
	started, release, wait := blockingFailure()
	remote := &fakeRemote{}
	remote.deleteManyFn = func(context.Context, []string) error { return wait() }
	sub := &fakeSubscriber{}
	s, _ := newTestStore(remote)
	s.Load([]models.Telegram{tg("a", "A"), tg("b", "B")})
	_, err := s.Listen(ctx, sub)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.BulkDelete(ctx, []string{"a", "b"}) }()

	<-started
	sub.emit(models.Event{Type: models.EventDelete, Table: models.TableTelegrams, Old: &models.OldRef{ID: "a"}})
	close(release)
	require.ErrorIs(t, <-done, errRemote)

	assert.Equal(t, []string{"b"}, ids(s.Rows()))
}
