package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/client/collection"
	"github.com/dmitrijs2005/kouden/internal/models"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

/*************
 * Fake client
 *************/

type fakeClient struct {
	*fakeRows

	RegisterErr error
	GetSaltRet  []byte
	GetSaltErr  error
	LoginErr    error
	PingErr     error
	CloseErr    error

	LastRegisterUser string
	LastRegisterSalt []byte
	LastRegisterKey  []byte
	LastLoginUser    string
	LastLoginKey     []byte
	LoggedOut        bool

	Ledgers     []models.Ledger
	LedgersErr  error
	Created     []models.Ledger
	Shared      []models.Member
	MembersRet  []models.Member
	UploadURL   string
	UploadKey   string
	UploadErr   error
	LastCT      string
	PhotoURLRet string
}

func newFakeClient() *fakeClient {
	return &fakeClient{fakeRows: newFakeRows()}
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, key []byte) error {
	f.LastRegisterUser, f.LastRegisterSalt, f.LastRegisterKey = username, salt, key
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.GetSaltRet, f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, key []byte) error {
	f.LastLoginUser, f.LastLoginKey = username, key
	return f.LoginErr
}

func (f *fakeClient) Logout()                           { f.LoggedOut = true }
func (f *fakeClient) AccessToken() string               { return "token" }
func (f *fakeClient) Refresh(ctx context.Context) error { return nil }
func (f *fakeClient) Ping(ctx context.Context) error    { return f.PingErr }

func (f *fakeClient) ListLedgers(ctx context.Context) ([]models.Ledger, error) {
	return f.Ledgers, f.LedgersErr
}

func (f *fakeClient) CreateLedger(ctx context.Context, l models.Ledger) (models.Ledger, error) {
	l.ID = fmt.Sprintf("l%d", len(f.Created)+1)
	l.Role = models.RoleOwner
	f.Created = append(f.Created, l)
	return l, nil
}

func (f *fakeClient) ShareLedger(ctx context.Context, ledgerID, username string, role models.Role) (models.Member, error) {
	m := models.Member{LedgerID: ledgerID, UserName: username, Role: role}
	f.Shared = append(f.Shared, m)
	return m, nil
}

func (f *fakeClient) ListMembers(ctx context.Context, ledgerID string) ([]models.Member, error) {
	return f.MembersRet, nil
}

func (f *fakeClient) GetPhotoUploadURL(ctx context.Context, offeringID, contentType string) (string, string, error) {
	f.LastCT = contentType
	return f.UploadURL, f.UploadKey, f.UploadErr
}

func (f *fakeClient) GetPhotoURL(ctx context.Context, offeringID string) (string, error) {
	return f.PhotoURLRet, nil
}

/*************
 * Fake row API
 *************/

// fakeRows keeps rows as JSON objects per table, assigning ids and
// timestamps the way the server does.
type fakeRows struct {
	mu      sync.Mutex
	rows    map[string][]map[string]any
	seq     int
	err     error
	selects int
}

func newFakeRows() *fakeRows {
	return &fakeRows{rows: map[string][]map[string]any{}}
}

func (f *fakeRows) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeRows) seed(t *testing.T, table string, rows ...any) {
	t.Helper()
	for _, r := range rows {
		b, err := json.Marshal(r)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		f.rows[table] = append(f.rows[table], m)
	}
}

func (f *fakeRows) SelectRows(ctx context.Context, table, ledgerID string) ([]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selects++
	if f.err != nil {
		return nil, f.err
	}
	out := []json.RawMessage{}
	for _, m := range f.rows[table] {
		if m["ledger_id"] != ledgerID {
			continue
		}
		b, _ := json.Marshal(m)
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRows) InsertRow(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var m map[string]any
	if err := json.Unmarshal(row, &m); err != nil {
		return nil, err
	}
	f.seq++
	m["id"] = fmt.Sprintf("r%d", f.seq)
	m["created_by"] = "u1"
	m["created_at"] = t0
	m["updated_at"] = t0
	f.rows[table] = append(f.rows[table], m)
	return json.Marshal(m)
}

func (f *fakeRows) UpdateRow(ctx context.Context, table, ledgerID, id string, row json.RawMessage) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i, m := range f.rows[table] {
		if m["id"] == id {
			var next map[string]any
			if err := json.Unmarshal(row, &next); err != nil {
				return nil, err
			}
			next["id"] = id
			next["updated_at"] = t0.Add(time.Minute)
			f.rows[table][i] = next
			return json.Marshal(next)
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeRows) DeleteRow(ctx context.Context, table, ledgerID, id string) (int, error) {
	return f.DeleteRows(ctx, table, ledgerID, []string{id})
}

func (f *fakeRows) DeleteRows(ctx context.Context, table, ledgerID string, ids []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.rows[table][:0]
	n := 0
	for _, m := range f.rows[table] {
		if drop[m["id"].(string)] {
			n++
			continue
		}
		kept = append(kept, m)
	}
	f.rows[table] = kept
	return n, nil
}

/*************
 * Fake subscriber
 *************/

type fakeSubscriber struct {
	mu       sync.Mutex
	channels []string
	closed   []string
	failOn   map[string]error
}

type fakeSubscription struct {
	s       *fakeSubscriber
	channel string
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, channel string, onEvent func(models.Event), onResync func()) (collection.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[channel]; err != nil {
		return nil, err
	}
	f.channels = append(f.channels, channel)
	return &fakeSubscription{s: f, channel: channel}, nil
}

func (s *fakeSubscription) Unsubscribe() error {
	s.s.mu.Lock()
	defer s.s.mu.Unlock()
	s.s.closed = append(s.s.closed, s.channel)
	return nil
}
