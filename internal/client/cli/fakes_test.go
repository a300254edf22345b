package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/client/config"
	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/client/services"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

var ledgerL1 = models.Ledger{ID: "l1", Title: "Tanaka family"}

/*************
 * Fake auth
 *************/

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	onlineUser string
	onlinePass []byte
	onlineErr  error

	offlineUser string
	offlineErr  error

	mu          sync.Mutex
	pingErr     error
	loggedOut   bool
	clearCalled bool
	clearErr    error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) error {
	f.onlineUser, f.onlinePass = user, append([]byte(nil), pass...)
	return f.onlineErr
}
func (f *fakeAuth) OfflineLogin(_ context.Context, user string, _ []byte) error {
	f.offlineUser = user
	return f.offlineErr
}
func (f *fakeAuth) ClearOfflineData(context.Context) error {
	f.clearCalled = true
	return f.clearErr
}
func (f *fakeAuth) Logout(context.Context)          { f.loggedOut = true }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

/*************
 * Fake ledgers
 *************/

type fakeLedgers struct {
	ledgers []models.Ledger
	listErr error
	last    string
	shared  []models.Member
	created []models.Ledger
}

func (f *fakeLedgers) List(context.Context, bool) ([]models.Ledger, error) {
	return f.ledgers, f.listErr
}

func (f *fakeLedgers) Create(_ context.Context, l models.Ledger) (models.Ledger, error) {
	l.ID = fmt.Sprintf("new%d", len(f.created)+1)
	l.Role = models.RoleOwner
	f.created = append(f.created, l)
	f.ledgers = append(f.ledgers, l)
	return l, nil
}

func (f *fakeLedgers) Share(_ context.Context, ledgerID, username string, role models.Role) (models.Member, error) {
	m := models.Member{LedgerID: ledgerID, UserName: username, Role: role}
	f.shared = append(f.shared, m)
	return m, nil
}

func (f *fakeLedgers) Members(context.Context, string) ([]models.Member, error) {
	return f.shared, nil
}

func (f *fakeLedgers) Find(_ context.Context, _ bool, ref string) (models.Ledger, error) {
	for _, l := range f.ledgers {
		if l.ID == ref || l.Title == ref {
			return l, nil
		}
	}
	return models.Ledger{}, client.ErrNotFound
}

func (f *fakeLedgers) Remember(_ context.Context, id string) error { f.last = id; return nil }
func (f *fakeLedgers) Last(context.Context) (string, error)        { return f.last, nil }

/*************
 * Fake photos
 *************/

type fakePhotos struct {
	uploaded []string
	err      error
}

func (f *fakePhotos) Upload(_ context.Context, offeringID, path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, offeringID+"="+path)
	return "offerings/" + offeringID, nil
}

func (f *fakePhotos) URL(_ context.Context, offeringID string) (string, error) {
	return "https://photos.test/" + offeringID, nil
}

/*************
 * Fake rows
 *************/

// fakeRows is an in-memory row API that assigns ids like the server.
type fakeRows struct {
	mu   sync.Mutex
	rows map[string][]map[string]any
	seq  int
	err  error
}

func newFakeRows() *fakeRows { return &fakeRows{rows: map[string][]map[string]any{}} }

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

func (f *fakeRows) SelectRows(_ context.Context, table, ledgerID string) ([]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []json.RawMessage{}
	for _, m := range f.rows[table] {
		if m["ledger_id"] == ledgerID {
			b, _ := json.Marshal(m)
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRows) InsertRow(_ context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
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
	m["updated_at"] = t0
	f.rows[table] = append(f.rows[table], m)
	return json.Marshal(m)
}

func (f *fakeRows) UpdateRow(_ context.Context, table, _, id string, row json.RawMessage) (json.RawMessage, error) {
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

func (f *fakeRows) DeleteRows(_ context.Context, table, _ string, ids []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	var kept []map[string]any
	for _, m := range f.rows[table] {
		if !drop[m["id"].(string)] {
			kept = append(kept, m)
		}
	}
	n := len(f.rows[table]) - len(kept)
	f.rows[table] = kept
	return n, nil
}

/*************
 * Test app
 *************/

type testApp struct {
	*App
	auth    *fakeAuth
	ledgers *fakeLedgers
	photos  *fakePhotos
	rows    *fakeRows
	buf     *bytes.Buffer
	toasts  *notify.Recorder
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

// newTestApp builds an App logged in online with input as its stdin.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PageSize = 2

	ta := &testApp{
		auth:    &fakeAuth{},
		ledgers: &fakeLedgers{},
		photos:  &fakePhotos{},
		rows:    newFakeRows(),
		buf:     &bytes.Buffer{},
		toasts:  &notify.Recorder{},
	}
	ta.App = &App{
		config:        cfg,
		authService:   ta.auth,
		ledgerService: ta.ledgers,
		photoService:  ta.photos,
		rows:          ta.rows,
		db:            setupDB(t),
		log:           logging.NewDiscard(),
		notifier:      ta.toasts,
		out:           ta.buf,
		reader:        bufio.NewReader(strings.NewReader(input)),
		views:         map[string]*viewState{},
		mode:          ModeOnline,
		userName:      "alice",
		session:       true,
	}
	return ta
}

// open opens ledger l1 backed by the fake rows.
func (ta *testApp) open(t *testing.T, role models.Role) *services.Workspace {
	t.Helper()
	l := ledgerL1
	l.Role = role
	ta.ledgers.ledgers = append(ta.ledgers.ledgers, l)
	require.NoError(t, ta.Use(context.Background(), []string{"l1"}))
	w := ta.currentWorkspace()
	require.NotNil(t, w)
	return w
}
