package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/dbx"
	"github.com/dmitrijs2005/kouden/internal/models"
	srvmodels "github.com/dmitrijs2005/kouden/internal/server/models"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/ledgers"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/records"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

const (
	testLedger   = "6b1f2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	testOffering = "7c2a3b4d-5e6f-4b7a-9d8e-0f1a2b3c4d5e"
	testRow1     = "8d3b4c5e-6f7a-4c8b-ae9f-1a2b3c4d5e6f"
	testRow2     = "9e4c5d6f-7a8b-4d9c-bfa0-2b3c4d5e6f7a"
	testMissing  = "0f5d6e7a-8b9c-4ead-80b1-3c4d5e6f7a8b"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	byName    map[string]*srvmodels.User
	createErr error
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *srvmodels.User) (*srvmodels.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "id-" + u.UserName
	u.CreatedAt = t0
	if f.byName == nil {
		f.byName = map[string]*srvmodels.User{}
	}
	f.byName[u.UserName] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, name string) (*srvmodels.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeRefreshRepo struct {
	findOut   *srvmodels.RefreshToken
	findErr   error
	delErr    error
	purgeErr  error
	createErr error

	created []*srvmodels.RefreshToken
	deleted []string
	purged  int
}

func (f *fakeRefreshRepo) Create(ctx context.Context, token *srvmodels.RefreshToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*srvmodels.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error) {
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	f.purged++
	return 0, nil
}

type fakeLedgersRepo struct {
	roles     map[string]map[string]models.Role
	ledgers   []models.Ledger
	members   []models.Member
	createErr error
	nextID    int
}

func (f *fakeLedgersRepo) Create(ctx context.Context, l *models.Ledger) (*models.Ledger, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	l.ID = fmt.Sprintf("ledger-%d", f.nextID)
	l.CreatedAt = t0
	f.ledgers = append(f.ledgers, *l)
	return l, nil
}

func (f *fakeLedgersRepo) AddMember(ctx context.Context, ledgerID, userID string, role models.Role) error {
	if f.roles == nil {
		f.roles = map[string]map[string]models.Role{}
	}
	if f.roles[ledgerID] == nil {
		f.roles[ledgerID] = map[string]models.Role{}
	}
	f.roles[ledgerID][userID] = role
	return nil
}

func (f *fakeLedgersRepo) GetRole(ctx context.Context, ledgerID, userID string) (models.Role, error) {
	role, ok := f.roles[ledgerID][userID]
	if !ok {
		return "", common.ErrorNotFound
	}
	return role, nil
}

func (f *fakeLedgersRepo) ListForUser(ctx context.Context, userID string) ([]models.Ledger, error) {
	return f.ledgers, nil
}

func (f *fakeLedgersRepo) ListMembers(ctx context.Context, ledgerID string) ([]models.Member, error) {
	return f.members, nil
}

// fakeRecords keeps rows in memory and mirrors the repository contract.
type fakeRecords[T models.Record[T]] struct {
	mu   sync.Mutex
	rows map[string]T
	err  error
}

func newFakeRecords[T models.Record[T]](rows ...T) *fakeRecords[T] {
	f := &fakeRecords[T]{rows: map[string]T{}}
	for _, r := range rows {
		f.rows[r.GetMeta().ID] = r
	}
	return f
}

func (f *fakeRecords[T]) List(ctx context.Context, ledgerID string) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []T{}
	for _, r := range f.rows {
		if r.GetMeta().LedgerID == ledgerID {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeRecords[T]) Get(ctx context.Context, id string) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		var zero T
		return zero, common.ErrorNotFound
	}
	return r, nil
}

func (f *fakeRecords[T]) Insert(ctx context.Context, rec T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		var zero T
		return zero, f.err
	}
	m := rec.GetMeta()
	m.CreatedAt, m.UpdatedAt = t0, t0
	rec = rec.WithMeta(m)
	f.rows[m.ID] = rec
	return rec, nil
}

func (f *fakeRecords[T]) Update(ctx context.Context, rec T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := rec.GetMeta()
	old, ok := f.rows[m.ID]
	if !ok || old.GetMeta().LedgerID != m.LedgerID {
		var zero T
		return zero, common.ErrorNotFound
	}
	om := old.GetMeta()
	om.UpdatedAt = om.UpdatedAt.Add(time.Minute)
	rec = rec.WithMeta(om)
	f.rows[m.ID] = rec
	return rec, nil
}

func (f *fakeRecords[T]) Delete(ctx context.Context, ledgerID, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok || r.GetMeta().LedgerID != ledgerID {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeRecords[T]) DeleteMany(ctx context.Context, ledgerID string, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		if r, ok := f.rows[id]; !ok || r.GetMeta().LedgerID != ledgerID {
			return 0, common.ErrorNotFound
		}
	}
	for _, id := range ids {
		delete(f.rows, id)
	}
	return int64(len(ids)), nil
}

type fakeOfferings struct {
	*fakeRecords[models.Offering]
}

func (f *fakeOfferings) SetPhotoKey(ctx context.Context, id string, key *string) (models.Offering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.rows[id]
	if !ok {
		return models.Offering{}, common.ErrorNotFound
	}
	o.PhotoKey = key
	f.rows[id] = o
	return o, nil
}

type fakeRepoManager struct {
	users     *fakeUsersRepo
	refresh   *fakeRefreshRepo
	ledgers   *fakeLedgersRepo
	telegrams *fakeRecords[models.Telegram]
	gifts     *fakeRecords[models.Gift]
	offerings *fakeOfferings
}

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:     &fakeUsersRepo{},
		refresh:   &fakeRefreshRepo{},
		ledgers:   &fakeLedgersRepo{},
		telegrams: newFakeRecords[models.Telegram](),
		gifts:     newFakeRecords[models.Gift](),
		offerings: &fakeOfferings{newFakeRecords[models.Offering]()},
	}
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Ledgers(dbx.DBTX) ledgers.Repository             { return m.ledgers }
func (m *fakeRepoManager) Telegrams(dbx.DBTX) records.Repository[models.Telegram] {
	return m.telegrams
}
func (m *fakeRepoManager) Gifts(dbx.DBTX) records.Repository[models.Gift] { return m.gifts }
func (m *fakeRepoManager) Offerings(dbx.DBTX) repomanager.OfferingsRepository {
	return m.offerings
}
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

type published struct {
	channel string
	event   models.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(channel string, ev models.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{channel, ev})
}

func (p *recordingPublisher) all() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}

