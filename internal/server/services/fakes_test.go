package services

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/futureletter/internal/common"
	"github.com/dmitrijs2005/futureletter/internal/dbx"
	"github.com/dmitrijs2005/futureletter/internal/logging"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	lettersrepo "github.com/dmitrijs2005/futureletter/internal/server/repositories/letters"
	refreshtokensrepo "github.com/dmitrijs2005/futureletter/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/futureletter/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type fakeUsersRepo struct {
	upserted []*models.User
	upsertErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Upsert(_ context.Context, u *models.User) (*models.User, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = append(f.upserted, u)
	out := *u
	out.CreatedAt = time.Now()
	return &out, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut != nil {
		return f.getOut, nil
	}
	return nil, common.ErrorNotFound
}

type createdToken struct {
	UserID, AppID, Token string
	Validity             time.Duration
}

type fakeRefreshRepo struct {
	created   []createdToken
	createErr error

	findOut *models.RefreshToken
	findErr error

	deleted []string
	delErr  error
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, appID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, createdToken{userID, appID, token, validity})
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, _ string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

// fakeLettersRepo keeps letters in memory the way the Postgres table would:
// plaintext content is never stored.
type fakeLettersRepo struct {
	mu        sync.Mutex
	rows      map[string]models.Letter
	createErr error
	deleteErr error
	selectErr error
}

func newFakeLettersRepo() *fakeLettersRepo {
	return &fakeLettersRepo{rows: make(map[string]models.Letter)}
}

func (f *fakeLettersRepo) Create(_ context.Context, l *models.Letter) (*models.Letter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	row := *l
	row.Content = ""
	row.CreatedAt = time.Now()
	f.rows[row.ID] = row
	out := row
	return &out, nil
}

func (f *fakeLettersRepo) Delete(_ context.Context, owner models.Owner, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	row, ok := f.rows[id]
	if !ok || row.Owner() != owner {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeLettersRepo) SelectPending(_ context.Context, owner models.Owner) ([]*models.Letter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	var out []*models.Letter
	for _, row := range f.rows {
		if row.Owner() == owner && !row.Sent {
			r := row
			out = append(out, &r)
		}
	}
	slices.SortFunc(out, func(a, b *models.Letter) int {
		return cmp.Or(cmp.Compare(a.DeliveryTimestamp, b.DeliveryTimestamp), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (f *fakeLettersRepo) stored(id string) (models.Letter, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	return row, ok
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	l *fakeLettersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Letters(dbx.DBTX) lettersrepo.Repository             { return m.l }
