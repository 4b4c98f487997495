package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/futureletter/internal/common"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const upsertQ = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*anonymous\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(id\)\s*DO\s+UPDATE\s+SET\s+id\s*=\s*users\.id\s*RETURNING\s+anonymous,\s*created_at\s*$`

func TestUpsert_NewUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"anonymous", "created_at"}).AddRow(true, created)
	mock.ExpectQuery(upsertQ).
		WithArgs("u-1", true).
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.User{ID: "u-1", Anonymous: true})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.ID != "u-1" || !got.Anonymous || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsert_ExistingRowKeepsStoredFlag(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"anonymous", "created_at"}).AddRow(true, time.Now())
	mock.ExpectQuery(upsertQ).
		WithArgs("u-1", false).
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.User{ID: "u-1", Anonymous: false})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if !got.Anonymous {
		t.Fatalf("stored anonymous flag must win, got %+v", got)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs("u-1", true).
		WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), &models.User{ID: "u-1", Anonymous: true})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const getQ = `(?s)^SELECT\s+id,\s*anonymous,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "anonymous", "created_at"}).
		AddRow("u-1", false, time.Now())
	mock.ExpectQuery(getQ).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "u-1" || got.Anonymous {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQ).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQ).WithArgs("u-1").WillReturnError(errors.New("boom"))

	_, err := repo.GetByID(context.Background(), "u-1")
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected generic db error, got %v", err)
	}
}
