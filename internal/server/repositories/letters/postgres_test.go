package letters

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var owner = models.Owner{AppID: "app", UserID: "u1"}

const (
	insertQ = `(?s)^INSERT\s+INTO\s+letters\s*\(id,\s*app_id,\s*user_id,.*\)\s*VALUES\s*\(\$1,.*\$9,\s*FALSE\)\s*RETURNING\s+sent,\s*created_at$`
	deleteQ = `(?s)^DELETE\s+FROM\s+letters\s+WHERE\s+id\s*=\s*\$1\s+AND\s+app_id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3$`
	selectQ = `(?s)^SELECT\s+id,.*FROM\s+letters\s+WHERE\s+app_id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s+AND\s+sent\s*=\s*FALSE\s+ORDER\s+BY\s+delivery_timestamp,\s*id$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	l := &models.Letter{
		ID: "11111111-1111-1111-1111-111111111111", AppID: "app", UserID: "u1",
		Title: "Birthday", SealedContent: []byte("ct"), ContentNonce: []byte("nonce"),
		RecipientEmail: "a@b.com", SenderName: "Anonymous", DeliveryTimestamp: 1893456000000,
	}

	mock.ExpectQuery(insertQ).
		WithArgs(l.ID, "app", "u1", "Birthday", []byte("ct"), []byte("nonce"), "a@b.com", "Anonymous", int64(1893456000000)).
		WillReturnRows(sqlmock.NewRows([]string{"sent", "created_at"}).AddRow(false, created))

	got, err := repo.Create(context.Background(), l)
	require.NoError(t, err)
	require.False(t, got.Sent)
	require.True(t, got.CreatedAt.Equal(created))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Letter{ID: "x"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestDelete_RemovesOwnedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("l1", "app", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), owner, "l1")
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestDelete_ForeignOrMissingIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("someone-elses", "app", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), owner, "someone-elses")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("l1", "app", "u1").
		WillReturnError(errors.New("db err"))

	_, err := repo.Delete(context.Background(), owner, "l1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSelectPending_ReturnsRowsInQueryOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	cols := []string{"id", "title", "sealed_content", "content_nonce", "recipient_email", "sender_name",
		"delivery_timestamp", "sent", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow("a", "First", []byte("c1"), []byte("n1"), "a@b.com", "Anonymous", int64(100), false, now).
		AddRow("b", "Second", []byte("c2"), []byte("n2"), "c@d.com", "Bob", int64(200), false, now)

	mock.ExpectQuery(selectQ).WithArgs("app", "u1").WillReturnRows(rows)

	got, err := repo.SelectPending(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "app", got[0].AppID)
	require.Equal(t, "u1", got[0].UserID)
	require.Equal(t, []byte("c1"), got[0].SealedContent)
	require.Equal(t, int64(200), got[1].DeliveryTimestamp)
}

func TestSelectPending_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs("app", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.SelectPending(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSelectPending_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs("app", "u1").WillReturnError(errors.New("db err"))

	_, err := repo.SelectPending(context.Background(), owner)
	require.Error(t, err)
}

func TestSelectPending_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("only-one-column")
	mock.ExpectQuery(selectQ).WithArgs("app", "u1").WillReturnRows(rows)

	_, err := repo.SelectPending(context.Background(), owner)
	if err == nil || !regexp.MustCompile(`scan error`).MatchString(err.Error()) {
		t.Fatalf("expected scan error, got %v", err)
	}
}
