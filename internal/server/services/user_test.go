package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/common"
	"github.com/dmitrijs2005/futureletter/internal/server/auth"
	"github.com/dmitrijs2005/futureletter/internal/server/config"
	"github.com/dmitrijs2005/futureletter/internal/server/metrics"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/repomanager"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret       = "k"
	testCustomSecret = "custom"
)

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    testSecret,
		CustomTokenSecret:            testCustomSecret,
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	s := NewUserService(db, rm, cfg, metrics.New())
	s.newID = func() string { return "generated-id" }
	return s
}

func TestSignInAnonymously_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
	s := newUserService(t, db, rm)

	sess, err := s.SignInAnonymously(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Equal(t, "generated-id", sess.UserID)
	assert.True(t, sess.Anonymous)
	require.Len(t, rm.u.upserted, 1)
	assert.True(t, rm.u.upserted[0].Anonymous)

	claims, err := auth.ParseToken(sess.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "generated-id", claims.UserID)
	assert.Equal(t, "app-1", claims.AppID)

	require.Len(t, rm.r.created, 1)
	assert.Equal(t, createdToken{"generated-id", "app-1", sess.RefreshToken, 2 * time.Hour}, rm.r.created[0])
	assert.Len(t, sess.RefreshToken, 64)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.SignIns.WithLabelValues(MethodAnonymous)))
}

func TestSignInAnonymously_DefaultAppID(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
	s := newUserService(t, db, rm)

	_, err := s.SignInAnonymously(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, common.DefaultAppID, rm.r.created[0].AppID)
}

func TestSignInAnonymously_Errors(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{upsertErr: errBoom{}}, r: &fakeRefreshRepo{}})
	_, err := s.SignInAnonymously(context.Background(), "app")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`error creating user: .*boom`), err.Error())

	s = newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{createErr: errBoom{}}})
	_, err = s.SignInAnonymously(context.Background(), "app")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestSignInWithCustomToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	t.Run("valid token keeps uid", func(t *testing.T) {
		rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
		s := newUserService(t, db, rm)

		tok, err := auth.GenerateCustomToken("user-42", []byte(testCustomSecret), time.Minute)
		require.NoError(t, err)

		sess, err := s.SignInWithCustomToken(context.Background(), "app", tok)
		require.NoError(t, err)
		assert.Equal(t, "user-42", sess.UserID)
		assert.False(t, sess.Anonymous)
		require.Len(t, rm.u.upserted, 1)
		assert.Equal(t, "user-42", rm.u.upserted[0].ID)
		assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.SignIns.WithLabelValues(MethodCustomToken)))
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
		s := newUserService(t, db, rm)

		tok, err := auth.GenerateCustomToken("user-42", []byte("other"), time.Minute)
		require.NoError(t, err)

		_, err = s.SignInWithCustomToken(context.Background(), "app", tok)
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
		assert.Empty(t, rm.u.upserted)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
		s := newUserService(t, db, rm)

		tok, err := auth.GenerateCustomToken("user-42", []byte(testCustomSecret), -time.Minute)
		require.NoError(t, err)

		_, err = s.SignInWithCustomToken(context.Background(), "app", tok)
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("garbage is unauthorized", func(t *testing.T) {
		s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}})
		_, err := s.SignInWithCustomToken(context.Background(), "app", "not-a-jwt")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", Anonymous: true}},
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", AppID: "app", Expires: time.Now().Add(10 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm)

	sess, err := s.RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.AccessToken)
	assert.NotEmpty(t, sess.RefreshToken)
	assert.NotEqual(t, "refresh-xyz", sess.RefreshToken)
	assert.True(t, sess.Anonymous)

	assert.Equal(t, []string{"refresh-xyz"}, rm.r.deleted)
	require.Len(t, rm.r.created, 1)
	assert.Equal(t, "app", rm.r.created[0].AppID)

	claims, err := auth.ParseToken(sess.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "app", claims.AppID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-1 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_Unknown(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{r: &fakeRefreshRepo{findErr: common.ErrorNotFound}})

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{r: &fakeRefreshRepo{findErr: errBoom{}}})

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1"}},
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
			delErr:  errBoom{},
		},
	}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_AlreadyConsumed(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1"}},
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", AppID: "app", Expires: time.Now().Add(10 * time.Minute)},
			delErr:  common.ErrorNotFound,
		},
	}
	s := newUserService(t, db, rm)

	sess, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Nil(t, sess)
	assert.Empty(t, rm.r.created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_CreateErrRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1"}},
		r: &fakeRefreshRepo{
			findOut:   &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
			createErr: errBoom{},
		},
	}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrorInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}
