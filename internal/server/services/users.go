// Package services contains server-side business logic: issuing sessions
// and storing letters.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/common"
	"github.com/dmitrijs2005/futureletter/internal/dbx"
	"github.com/dmitrijs2005/futureletter/internal/server/auth"
	"github.com/dmitrijs2005/futureletter/internal/server/config"
	"github.com/dmitrijs2005/futureletter/internal/server/metrics"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Sign-in methods as reported in metrics.
const (
	MethodAnonymous   = "anonymous"
	MethodCustomToken = "custom_token"
	MethodRefresh     = "refresh"
)

// Session is an issued identity with its token pair.
type Session struct {
	UserID       string
	Anonymous    bool
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	metrics                      *metrics.Metrics
	jwtSecret                    []byte
	customTokenSecret            []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	newID                        func() string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, mt *metrics.Metrics) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		metrics:                      mt,
		jwtSecret:                    []byte(cfg.SecretKey),
		customTokenSecret:            []byte(cfg.CustomTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		newID:                        uuid.NewString,
	}
}

// SignInAnonymously creates a fresh anonymous user in appID.
func (s *UserService) SignInAnonymously(ctx context.Context, appID string) (*Session, error) {
	if appID == "" {
		appID = common.DefaultAppID
	}

	user, err := s.repomanager.Users(s.db).Upsert(ctx, &models.User{ID: s.newID(), Anonymous: true})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(ctx, s.db, user, appID, MethodAnonymous)
}

// SignInWithCustomToken signs in as the uid carried by a bootstrap token.
// The user row is created on first use.
func (s *UserService) SignInWithCustomToken(ctx context.Context, appID, token string) (*Session, error) {
	if appID == "" {
		appID = common.DefaultAppID
	}

	uid, err := auth.VerifyCustomToken(token, s.customTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	user, err := s.repomanager.Users(s.db).Upsert(ctx, &models.User{ID: uid, Anonymous: false})
	if err != nil {
		return nil, fmt.Errorf("error upserting user: %w", err)
	}

	return s.issue(ctx, s.db, user, appID, MethodCustomToken)
}

// RefreshToken rotates a refresh token: the old one is revoked and a new
// pair is issued in the same transaction. A token consumed concurrently
// between the lookup and the delete is rejected as unauthorized.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	var session *Session

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}

		session, err = s.issue(ctx, tx, user, token.AppID, MethodRefresh)
		return err
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *UserService) issue(ctx context.Context, db dbx.DBTX, user *models.User, appID, method string) (*Session, error) {
	accessToken, err := auth.GenerateToken(user.ID, appID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	err = s.repomanager.RefreshTokens(db).Create(ctx, user.ID, appID, refreshToken, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	s.metrics.SignIns.WithLabelValues(method).Inc()

	return &Session{
		UserID:       user.ID,
		Anonymous:    user.Anonymous,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
