package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/futureletter/internal/client/models"
	"github.com/dmitrijs2005/futureletter/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, appID string) (*models.StoredSession, error) {
	s := models.StoredSession{AppID: appID}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, anonymous, refresh_token, updated_at FROM sessions WHERE app_id = ?`, appID).
		Scan(&s.UserID, &s.Anonymous, &s.RefreshToken, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", appID, err)
	}
	return &s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.StoredSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (app_id, user_id, anonymous, refresh_token, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(app_id) DO UPDATE SET
			user_id = excluded.user_id,
			anonymous = excluded.anonymous,
			refresh_token = excluded.refresh_token,
			updated_at = excluded.updated_at
	`, s.AppID, s.UserID, s.Anonymous, s.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", s.AppID, err)
	}
	return nil
}

// UpdateRefreshToken stores a rotated refresh token. A missing row is not an
// error.
func (r *SQLiteRepository) UpdateRefreshToken(ctx context.Context, appID, token string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET refresh_token = ?, updated_at = CURRENT_TIMESTAMP WHERE app_id = ?`, token, appID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token[%s]: %w", appID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, appID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE app_id = ?`, appID)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", appID, err)
	}
	return nil
}
