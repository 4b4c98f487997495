package sessions

import (
	"context"

	"github.com/dmitrijs2005/futureletter/internal/client/models"
)

type Repository interface {
	// Get returns the stored session for appID, or nil when none exists.
	Get(ctx context.Context, appID string) (*models.StoredSession, error)
	Save(ctx context.Context, s models.StoredSession) error
	UpdateRefreshToken(ctx context.Context, appID, token string) error
	Delete(ctx context.Context, appID string) error
}
