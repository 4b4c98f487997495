package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

// Repository issues, looks up, and revokes refresh tokens.
type Repository interface {
	Create(ctx context.Context, userID, appID, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for an unknown token.
	Delete(ctx context.Context, token string) error
}
