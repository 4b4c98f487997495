package client

import (
	"context"

	"github.com/dmitrijs2005/futureletter/internal/client/models"
)

// Identity is the result of a sign-in or a session refresh.
type Identity struct {
	UserID       string
	Anonymous    bool
	RefreshToken string
}

// SnapshotStream yields complete snapshots of the caller's pending letters.
type SnapshotStream interface {
	Recv() ([]models.Letter, error)
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	SignInAnonymously(ctx context.Context, appID string) (*Identity, error)
	SignInWithCustomToken(ctx context.Context, appID, token string) (*Identity, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Identity, error)
	// OnTokensRotated registers fn to be called with the new refresh token
	// after a transparent access-token refresh.
	OnTokensRotated(fn func(refreshToken string))

	AddLetter(ctx context.Context, letter models.Letter) (*models.Letter, error)
	DeleteLetter(ctx context.Context, id string) (bool, error)
	Subscribe(ctx context.Context) (SnapshotStream, error)
}
