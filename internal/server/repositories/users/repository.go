// Package users stores identities issued by the server.
package users

import (
	"context"

	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

type Repository interface {
	// Upsert inserts the user or keeps the existing row with the same id,
	// filling CreatedAt from storage either way.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	// GetByID returns common.ErrorNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
