// Package letters stores future letters, scoped by application and user.
package letters

import (
	"context"

	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

type Repository interface {
	// Create inserts letter with its sealed content and fills the
	// storage-assigned CreatedAt and Sent fields.
	Create(ctx context.Context, letter *models.Letter) (*models.Letter, error)

	// Delete removes the letter only if owner matches. It reports whether a
	// row was removed; a missing or foreign id is not an error.
	Delete(ctx context.Context, owner models.Owner, id string) (bool, error)

	// SelectPending returns owner's letters with sent = false ordered by
	// delivery timestamp, then id. Content stays sealed.
	SelectPending(ctx context.Context, owner models.Owner) ([]*models.Letter, error)
}
