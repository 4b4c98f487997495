package letters

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/futureletter/internal/dbx"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.Letter) (*models.Letter, error) {
	query := `
		INSERT INTO letters (id, app_id, user_id, title, sealed_content, content_nonce,
			recipient_email, sender_name, delivery_timestamp, sent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE)
		RETURNING sent, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		l.ID, l.AppID, l.UserID, l.Title, l.SealedContent, l.ContentNonce,
		l.RecipientEmail, l.SenderName, l.DeliveryTimestamp,
	).Scan(&l.Sent, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner models.Owner, id string) (bool, error) {
	query := `
		DELETE FROM letters
		WHERE id = $1 AND app_id = $2 AND user_id = $3
	`
	n, err := dbx.ExecAffected(ctx, r.db, query, id, owner.AppID, owner.UserID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) SelectPending(ctx context.Context, owner models.Owner) ([]*models.Letter, error) {
	query := `
		SELECT id, title, sealed_content, content_nonce, recipient_email, sender_name,
			delivery_timestamp, sent, created_at
		FROM letters
		WHERE app_id = $1 AND user_id = $2 AND sent = FALSE
		ORDER BY delivery_timestamp, id
	`
	rows, err := r.db.QueryContext(ctx, query, owner.AppID, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Letter, 0)
	for rows.Next() {
		l := &models.Letter{AppID: owner.AppID, UserID: owner.UserID}
		if err := rows.Scan(&l.ID, &l.Title, &l.SealedContent, &l.ContentNonce, &l.RecipientEmail,
			&l.SenderName, &l.DeliveryTimestamp, &l.Sent, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
