package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/futureletter/internal/common"
	"github.com/dmitrijs2005/futureletter/internal/cryptox"
	"github.com/dmitrijs2005/futureletter/internal/logging"
	"github.com/dmitrijs2005/futureletter/internal/server/broker"
	"github.com/dmitrijs2005/futureletter/internal/server/metrics"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrSubscriptionClosed is returned by Watch when the broker drops the
// subscription.
var ErrSubscriptionClosed = errors.New("subscription closed")

// LetterService stores letters per owner and keeps watchers up to date.
// Content is sealed before it reaches storage.
type LetterService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sealer      *cryptox.Sealer
	broker      broker.Broker
	metrics     *metrics.Metrics
	logger      logging.Logger
	validate    *validator.Validate
	newID       func() string
}

func NewLetterService(db *sql.DB, m repomanager.RepositoryManager, sealer *cryptox.Sealer,
	b broker.Broker, mt *metrics.Metrics, logger logging.Logger) *LetterService {
	return &LetterService{
		db:          db,
		repomanager: m,
		sealer:      sealer,
		broker:      b,
		metrics:     mt,
		logger:      logger.With("module", "letters"),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		newID:       uuid.NewString,
	}
}

// Add stores a new letter for owner. Ownership always comes from owner,
// never from the letter itself.
func (s *LetterService) Add(ctx context.Context, owner models.Owner, letter *models.Letter) (*models.Letter, error) {
	l := *letter
	l.ID = s.newID()
	l.AppID = owner.AppID
	l.UserID = owner.UserID
	l.Sent = false

	if err := s.validate.Struct(&l); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
	}

	l.SealedContent, l.ContentNonce = s.sealer.Seal([]byte(l.Content), l.ID)

	created, err := s.repomanager.Letters(s.db).Create(ctx, &l)
	if err != nil {
		return nil, fmt.Errorf("error creating letter: %w", err)
	}
	created.Content = l.Content

	s.metrics.LettersAdded.Inc()
	s.publish(ctx, owner)

	return created, nil
}

// Delete removes owner's letter id. It reports whether a letter was removed;
// unknown ids and letters of other owners are not errors.
func (s *LetterService) Delete(ctx context.Context, owner models.Owner, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	removed, err := s.repomanager.Letters(s.db).Delete(ctx, owner, id)
	if err != nil {
		return false, fmt.Errorf("error deleting letter: %w", err)
	}

	if removed {
		s.metrics.LettersCancelled.Inc()
		s.publish(ctx, owner)
	}

	return removed, nil
}

// Pending returns owner's unsent letters, ordered by delivery time and id,
// with content opened.
func (s *LetterService) Pending(ctx context.Context, owner models.Owner) ([]*models.Letter, error) {
	letters, err := s.repomanager.Letters(s.db).SelectPending(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error selecting letters: %w", err)
	}

	for _, l := range letters {
		plain, err := s.sealer.Open(l.SealedContent, l.ContentNonce, l.ID)
		if err != nil {
			s.logger.Error(ctx, "cannot open letter content", "id", l.ID, "error", err)
			return nil, common.ErrorInternal
		}
		l.Content = string(plain)
	}

	return letters, nil
}

// Watch emits owner's pending letters once, then again each time the set of
// pending letters changes. It returns nil when ctx ends and the emit error
// if emit fails.
func (s *LetterService) Watch(ctx context.Context, owner models.Owner, emit func([]*models.Letter) error) error {
	changes, cancel, err := s.broker.Subscribe(ctx, owner)
	if err != nil {
		return fmt.Errorf("error subscribing: %w", err)
	}
	defer cancel()

	s.metrics.ActiveSubscriptions.Inc()
	defer s.metrics.ActiveSubscriptions.Dec()

	letters, err := s.Pending(ctx, owner)
	if err != nil {
		return err
	}
	if err := emit(letters); err != nil {
		return err
	}
	last := letterIDs(letters)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return ErrSubscriptionClosed
			}

			letters, err := s.Pending(ctx, owner)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}

			ids := letterIDs(letters)
			if slices.Equal(ids, last) {
				continue
			}
			if err := emit(letters); err != nil {
				return err
			}
			last = ids
		}
	}
}

func (s *LetterService) publish(ctx context.Context, owner models.Owner) {
	if err := s.broker.Publish(ctx, owner); err != nil {
		s.logger.Warn(ctx, "change notification failed", "app_id", owner.AppID, "user_id", owner.UserID, "error", err)
	}
}

// letterIDs returns the ids sorted, so that equal sets compare equal.
func letterIDs(letters []*models.Letter) []string {
	ids := make([]string, 0, len(letters))
	for _, l := range letters {
		ids = append(ids, l.ID)
	}
	slices.Sort(ids)
	return ids
}
