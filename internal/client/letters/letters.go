// Package letters is the client's letter repository: submit, cancel and the
// live list, all scoped by the current session.
package letters

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/client/client"
	"github.com/dmitrijs2005/futureletter/internal/client/form"
	"github.com/dmitrijs2005/futureletter/internal/client/models"
	"github.com/dmitrijs2005/futureletter/internal/client/session"
	"github.com/dmitrijs2005/futureletter/internal/logging"
)

// Store is the remote document store.
type Store interface {
	AddLetter(ctx context.Context, letter models.Letter) (*models.Letter, error)
	DeleteLetter(ctx context.Context, id string) (bool, error)
	Subscribe(ctx context.Context) (client.SnapshotStream, error)
}

// CollectionPath is the logical location of a user's letters.
func CollectionPath(appID, userID string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/future_letters", appID, userID)
}

type Repository struct {
	store   Store
	session *session.Session
	timeout time.Duration
	logger  logging.Logger
}

// New returns a repository bound to s. A zero timeout leaves calls
// unbounded.
func New(store Store, s *session.Session, timeout time.Duration, logger logging.Logger) *Repository {
	return &Repository{store: store, session: s, timeout: timeout, logger: logger.With("module", "letters")}
}

func (r *Repository) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *Repository) path() string {
	return CollectionPath(r.session.AppID(), r.session.UserID())
}

// Submit stores d as a pending letter and returns its id.
func (r *Repository) Submit(ctx context.Context, d form.Draft) (string, error) {
	if !r.session.Connected() {
		return "", session.ErrNotConnected
	}

	ctx, cancel := r.bounded(ctx)
	defer cancel()

	created, err := r.store.AddLetter(ctx, models.Letter{
		Title:             d.Title,
		Content:           d.Content,
		RecipientEmail:    d.RecipientEmail,
		SenderName:        d.SenderName,
		DeliveryTimestamp: d.DeliveryTimestamp,
		Sent:              false,
	})
	if err != nil {
		r.logger.Error(ctx, "error adding letter", "path", r.path(), "error", err)
		return "", &StoreWriteError{Err: err}
	}

	r.logger.Debug(ctx, "letter added", "path", r.path(), "id", created.ID)
	return created.ID, nil
}

// Cancel deletes letter id. Unknown ids are not an error.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	if !r.session.Connected() {
		return session.ErrNotConnected
	}

	ctx, cancel := r.bounded(ctx)
	defer cancel()

	deleted, err := r.store.DeleteLetter(ctx, id)
	if err != nil {
		r.logger.Error(ctx, "error deleting letter", "path", r.path(), "id", id, "error", err)
		return &StoreDeleteError{ID: id, Err: err}
	}

	r.logger.Debug(ctx, "letter cancelled", "path", r.path(), "id", id, "deleted", deleted)
	return nil
}

// Subscribe delivers each snapshot of pending letters to onChange until ctx
// is cancelled or the session ends, then returns nil. A failure to open or
// an interrupted stream is passed to onError as *SubscriptionError and
// returned. It blocks; callers run it in its own goroutine.
func (r *Repository) Subscribe(ctx context.Context, onChange func([]models.Letter), onError func(error)) error {
	if !r.session.Connected() {
		return session.ErrNotConnected
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-r.session.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	fail := func(err error) error {
		if ctx.Err() != nil {
			return nil
		}
		serr := &SubscriptionError{Path: r.path(), Err: err}
		r.logger.Error(ctx, "error listening to letters", "path", r.path(), "error", err)
		if onError != nil {
			onError(serr)
		}
		return serr
	}

	stream, err := r.store.Subscribe(ctx)
	if err != nil {
		return fail(err)
	}

	for {
		snap, err := stream.Recv()
		if err != nil {
			return fail(err)
		}
		onChange(pending(snap))
	}
}

func pending(in []models.Letter) []models.Letter {
	out := make([]models.Letter, 0, len(in))
	for _, l := range in {
		if !l.Sent {
			out = append(out, l)
		}
	}
	return out
}
