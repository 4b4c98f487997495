// Package session obtains a stable user identity before any letter operation
// and keeps the explicit session context the rest of the client is scoped by.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/futureletter/internal/client/client"
	"github.com/dmitrijs2005/futureletter/internal/client/models"
	"github.com/dmitrijs2005/futureletter/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/futureletter/internal/logging"
)

// ErrNotConnected is returned by letter operations while no connected
// session exists.
var ErrNotConnected = errors.New("not connected")

// IdentityError reports a failed bootstrap. Op names the sign-in path that
// was attempted last.
type IdentityError struct {
	Op  string
	Err error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity %s: %v", e.Op, e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// IdentityProvider is the subset of client.Client used for sign-in.
type IdentityProvider interface {
	SignInAnonymously(ctx context.Context, appID string) (*client.Identity, error)
	SignInWithCustomToken(ctx context.Context, appID, token string) (*client.Identity, error)
	RefreshSession(ctx context.Context, refreshToken string) (*client.Identity, error)
	OnTokensRotated(fn func(refreshToken string))
}

// State is delivered to OnChange listeners. A zero UserID means no session.
type State struct {
	Connected bool
	UserID    string
}

type Session struct {
	appID     string
	userID    string
	anonymous bool

	mu        sync.Mutex
	connected bool
	listeners []func(State)
	done      chan struct{}
}

// New returns a connected session. Bootstrap is the usual constructor.
func New(appID, userID string, anonymous bool) *Session {
	return &Session{appID: appID, userID: userID, anonymous: anonymous, connected: true, done: make(chan struct{})}
}

// Done is closed when the session is torn down.
func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) AppID() string   { return s.appID }
func (s *Session) UserID() string  { return s.userID }
func (s *Session) Anonymous() bool { return s.anonymous }

// Connected reports whether s is usable. A nil session is never connected.
func (s *Session) Connected() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Session) state() State {
	if !s.connected {
		return State{}
	}
	return State{Connected: true, UserID: s.userID}
}

// OnChange registers fn and calls it right away with the current state.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	st := s.state()
	s.mu.Unlock()

	fn(st)
}

// Close tears the session down and notifies listeners once.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return nil
	}
	s.connected = false
	close(s.done)
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(State{})
	}
	return nil
}

type options struct {
	logger logging.Logger
}

type Option func(*options)

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Bootstrap signs in once. With no initialToken a stored refresh token for
// appID is tried first so restarts keep the same user; if that fails, or an
// initialToken is given, the custom token or anonymous path is used. Failure
// is reported as *IdentityError and is not retried.
func Bootstrap(ctx context.Context, idp IdentityProvider, store sessions.Repository,
	appID, initialToken string, opts ...Option) (*Session, error) {

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		id  *client.Identity
		err error
		op  string
	)

	if initialToken == "" {
		id = resume(ctx, idp, store, appID, o.logger)
	}

	if id == nil {
		if initialToken != "" {
			op = "custom token"
			id, err = idp.SignInWithCustomToken(ctx, appID, initialToken)
		} else {
			op = "anonymous"
			id, err = idp.SignInAnonymously(ctx, appID)
		}
		if err != nil {
			return nil, &IdentityError{Op: op, Err: err}
		}
	}

	err = store.Save(ctx, models.StoredSession{
		AppID:        appID,
		UserID:       id.UserID,
		Anonymous:    id.Anonymous,
		RefreshToken: id.RefreshToken,
	})
	if err != nil {
		return nil, &IdentityError{Op: "persist", Err: err}
	}

	idp.OnTokensRotated(func(token string) {
		if err := store.UpdateRefreshToken(context.Background(), appID, token); err != nil && o.logger != nil {
			o.logger.Warn(context.Background(), "failed to persist rotated refresh token", "error", err)
		}
	})

	return New(appID, id.UserID, id.Anonymous), nil
}

func resume(ctx context.Context, idp IdentityProvider, store sessions.Repository, appID string, l logging.Logger) *client.Identity {
	stored, err := store.Get(ctx, appID)
	if err != nil || stored == nil || stored.RefreshToken == "" {
		if err != nil && l != nil {
			l.Warn(ctx, "failed to read stored session", "error", err)
		}
		return nil
	}

	id, err := idp.RefreshSession(ctx, stored.RefreshToken)
	if err != nil {
		if l != nil {
			l.Info(ctx, "stored session not resumed", "error", err)
		}
		return nil
	}
	return id
}
