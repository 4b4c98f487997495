// Package view holds the client's view-model: the submission state machine,
// the two-step cancel confirmation and the projection of live snapshots onto
// a rendering target.
package view

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/client/form"
	"github.com/dmitrijs2005/futureletter/internal/client/models"
	"github.com/dmitrijs2005/futureletter/internal/client/render"
	"github.com/dmitrijs2005/futureletter/internal/client/session"
	"github.com/dmitrijs2005/futureletter/internal/common"
)

var (
	ErrBusy                  = errors.New("a letter is already being sent")
	ErrNoPendingConfirmation = errors.New("no pending confirmation for this letter")
	ErrUnknownLetter         = errors.New("no such letter in the list")
)

type State int

const (
	Idle State = iota
	Validating
	Rejected
	Submitting
	Animating
	Persisting
	Success
	Failed
)

var stateNames = [...]string{"idle", "validating", "rejected", "submitting", "animating", "persisting", "success", "failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Sink is the rendering target driven by the model.
type Sink interface {
	SetBusy(busy bool)
	Notify(title, body string)
	ConfirmNeeded(id, title string)
	ShowLetters(v render.View)
	ClearForm()
	SetStatus(status string)
}

// Letters is the letter repository. A nil Letters puts the model in demo
// mode.
type Letters interface {
	Connected() bool
	Submit(ctx context.Context, d form.Draft) (string, error)
	Cancel(ctx context.Context, id string) error
}

type Options struct {
	Letters        Letters
	Location       *time.Location
	DateLayout     string
	AnimationDelay time.Duration
	Now            func() time.Time
	// OnTransition, when set, observes every state change.
	OnTransition func(State)
}

type pendingCancel struct {
	id    string
	title string
}

type Model struct {
	sink    Sink
	letters Letters
	loc     *time.Location
	layout  string
	delay   time.Duration
	now     func() time.Time
	observe func(State)

	mu      sync.Mutex
	state   State
	busy    bool
	pending *pendingCancel
	last    render.View
}

func NewModel(sink Sink, opts Options) *Model {
	m := &Model{
		sink:    sink,
		letters: opts.Letters,
		loc:     opts.Location,
		layout:  opts.DateLayout,
		delay:   opts.AnimationDelay,
		now:     opts.Now,
		observe: opts.OnTransition,
		last:    render.View{Empty: true},
	}
	if m.loc == nil {
		m.loc = time.Local
	}
	if m.layout == "" {
		m.layout = time.RFC1123
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// Demo reports whether the model runs without a letter store.
func (m *Model) Demo() bool { return m.letters == nil }

func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Model) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
	if m.observe != nil {
		m.observe(s)
	}
}

// Submit validates in and, when valid, persists it after the send
// animation. Only one submission runs at a time.
func (m *Model) Submit(ctx context.Context, in form.Input) error {
	m.mu.Lock()
	if m.busy {
		m.mu.Unlock()
		return ErrBusy
	}
	m.busy = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.busy = false
		m.mu.Unlock()
		m.setState(Idle)
	}()

	m.setState(Validating)
	draft, err := form.Validate(in, m.now(), m.loc)
	if err != nil {
		m.setState(Rejected)
		var ve *form.ValidationError
		if errors.As(err, &ve) {
			m.sink.Notify(ve.Title(), ve.Error())
		}
		return err
	}

	if m.Demo() {
		m.sink.Notify("Demo mode", "Sending is disabled because no server is configured.")
		return nil
	}

	if !m.letters.Connected() {
		m.setState(Failed)
		m.notifyNotConnected()
		return session.ErrNotConnected
	}

	m.setState(Submitting)
	m.sink.SetBusy(true)
	defer m.sink.SetBusy(false)

	m.setState(Animating)
	if err := wait(ctx, m.delay); err != nil {
		m.setState(Failed)
		m.sink.Notify("Error", "Sending was interrupted. The letter was not saved.")
		return err
	}

	m.setState(Persisting)
	if _, err := m.letters.Submit(ctx, draft); err != nil {
		m.setState(Failed)
		if errors.Is(err, session.ErrNotConnected) {
			m.notifyNotConnected()
		} else {
			m.sink.Notify("Error", "Could not save the letter to the future. Try again.")
		}
		return err
	}

	m.setState(Success)
	m.sink.ClearForm()
	at := draft.DeliveryAt.In(m.loc)
	m.sink.Notify("Locked!", fmt.Sprintf("Letter %q is locked and will be delivered on %s at %s.",
		draft.Title, at.Format(form.DateLayout), at.Format(form.TimeLayout)))
	return nil
}

func (m *Model) notifyNotConnected() {
	m.sink.Notify("Connection error", "Could not send. Make sure you are connected to the server.")
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resolve finds a listed letter by 1-based position or id.
func (m *Model) Resolve(ref string) (render.Item, bool) {
	m.mu.Lock()
	v := m.last
	m.mu.Unlock()

	if n, err := strconv.Atoi(ref); err == nil {
		return v.Lookup(n, "")
	}
	return v.Lookup(0, ref)
}

// RequestCancel asks the sink to confirm cancelling letter id.
func (m *Model) RequestCancel(id string) error {
	m.mu.Lock()
	it, ok := m.last.Lookup(0, id)
	if !ok {
		m.mu.Unlock()
		return ErrUnknownLetter
	}
	m.pending = &pendingCancel{id: it.ID, title: it.Title}
	m.mu.Unlock()

	m.sink.ConfirmNeeded(it.ID, it.Title)
	return nil
}

// PendingCancel returns the letter awaiting confirmation, if any.
func (m *Model) PendingCancel() (id, title string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return "", "", false
	}
	return m.pending.id, m.pending.title, true
}

// ConfirmCancel cancels id if it is the letter awaiting confirmation.
func (m *Model) ConfirmCancel(ctx context.Context, id string) error {
	m.mu.Lock()
	if m.pending == nil || m.pending.id != id {
		m.mu.Unlock()
		return ErrNoPendingConfirmation
	}
	m.pending = nil
	m.mu.Unlock()

	if m.Demo() {
		return nil
	}

	if err := m.letters.Cancel(ctx, id); err != nil {
		m.sink.Notify("Delete failed", "Could not delete the letter. Try again.")
		return err
	}
	return nil
}

func (m *Model) AbortCancel() {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
}

// OnSnapshot projects a live snapshot and shows it.
func (m *Model) OnSnapshot(letters []models.Letter) {
	v := render.Project(letters, m.loc, m.layout)

	m.mu.Lock()
	m.last = v
	m.mu.Unlock()

	m.sink.ShowLetters(v)
}

// Last returns the most recent projected view.
func (m *Model) Last() render.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *Model) OnSubscriptionError(err error) {
	m.sink.Notify("Live list unavailable", "Could not load your letters. Type 'reconnect' to try again.")
}

const (
	StatusConnecting = "connecting"
	StatusFailed     = "connection failed"
	StatusDemo       = "demo mode"
)

func (m *Model) Connecting() { m.sink.SetStatus(StatusConnecting) }

// Connected shows the short form of the signed-in user id.
func (m *Model) Connected(userID string) {
	m.sink.SetStatus("connected as " + common.ShortID(userID, 8))
}

func (m *Model) ConnectionFailed(err error) {
	m.sink.SetStatus(StatusFailed)
	m.sink.Notify("Connection error", fmt.Sprintf("Could not sign in: %v", err))
}

// DemoMode shows the demo status and an empty list.
func (m *Model) DemoMode() {
	m.sink.SetStatus(StatusDemo)
	m.OnSnapshot(nil)
}
