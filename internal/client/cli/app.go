package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/client/client"
	"github.com/dmitrijs2005/futureletter/internal/client/config"
	"github.com/dmitrijs2005/futureletter/internal/client/form"
	"github.com/dmitrijs2005/futureletter/internal/client/letters"
	"github.com/dmitrijs2005/futureletter/internal/client/render"
	"github.com/dmitrijs2005/futureletter/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/futureletter/internal/client/session"
	"github.com/dmitrijs2005/futureletter/internal/client/view"
	"github.com/dmitrijs2005/futureletter/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	baseLog logging.Logger

	db     *sql.DB
	client client.Client
	store  sessions.Repository

	in    *bufio.Reader
	out   io.Writer
	term  *render.Terminal
	sink  *terminalSink
	model *view.Model
	now   func() time.Time

	mu        sync.Mutex
	session   *session.Session
	repo      *letters.Repository
	subCancel context.CancelFunc
	subWG     sync.WaitGroup
}

// NewApp builds the client from c. In demo mode no local database or
// server connection is opened.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(c.LogLevel))
	a := newApp(c, logger, os.Stdin, os.Stdout, render.Width(os.Stdout))

	if c.DemoMode() {
		return a, nil
	}

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.LocalDBPath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.db = db
	a.client = apiClient
	a.store = sessions.NewSQLiteRepository(db)
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, in io.Reader, out io.Writer, width int) *App {
	a := &App{
		config:  c,
		logger:  logger.With("module", "cli"),
		baseLog: logger,
		in:      bufio.NewReader(in),
		out:     out,
		term:    render.NewTerminal(out, width),
		now:     time.Now,
	}
	a.sink = newTerminalSink(a.term)

	opts := view.Options{
		Location:       time.Local,
		DateLayout:     c.DateLayout,
		AnimationDelay: c.AnimationDelay,
		Now:            func() time.Time { return a.now() },
	}
	if !c.DemoMode() {
		opts.Letters = liveLetters{a}
	}
	a.model = view.NewModel(a.sink, opts)
	return a
}

// liveLetters forwards to the repository of the current session.
type liveLetters struct{ a *App }

func (l liveLetters) Connected() bool {
	return l.a.letters() != nil && l.a.currentSession().Connected()
}

func (l liveLetters) Submit(ctx context.Context, d form.Draft) (string, error) {
	r := l.a.letters()
	if r == nil {
		return "", session.ErrNotConnected
	}
	return r.Submit(ctx, d)
}

func (l liveLetters) Cancel(ctx context.Context, id string) error {
	r := l.a.letters()
	if r == nil {
		return session.ErrNotConnected
	}
	return r.Cancel(ctx, id)
}

func (a *App) letters() *letters.Repository {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.repo
}

func (a *App) currentSession() *session.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Run connects, then serves the REPL until the user exits, stdin closes or
// the process is interrupted.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.close()

	a.term.Println("Welcome to FutureLetter. Write to your future self (type 'help' for commands).")
	a.connect(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.sink.Status, a.in)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	return nil
}

// connect bootstraps identity once and opens the live list.
func (a *App) connect(ctx context.Context) {
	if a.config.DemoMode() {
		a.model.DemoMode()
		return
	}

	a.model.Connecting()

	bctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	s, err := session.Bootstrap(bctx, a.client, a.store, a.config.AppID, a.config.InitialAuthToken,
		session.WithLogger(a.baseLog.With("module", "session")))
	if err != nil {
		a.logger.Error(ctx, "identity bootstrap failed", "app_id", a.config.AppID, "error", err)
		a.model.ConnectionFailed(err)
		return
	}

	s.OnChange(func(st session.State) {
		if st.Connected {
			a.model.Connected(st.UserID)
		} else {
			a.sink.SetStatus(view.StatusFailed)
		}
	})

	repo := letters.New(a.client, s, a.config.RequestTimeout, a.baseLog)

	a.mu.Lock()
	a.session = s
	a.repo = repo
	a.mu.Unlock()

	a.logger.Info(ctx, "signed in", "path", letters.CollectionPath(s.AppID(), s.UserID()), "anonymous", s.Anonymous())
	a.subscribe(ctx)
}

// subscribe (re)opens the live list in the background.
func (a *App) subscribe(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.repo == nil {
		return
	}
	if a.subCancel != nil {
		a.subCancel()
	}

	subCtx, cancel := context.WithCancel(ctx)
	a.subCancel = cancel
	repo := a.repo

	a.subWG.Add(1)
	go func() {
		defer a.subWG.Done()
		_ = repo.Subscribe(subCtx, a.model.OnSnapshot, a.model.OnSubscriptionError)
	}()
}

func (a *App) close() {
	a.mu.Lock()
	if a.subCancel != nil {
		a.subCancel()
	}
	s := a.session
	a.mu.Unlock()

	if s != nil {
		_ = s.Close(context.Background())
	}
	a.subWG.Wait()

	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// Write prompts for every form field and submits the letter.
func (a *App) Write(ctx context.Context) error {
	prev := a.sink.Draft()
	today := a.now().Format(form.DateLayout)

	var in form.Input
	var err error
	steps := []struct {
		dst    *string
		prompt string
		cur    string
	}{
		{&in.Title, "Title (optional)", prev.Title},
		{&in.RecipientEmail, "Recipient email", prev.RecipientEmail},
		{&in.SenderName, "Your name (optional)", prev.SenderName},
		{&in.DeliveryDate, fmt.Sprintf("Delivery date YYYY-MM-DD (today is %s)", today), prev.DeliveryDate},
		{&in.DeliveryTime, "Delivery time HH:MM (default 00:00)", prev.DeliveryTime},
	}

	in.Content, err = GetMultiline(a.in, "Your letter", prev.Content, a.out)
	if err != nil {
		return err
	}
	for _, st := range steps {
		if *st.dst, err = GetWithDefault(a.in, st.prompt, st.cur, a.out); err != nil {
			return err
		}
	}

	a.sink.SetDraft(in)
	err = a.model.Submit(ctx, in)
	if errors.Is(err, view.ErrBusy) {
		a.term.Println("A letter is already on its way. Please wait.")
	}
	return err
}

func (a *App) List(ctx context.Context) error {
	a.term.Render(a.model.Last())
	return nil
}

// Delete starts the cancel confirmation for the letter at position or id ref.
func (a *App) Delete(ctx context.Context, ref string) error {
	it, ok := a.model.Resolve(ref)
	if !ok {
		a.term.Println(fmt.Sprintf("No letter %q in the list. Type 'list' to see numbers.", ref))
		return view.ErrUnknownLetter
	}
	return a.model.RequestCancel(it.ID)
}

func (a *App) Confirm(ctx context.Context) error {
	id, _, ok := a.model.PendingCancel()
	if !ok {
		a.term.Println("Nothing to confirm.")
		return view.ErrNoPendingConfirmation
	}
	if err := a.model.ConfirmCancel(ctx, id); err != nil {
		return err
	}
	a.term.Println("Letter cancelled.")
	return nil
}

func (a *App) Abort(ctx context.Context) error {
	if _, _, ok := a.model.PendingCancel(); ok {
		a.model.AbortCancel()
		a.term.Println("Kept.")
	}
	return nil
}

func (a *App) ShowStatus(ctx context.Context) error {
	a.term.Println("status: " + a.sink.Status())
	if a.config.DemoMode() {
		a.term.Println("server: none (demo mode)")
		return nil
	}
	a.term.Println("server: " + a.config.ServerEndpointAddr)
	if s := a.currentSession(); s != nil {
		a.term.Println("user:   " + s.UserID())
		a.term.Println("path:   " + letters.CollectionPath(s.AppID(), s.UserID()))
	}
	a.term.Println(fmt.Sprintf("pending letters: %d", len(a.model.Last().Items)))
	return nil
}

// Reconnect signs in again after a failed bootstrap, or reopens the live
// list for the current session.
func (a *App) Reconnect(ctx context.Context) error {
	if a.config.DemoMode() {
		a.term.Println("Demo mode has no server to connect to.")
		return nil
	}
	if a.currentSession().Connected() {
		a.subscribe(ctx)
		return nil
	}
	a.connect(ctx)
	return nil
}
