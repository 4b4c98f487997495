package cli

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/futureletter/internal/client/form"
	"github.com/dmitrijs2005/futureletter/internal/client/render"
)

// terminalSink renders view-model events to the terminal and keeps the
// composed form between attempts until a send succeeds.
type terminalSink struct {
	term *render.Terminal

	mu     sync.Mutex
	busy   bool
	status string
	draft  form.Input
}

func newTerminalSink(t *render.Terminal) *terminalSink {
	return &terminalSink{term: t}
}

func (s *terminalSink) SetBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	s.mu.Unlock()

	if busy {
		s.term.Println("Sealing your letter and sending it to the future...")
	}
}

func (s *terminalSink) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *terminalSink) Notify(title, body string) {
	s.term.Notice(title, body)
}

func (s *terminalSink) ConfirmNeeded(id, title string) {
	s.term.Println(fmt.Sprintf("Cancel letter %q? It will never be delivered. Type yes or no.", title))
}

func (s *terminalSink) ShowLetters(v render.View) {
	s.term.Render(v)
}

func (s *terminalSink) ClearForm() {
	s.mu.Lock()
	s.draft = form.Input{}
	s.mu.Unlock()
}

func (s *terminalSink) SetStatus(status string) {
	s.mu.Lock()
	changed := s.status != status
	s.status = status
	s.mu.Unlock()

	if changed {
		s.term.Status(status)
	}
}

func (s *terminalSink) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *terminalSink) Draft() form.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *terminalSink) SetDraft(d form.Input) {
	s.mu.Lock()
	s.draft = d
	s.mu.Unlock()
}
