package broker

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

// Memory fans notifications out within a single server process.
type Memory struct {
	mu   sync.Mutex
	next uint64
	subs map[models.Owner]map[uint64]chan struct{}
}

func NewMemory() *Memory {
	return &Memory{subs: make(map[models.Owner]map[uint64]chan struct{})}
}

func (m *Memory) Publish(_ context.Context, owner models.Owner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ch := range m.subs[owner] {
		notify(ch)
	}
	return nil
}

func (m *Memory) Subscribe(_ context.Context, owner models.Owner) (<-chan struct{}, func(), error) {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	id := m.next
	m.next++
	if m.subs[owner] == nil {
		m.subs[owner] = make(map[uint64]chan struct{})
	}
	m.subs[owner][id] = ch
	m.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs[owner], id)
			if len(m.subs[owner]) == 0 {
				delete(m.subs, owner)
			}
			close(ch)
		})
	}

	return ch, cancel, nil
}

// Subscribers reports how many subscriptions owner currently has.
func (m *Memory) Subscribers(owner models.Owner) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs[owner])
}

func (m *Memory) Close() error {
	return nil
}
