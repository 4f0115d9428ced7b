package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
)

var (
	_ ports.SessionStore   = (*SessionStore)(nil)
	_ ports.DraftStore     = (*DraftStore)(nil)
	_ ports.EventPublisher = (*Publisher)(nil)
)

// SessionStore clave-valor en memoria, sin expiración.
type SessionStore struct {
	mu sync.Mutex
	kv map[string]string
}

// NewSessionStore construye el almacén vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{kv: make(map[string]string)}
}

func (s *SessionStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.kv[key]
	return v, ok, nil
}

func (s *SessionStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = value
	return nil
}

func (s *SessionStore) Remove(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.kv, k)
	}
	return nil
}

// DraftStore borradores en memoria, serializados igual que en Redis.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte

	// DeleteErr, si no es nil, hace fallar Delete.
	DeleteErr error
}

// NewDraftStore construye el almacén vacío.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string][]byte)}
}

func (s *DraftStore) Load(_ context.Context, sessionID string) (*order.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := order.NewDraft()
	raw, ok := s.drafts[sessionID]
	if !ok {
		return d, nil
	}
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DraftStore) Save(_ context.Context, sessionID string, d *order.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = raw
	return nil
}

func (s *DraftStore) Delete(_ context.Context, sessionID string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

// Event evento publicado.
type Event struct {
	RoutingKey string
	Payload    any
}

// Publisher guarda los eventos publicados.
type Publisher struct {
	mu     sync.Mutex
	events []Event

	// Err, si no es nil, hace fallar Publish.
	Err error
}

func (p *Publisher) Publish(_ context.Context, routingKey string, payload any) error {
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Event{RoutingKey: routingKey, Payload: payload})
	return nil
}

// Events devuelve una copia de los eventos publicados.
func (p *Publisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}
