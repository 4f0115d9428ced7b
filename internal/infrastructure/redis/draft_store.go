package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
	goredis "github.com/redis/go-redis/v9"
)

var _ ports.DraftStore = (*DraftStore)(nil)

const draftKeyPrefix = "draft:"

// DraftStore guarda el borrador de cada sesión como JSON.
type DraftStore struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewDraftStore construye el almacén de borradores.
func NewDraftStore(client goredis.Cmdable, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

// Load devuelve un borrador vacío si la sesión aún no tiene uno.
func (s *DraftStore) Load(ctx context.Context, sessionID string) (*order.Draft, error) {
	raw, err := s.client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return order.NewDraft(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	d := order.NewDraft()
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

// Save reemplaza el borrador completo y renueva su expiración.
func (s *DraftStore) Save(ctx context.Context, sessionID string, draft *order.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Delete elimina el borrador de la sesión.
func (s *DraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
