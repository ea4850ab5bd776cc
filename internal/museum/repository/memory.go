package repository

import (
	"context"
	"sync"

	"github.com/museumsapi/museums-api/internal/museum"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps museums in process memory. It is used by tests and when
// no MongoDB URI is configured. Listing follows insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]*museum.Museum
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*museum.Museum)}
}

func (m *MemoryRepo) List(ctx context.Context) ([]*museum.Museum, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*museum.Museum, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.store[id].Clone())
	}
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*museum.Museum, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[oid]; ok {
		return d.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) Create(ctx context.Context, doc *museum.Museum) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := doc.Clone()
	stored.ID = primitive.NewObjectID()
	m.store[stored.ID] = stored
	m.order = append(m.order, stored.ID)
	doc.ID = stored.ID
	return stored.ID.Hex(), nil
}

func (m *MemoryRepo) Replace(ctx context.Context, id string, doc *museum.Museum) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[oid]; !ok {
		return ErrNotFound
	}
	stored := doc.Clone()
	stored.ID = oid
	m.store[oid] = stored
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[oid]; !ok {
		return ErrNotFound
	}
	delete(m.store, oid)
	for i, v := range m.order {
		if v == oid {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error { return nil }
