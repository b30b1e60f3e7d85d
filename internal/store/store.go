package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/storage"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// Record is implemented by every persisted entity.
type Record interface {
	EntityID() string
}

// collection persists one ordered sequence of records under a single storage
// key. Every mutation is read-whole-collection, modify, write-whole-collection:
// last writer wins and there is no isolation between logical operations. That
// matches the single-writer contract of the system; the mutex below only keeps
// the assumption true for goroutines inside this process.
type collection[T Record] struct {
	backend storage.Backend
	key     string
	mu      sync.Mutex
}

func newCollection[T Record](backend storage.Backend, key string) *collection[T] {
	return &collection[T]{backend: backend, key: key}
}

// GetAll deserializes the stored collection. A missing key reads as an empty
// sequence, and so does stored content that fails to decode; only backend
// failures surface, as a STORAGE_UNREADABLE error.
func (c *collection[T]) GetAll(ctx context.Context) ([]T, error) {
	raw, err := c.backend.Read(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageUnreadable(c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// corrupt content degrades to empty instead of bricking callers
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SetAll overwrites the entire stored collection in a single write.
func (c *collection[T]) SetAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := c.backend.Write(ctx, c.key, raw); err != nil {
		return apperrors.NewStorageUnreadable(c.key, err)
	}
	return nil
}

// Create appends item to the collection. The caller supplies the id; no
// uniqueness check is performed.
func (c *collection[T]) Create(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.GetAll(ctx)
	if err != nil {
		return err
	}
	return c.SetAll(ctx, append(items, item))
}

// Update locates the record by id and applies the mutation in place. A
// missing id is a silent no-op, not an error.
func (c *collection[T]) Update(ctx context.Context, id string, apply func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].EntityID() == id {
			apply(&items[i])
			return c.SetAll(ctx, items)
		}
	}
	return nil
}

// Delete filters the record out; absent ids are a silent no-op.
func (c *collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	return c.SetAll(ctx, kept)
}

// Get returns the record with the given id, if present.
func (c *collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.GetAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if item.EntityID() == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Store owns every persisted collection. Nothing else holds authoritative
// copies; consumers re-read after each mutation.
type Store struct {
	Staff        *StaffStore
	Workstreams  *WorkstreamStore
	Deliverables *DeliverableStore
	PTO          *PTOStore
	Hours        *HoursStore

	backend storage.Backend
	now     func() time.Time
}

// New builds a Store over the given backend.
func New(backend storage.Backend) *Store {
	return NewWithClock(backend, time.Now)
}

// NewWithClock builds a Store with an injected clock for tests.
func NewWithClock(backend storage.Backend, now func() time.Time) *Store {
	s := &Store{backend: backend, now: now}
	s.Staff = &StaffStore{collection: newCollection[domain.Staff](backend, storage.KeyStaff)}
	s.Workstreams = &WorkstreamStore{collection: newCollection[domain.Workstream](backend, storage.KeyWorkstreams)}
	s.Deliverables = &DeliverableStore{collection: newCollection[domain.Deliverable](backend, storage.KeyDeliverables), now: now}
	s.PTO = &PTOStore{collection: newCollection[domain.PTORequest](backend, storage.KeyPTO), now: now}
	s.Hours = &HoursStore{collection: newCollection[domain.HoursLog](backend, storage.KeyHoursLogs)}
	return s
}

// Backend exposes the underlying key/value layer for components that keep
// auxiliary records (session, hints) outside the entity collections.
func (s *Store) Backend() storage.Backend { return s.backend }

// Now returns the store's clock reading.
func (s *Store) Now() time.Time { return s.now() }
