package store

import (
	"context"
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

// DeliverableStore persists the deliverable collection. Every update stamps a
// fresh UpdatedAt; nothing else links Status and Progress, so a Completed
// deliverable may sit below 100%.
type DeliverableStore struct {
	*collection[domain.Deliverable]
	now func() time.Time
}

// Update applies the mutation and refreshes UpdatedAt. Missing ids are a
// silent no-op, as everywhere in the store.
func (s *DeliverableStore) Update(ctx context.Context, id string, apply func(*domain.Deliverable)) error {
	return s.collection.Update(ctx, id, func(d *domain.Deliverable) {
		apply(d)
		d.UpdatedAt = s.now()
	})
}

// SetStatus moves a deliverable to a new board column.
func (s *DeliverableStore) SetStatus(ctx context.Context, id string, status domain.DeliverableStatus) error {
	return s.Update(ctx, id, func(d *domain.Deliverable) {
		d.Status = status
	})
}
