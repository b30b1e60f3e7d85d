package store

import (
	"context"

	"github.com/govkit/governance-service/internal/domain"
)

// HoursStore persists the hours-log collection.
type HoursStore struct {
	*collection[domain.HoursLog]
}

// ListByStaff returns the logs recorded by one staff member, in insertion order.
func (s *HoursStore) ListByStaff(ctx context.Context, staffID string) ([]domain.HoursLog, error) {
	items, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HoursLog, 0, len(items))
	for _, log := range items {
		if log.StaffID == staffID {
			out = append(out, log)
		}
	}
	return out, nil
}
