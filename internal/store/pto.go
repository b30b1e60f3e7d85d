package store

import (
	"context"
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

// PTOStore persists the PTO request collection.
type PTOStore struct {
	*collection[domain.PTORequest]
	now func() time.Time
}

// Approve resolves a pending request, stamping the approver and decision
// time. Requests already decided are left untouched.
func (s *PTOStore) Approve(ctx context.Context, id, approverID string) error {
	return s.decide(ctx, id, approverID, domain.PTOApproved)
}

// Reject resolves a pending request as rejected.
func (s *PTOStore) Reject(ctx context.Context, id, approverID string) error {
	return s.decide(ctx, id, approverID, domain.PTORejected)
}

func (s *PTOStore) decide(ctx context.Context, id, approverID string, status domain.PTOStatus) error {
	return s.Update(ctx, id, func(r *domain.PTORequest) {
		if r.Status != domain.PTOPending {
			return
		}
		decidedAt := s.now()
		r.Status = status
		r.ApprovedBy = &approverID
		r.ApprovedAt = &decidedAt
	})
}
