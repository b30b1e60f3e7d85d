package store

import (
	"context"
	"strings"

	"github.com/govkit/governance-service/internal/domain"
)

// StaffStore persists the staff collection.
type StaffStore struct {
	*collection[domain.Staff]
}

// FindByEmail matches a staff record by case-insensitive email equality.
func (s *StaffStore) FindByEmail(ctx context.Context, email string) (domain.Staff, bool, error) {
	items, err := s.GetAll(ctx)
	if err != nil {
		return domain.Staff{}, false, err
	}
	for _, staff := range items {
		if strings.EqualFold(staff.Email, email) {
			return staff, true, nil
		}
	}
	return domain.Staff{}, false, nil
}

// MatchHint resolves a manually entered username hint against staff names and
// email local parts, case-insensitively.
func (s *StaffStore) MatchHint(ctx context.Context, hint string) (domain.Staff, bool, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return domain.Staff{}, false, nil
	}
	items, err := s.GetAll(ctx)
	if err != nil {
		return domain.Staff{}, false, err
	}
	for _, staff := range items {
		local, _, _ := strings.Cut(staff.Email, "@")
		if strings.EqualFold(staff.Name, hint) || strings.EqualFold(local, hint) {
			return staff, true, nil
		}
	}
	return domain.Staff{}, false, nil
}

// FirstAdmin returns the first Admin-role staff entry in collection order.
func (s *StaffStore) FirstAdmin(ctx context.Context) (domain.Staff, bool, error) {
	items, err := s.GetAll(ctx)
	if err != nil {
		return domain.Staff{}, false, err
	}
	for _, staff := range items {
		if staff.UserRole == domain.RoleAdmin {
			return staff, true, nil
		}
	}
	return domain.Staff{}, false, nil
}
