package store

import (
	"context"

	"github.com/govkit/governance-service/internal/domain"
)

func strptr(s string) *string { return &s }

// Seed writes sample data into any collection that is still empty. It is
// idempotent: collections that already hold records are never overwritten.
func (s *Store) Seed(ctx context.Context) error {
	now := s.now()

	staff, err := s.Staff.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		sample := []domain.Staff{
			{
				ID:            "1",
				Name:          "Sarah Johnson",
				Title:         domain.TitleDirector,
				Role:          "Project Manager",
				Email:         "sarah.j@company.com",
				Department:    "PMO",
				WorkstreamIDs: []string{"1"},
				UserRole:      domain.RoleAdmin,
				IsActive:      true,
				CreatedAt:     now,
			},
			{
				ID:            "2",
				Name:          "Michael Chen",
				Title:         domain.TitleSeniorManager,
				Role:          "Senior Developer",
				Email:         "michael.c@company.com",
				Department:    "Engineering",
				SupervisorID:  strptr("1"),
				WorkstreamIDs: []string{"1", "3"},
				UserRole:      domain.RoleManager,
				IsActive:      true,
				CreatedAt:     now,
			},
			{
				ID:            "3",
				Name:          "Emma Wilson",
				Title:         domain.TitleSeniorAssociate,
				Role:          "Business Analyst",
				Email:         "emma.w@company.com",
				Department:    "Business",
				SupervisorID:  strptr("1"),
				WorkstreamIDs: []string{"2"},
				UserRole:      domain.RoleUser,
				IsActive:      true,
				CreatedAt:     now,
			},
		}
		if err := s.Staff.SetAll(ctx, sample); err != nil {
			return err
		}
	}

	workstreams, err := s.Workstreams.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(workstreams) == 0 {
		sample := []domain.Workstream{
			{
				ID:          "1",
				Name:        "Digital Transformation",
				Description: "Core platform modernization initiative",
				Lead:        "1",
				Color:       "#3b82f6",
				CreatedAt:   now,
			},
			{
				ID:          "2",
				Name:        "Data Analytics",
				Description: "Business intelligence and reporting",
				Lead:        "3",
				Color:       "#10b981",
				CreatedAt:   now,
			},
			{
				ID:          "3",
				Name:        "Infrastructure",
				Description: "Cloud migration and DevOps",
				Lead:        "2",
				Color:       "#f59e0b",
				CreatedAt:   now,
			},
		}
		if err := s.Workstreams.SetAll(ctx, sample); err != nil {
			return err
		}
	}

	deliverables, err := s.Deliverables.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(deliverables) == 0 {
		sample := []domain.Deliverable{
			{
				ID:           "1",
				Title:        "API Gateway Implementation",
				Description:  "Deploy and configure new API gateway for microservices",
				WorkstreamID: "1",
				OwnerID:      "2",
				Status:       domain.StatusInProgress,
				Priority:     domain.PriorityHigh,
				Risk:         domain.PriorityMedium,
				StartDate:    "2026-01-06",
				DueDate:      "2026-02-15",
				Progress:     45,
				Dependencies: []string{},
				Tags:         []string{"backend", "infrastructure"},
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				ID:           "2",
				Title:        "User Dashboard Redesign",
				Description:  "Modernize user dashboard with new analytics widgets",
				WorkstreamID: "2",
				OwnerID:      "3",
				Status:       domain.StatusNotStarted,
				Priority:     domain.PriorityMedium,
				Risk:         domain.PriorityLow,
				StartDate:    "2026-02-01",
				DueDate:      "2026-03-15",
				Progress:     0,
				Dependencies: []string{"1"},
				Tags:         []string{"frontend", "ux"},
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				ID:           "3",
				Title:        "Database Migration",
				Description:  "Migrate legacy database to cloud-native solution",
				WorkstreamID: "3",
				OwnerID:      "2",
				Status:       domain.StatusAtRisk,
				Priority:     domain.PriorityCritical,
				Risk:         domain.PriorityHigh,
				StartDate:    "2026-01-01",
				DueDate:      "2026-01-31",
				Progress:     65,
				Dependencies: []string{},
				Tags:         []string{"database", "migration"},
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				ID:            "4",
				Title:         "Security Audit",
				Description:   "Comprehensive security review of all systems",
				WorkstreamID:  "3",
				OwnerID:       "1",
				Status:        domain.StatusCompleted,
				Priority:      domain.PriorityHigh,
				Risk:          domain.PriorityLow,
				StartDate:     "2025-12-01",
				DueDate:       "2025-12-31",
				CompletedDate: "2025-12-28",
				Progress:      100,
				Dependencies:  []string{},
				Tags:          []string{"security", "compliance"},
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		}
		if err := s.Deliverables.SetAll(ctx, sample); err != nil {
			return err
		}
	}

	return nil
}
