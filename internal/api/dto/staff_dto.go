// Package dto defines the request payloads of the HTTP surface. Field names
// follow the persisted entity casing so the UI round-trips records without
// renaming.
package dto

import "github.com/govkit/governance-service/internal/domain"

// CreateStaffRequest payload.
type CreateStaffRequest struct {
	Name          string            `json:"name"`
	Title         domain.JobTitle   `json:"title"`
	Role          string            `json:"role"`
	Email         string            `json:"email"`
	Department    string            `json:"department"`
	SupervisorID  *string           `json:"supervisorId"`
	WorkstreamIDs []string          `json:"workstreamIds"`
	UserRole      domain.AccessRole `json:"userRole"`
	IsActive      *bool             `json:"isActive"`
}

// UpdateStaffRequest payload; nil fields are left unchanged.
type UpdateStaffRequest struct {
	Name          *string            `json:"name"`
	Title         *domain.JobTitle   `json:"title"`
	Role          *string            `json:"role"`
	Email         *string            `json:"email"`
	Department    *string            `json:"department"`
	SupervisorID  *string            `json:"supervisorId"`
	WorkstreamIDs *[]string          `json:"workstreamIds"`
	UserRole      *domain.AccessRole `json:"userRole"`
	IsActive      *bool              `json:"isActive"`
}
