package dto

import "github.com/govkit/governance-service/internal/domain"

// CreatePTORequest payload.
type CreatePTORequest struct {
	StaffID   string         `json:"staffId"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Type      domain.PTOType `json:"type"`
	Notes     string         `json:"notes"`
}

// UpdatePTORequest payload; nil fields are left unchanged. Status changes go
// through the approve/reject endpoints, not here.
type UpdatePTORequest struct {
	StartDate *string         `json:"startDate"`
	EndDate   *string         `json:"endDate"`
	Type      *domain.PTOType `json:"type"`
	Notes     *string         `json:"notes"`
}
