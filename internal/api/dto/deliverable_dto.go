package dto

import "github.com/govkit/governance-service/internal/domain"

// CreateDeliverableRequest payload.
type CreateDeliverableRequest struct {
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	WorkstreamID string                   `json:"workstreamId"`
	OwnerID      string                   `json:"ownerId"`
	Status       domain.DeliverableStatus `json:"status"`
	Priority     domain.Priority          `json:"priority"`
	Risk         domain.Priority          `json:"risk"`
	StartDate    string                   `json:"startDate"`
	DueDate      string                   `json:"dueDate"`
	Progress     int                      `json:"progress"`
	Dependencies []string                 `json:"dependencies"`
	Tags         []string                 `json:"tags"`
}

// UpdateDeliverableRequest payload; nil fields are left unchanged.
type UpdateDeliverableRequest struct {
	Title         *string                   `json:"title"`
	Description   *string                   `json:"description"`
	WorkstreamID  *string                   `json:"workstreamId"`
	OwnerID       *string                   `json:"ownerId"`
	Status        *domain.DeliverableStatus `json:"status"`
	Priority      *domain.Priority          `json:"priority"`
	Risk          *domain.Priority          `json:"risk"`
	StartDate     *string                   `json:"startDate"`
	DueDate       *string                   `json:"dueDate"`
	CompletedDate *string                   `json:"completedDate"`
	Progress      *int                      `json:"progress"`
	Dependencies  *[]string                 `json:"dependencies"`
	Tags          *[]string                 `json:"tags"`
}
