package domain

import "time"

// DeliverableStatus enumerates lifecycle states for deliverables.
type DeliverableStatus string

const (
	StatusNotStarted DeliverableStatus = "Not Started"
	StatusInProgress DeliverableStatus = "In Progress"
	StatusAtRisk     DeliverableStatus = "At Risk"
	StatusBlocked    DeliverableStatus = "Blocked"
	StatusCompleted  DeliverableStatus = "Completed"
)

// BoardStatuses is the kanban column order.
var BoardStatuses = []DeliverableStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusAtRisk,
	StatusBlocked,
	StatusCompleted,
}

// Priority enumerates urgency levels shared by priority and risk ratings.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Deliverable is a trackable unit of project work. StartDate, DueDate and
// CompletedDate are date-only strings (YYYY-MM-DD). Progress and Status are
// independent fields: a Completed deliverable is not forced to 100%.
type Deliverable struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	WorkstreamID  string            `json:"workstreamId"`
	OwnerID       string            `json:"ownerId"`
	Status        DeliverableStatus `json:"status"`
	Priority      Priority          `json:"priority"`
	Risk          Priority          `json:"risk"`
	StartDate     string            `json:"startDate"`
	DueDate       string            `json:"dueDate"`
	CompletedDate string            `json:"completedDate,omitempty"`
	Progress      int               `json:"progress"`
	Dependencies  []string          `json:"dependencies"`
	Tags          []string          `json:"tags"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// EntityID implements store.Record.
func (d Deliverable) EntityID() string { return d.ID }
