package domain

import "time"

// PTOType enumerates leave categories.
type PTOType string

const (
	PTOVacation PTOType = "Vacation"
	PTOSick     PTOType = "Sick Leave"
	PTOPersonal PTOType = "Personal"
	PTOOther    PTOType = "Other"
)

// PTOStatus enumerates request lifecycle states. A request is created Pending
// and transitions to Approved or Rejected exactly once.
type PTOStatus string

const (
	PTOPending  PTOStatus = "Pending"
	PTOApproved PTOStatus = "Approved"
	PTORejected PTOStatus = "Rejected"
)

// PTORequest is a staff leave request awaiting a manager decision.
type PTORequest struct {
	ID         string     `json:"id"`
	StaffID    string     `json:"staffId"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Type       PTOType    `json:"type"`
	Status     PTOStatus  `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	ApprovedBy *string    `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// EntityID implements store.Record.
func (r PTORequest) EntityID() string { return r.ID }
