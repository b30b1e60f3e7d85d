package domain

import "time"

// JobTitle enumerates the consulting career ladder.
type JobTitle string

const (
	TitlePartner         JobTitle = "Partner"
	TitleDirector        JobTitle = "Director"
	TitleSeniorManager   JobTitle = "Senior Manager"
	TitleManager         JobTitle = "Manager"
	TitleSeniorAssociate JobTitle = "Senior Associate"
	TitleAssociate       JobTitle = "Associate"
)

// AccessRole enumerates application permission levels.
type AccessRole string

const (
	RoleAdmin   AccessRole = "Admin"
	RoleManager AccessRole = "Manager"
	RoleUser    AccessRole = "User"
)

// Staff models one member of the organization. SupervisorID, when set, points
// at another Staff record and the resulting graph is expected to be a tree;
// the org-chart derivation guards against cycles rather than trusting that.
type Staff struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Title         JobTitle   `json:"title,omitempty"`
	Role          string     `json:"role"`
	Email         string     `json:"email"`
	Department    string     `json:"department"`
	SupervisorID  *string    `json:"supervisorId,omitempty"`
	WorkstreamIDs []string   `json:"workstreamIds,omitempty"`
	UserRole      AccessRole `json:"userRole,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// EntityID implements store.Record.
func (s Staff) EntityID() string { return s.ID }
