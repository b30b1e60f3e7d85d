package domain

import "time"

// Workstream is a named grouping of deliverables and staff under one lead.
type Workstream struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Lead        string    `json:"lead"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EntityID implements store.Record.
func (w Workstream) EntityID() string { return w.ID }
