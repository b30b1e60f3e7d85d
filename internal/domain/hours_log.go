package domain

import "time"

// HoursLog records time spent by a staff member on a deliverable. Hours are
// fractional and never negative.
type HoursLog struct {
	ID            string    `json:"id"`
	StaffID       string    `json:"staffId"`
	DeliverableID string    `json:"deliverableId"`
	Date          string    `json:"date"`
	Hours         float64   `json:"hours"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EntityID implements store.Record.
func (l HoursLog) EntityID() string { return l.ID }
