package dto

// CreateHoursLogRequest payload.
type CreateHoursLogRequest struct {
	StaffID       string  `json:"staffId"`
	DeliverableID string  `json:"deliverableId"`
	Date          string  `json:"date"`
	Hours         float64 `json:"hours"`
	Description   string  `json:"description"`
}

// UpdateHoursLogRequest payload; nil fields are left unchanged.
type UpdateHoursLogRequest struct {
	DeliverableID *string  `json:"deliverableId"`
	Date          *string  `json:"date"`
	Hours         *float64 `json:"hours"`
	Description   *string  `json:"description"`
}
