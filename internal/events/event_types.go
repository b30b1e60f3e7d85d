package events

import (
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated EventType = "entity_created"
	EventEntityUpdated EventType = "entity_updated"
	EventEntityDeleted EventType = "entity_deleted"
	EventPTODecided    EventType = "pto_decided"
	EventHoursLogged   EventType = "hours_logged"
	EventSessionChange EventType = "session_change"
)

// AllTypes lists every event type, for subscribers that want the full stream.
var AllTypes = []EventType{
	EventEntityCreated,
	EventEntityUpdated,
	EventEntityDeleted,
	EventPTODecided,
	EventHoursLogged,
	EventSessionChange,
}

// Actor identifies who performed the action.
type Actor struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// Event represents a user-attributed action emitted by handlers and the
// session manager. Action and Details carry the human-readable labels the
// audit trail stores verbatim.
type Event struct {
	Type       EventType         `json:"type"`
	Actor      Actor             `json:"actor"`
	EntityType domain.EntityType `json:"entity_type"`
	EntityID   string            `json:"entity_id,omitempty"`
	Action     string            `json:"action"`
	Details    string            `json:"details"`
	Timestamp  time.Time         `json:"timestamp"`
}
