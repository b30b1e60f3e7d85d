package domain

import "time"

// AuditEntry is an immutable record of a user-attributed action. UserName is
// denormalized at write time; later staff renames do not propagate back.
type AuditEntry struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId,omitempty"`
	Details    string     `json:"details"`
	Timestamp  time.Time  `json:"timestamp"`
}

// ActivityStats summarizes audit volume over rolling windows, computed at
// call time against the caller's clock.
type ActivityStats struct {
	TotalActions          int `json:"totalActions"`
	ActionsLast7Days      int `json:"actionsLast7Days"`
	ActionsLast30Days     int `json:"actionsLast30Days"`
	UniqueUsersLast7Days  int `json:"uniqueUsersLast7Days"`
	UniqueUsersLast30Days int `json:"uniqueUsersLast30Days"`
}
