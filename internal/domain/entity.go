package domain

// EntityType is the closed set of record kinds the store and audit log share.
// Keeping it a single enumeration prevents the audit trail from drifting out
// of sync with the collection names.
type EntityType string

const (
	EntityStaff       EntityType = "Staff"
	EntityWorkstream  EntityType = "Workstream"
	EntityDeliverable EntityType = "Deliverable"
	EntityPTORequest  EntityType = "PTORequest"
	EntityHoursLog    EntityType = "HoursLog"
	EntityApp         EntityType = "App"
)

// Valid reports whether t is one of the known entity tags.
func (t EntityType) Valid() bool {
	switch t {
	case EntityStaff, EntityWorkstream, EntityDeliverable, EntityPTORequest, EntityHoursLog, EntityApp:
		return true
	}
	return false
}
