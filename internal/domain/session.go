package domain

// UserSession is the ephemeral identity the current client acts as. It is a
// snapshot of a Staff record (or an external identity assertion) taken at
// login time; editing the Staff record afterwards does not re-sync it.
type UserSession struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Title         JobTitle   `json:"title,omitempty"`
	UserRole      AccessRole `json:"userRole"`
	SupervisorID  *string    `json:"supervisorId,omitempty"`
	WorkstreamIDs []string   `json:"workstreamIds,omitempty"`
}

// SessionFromStaff snapshots the session-relevant fields of a staff record.
func SessionFromStaff(s Staff) UserSession {
	return UserSession{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Title:         s.Title,
		UserRole:      s.UserRole,
		SupervisorID:  s.SupervisorID,
		WorkstreamIDs: s.WorkstreamIDs,
	}
}

// IsAdmin reports whether the session has full administrative access.
func (u UserSession) IsAdmin() bool { return u.UserRole == RoleAdmin }

// IsManager reports whether the session can act on manager-level operations.
func (u UserSession) IsManager() bool { return u.UserRole == RoleAdmin || u.UserRole == RoleManager }
