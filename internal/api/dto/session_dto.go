package dto

// LoginRequest names the staff record to act as.
type LoginRequest struct {
	StaffID string `json:"staffId"`
}

// IdentityLoginRequest carries the externally issued credential.
type IdentityLoginRequest struct {
	Credential string `json:"credential"`
}

// UsernameHintRequest stores the manual username hint used by auto-detect.
type UsernameHintRequest struct {
	Hint string `json:"hint"`
}
