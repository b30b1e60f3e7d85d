package dto

// CreateWorkstreamRequest payload.
type CreateWorkstreamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Lead        string `json:"lead"`
	Color       string `json:"color"`
}

// UpdateWorkstreamRequest payload; nil fields are left unchanged.
type UpdateWorkstreamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Lead        *string `json:"lead"`
	Color       *string `json:"color"`
}
