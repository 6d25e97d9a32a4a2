package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"deleted successfully"`
}
