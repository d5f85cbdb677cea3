package dto

// MessageResponse is returned by update and delete endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a MessageResponse
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
