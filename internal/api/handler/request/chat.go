package request

type StartChatDTO struct {
	RecipientID uint   `json:"recipientId" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

type UpdateChatDTO struct {
	Message string `json:"message" validate:"required"`
	Type    string `json:"type"`
}
