package response

import "time"

type ChatUserDTO struct {
	ID           uint   `json:"id"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	ProfileImage string `json:"profileImage"`
}

type ChatResponseDTO struct {
	ID        uint         `json:"id"`
	LastMsg   string       `json:"lastMsg"`
	Type      string       `json:"type"`
	TimeStamp time.Time    `json:"timeStamp"`
	OtherUser *ChatUserDTO `json:"otherUser,omitempty"`
}
