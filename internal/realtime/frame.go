package realtime

import "time"

// FrameType tags a WebSocket frame.
type FrameType string

const (
	// Client -> server
	FrameAuth                   FrameType = "auth"
	FrameChat                   FrameType = "chat"
	FrameNotificationPermission FrameType = "notification_permission"

	// Server -> client
	FrameAuthSuccess                  FrameType = "auth_success"
	FrameNotification                 FrameType = "notification"
	FrameNotificationPermissionUpdate FrameType = "notification_permission_update"
)

// Frame is the single envelope exchanged over a connection. Inbound frames
// fill only the fields their type uses; outbound frames are built by the
// constructors below and never mutated after being queued for send.
type Frame struct {
	Type             FrameType `json:"type"`
	UserID           string    `json:"userId,omitempty"`
	SenderID         string    `json:"senderId,omitempty"`
	RecipientID      string    `json:"recipientId,omitempty"`
	Message          string    `json:"message,omitempty"`
	Status           string    `json:"status,omitempty"`
	Title            string    `json:"title,omitempty"`
	NotificationType int       `json:"notificationType,omitempty"`
	LinkID           uint      `json:"linkId,omitempty"`
	Timestamp        time.Time `json:"timestamp,omitzero"`
}

func NewAuthSuccessFrame() Frame {
	return Frame{
		Type:    FrameAuthSuccess,
		Message: "Authentication successful",
	}
}

func NewChatFrame(senderID, message string) Frame {
	return Frame{
		Type:      FrameChat,
		SenderID:  senderID,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func NewPermissionUpdateFrame() Frame {
	return Frame{
		Type:   FrameNotificationPermissionUpdate,
		Status: "success",
	}
}

func NewNotificationFrame(title string, notificationType int, linkID uint) Frame {
	return Frame{
		Type:             FrameNotification,
		Title:            title,
		Message:          title,
		NotificationType: notificationType,
		LinkID:           linkID,
		Timestamp:        time.Now(),
	}
}
