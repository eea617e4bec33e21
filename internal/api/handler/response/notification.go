package response

import "time"

type NotificationResponseDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Type       int       `json:"type"`
	NotifierID uint      `json:"notifierId"`
	PostID     uint      `json:"postId"`
	IsRead     int       `json:"isRead"`
	TimeStamp  time.Time `json:"timeStamp"`
}

type UnreadCountDTO struct {
	Count int64 `json:"count"`
}
