package models

import "time"

// Notification event types.
const (
	NotificationTypeTaskRequest = 1
	NotificationTypeTaskStatus  = 2
	NotificationTypeReview      = 3
)

// Notification is the durable record of a delivery attempt. A recipient
// who was offline at delivery time picks these up via the list endpoint.
type Notification struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"not null;size:500"`
	Type       int       `gorm:"not null"`
	UserID     uint      `gorm:"not null;index;column:user_id"`
	NotifierID uint      `gorm:"not null;column:notifier_id"`
	PostID     uint      `gorm:"not null;column:post_id"`
	IsRead     int       `gorm:"default:0;column:is_read"`
	TimeStamp  time.Time `gorm:"autoCreateTime;column:time_stamp"`
}

func (Notification) TableName() string {
	return "notification"
}
