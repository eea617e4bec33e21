package models

import "time"

// Chat is one row per user pair; only the last message is kept here.
// Full history lives client-side, the server relays live messages and
// keeps the conversation list.
type Chat struct {
	ID        uint      `gorm:"primaryKey"`
	User1     uint      `gorm:"not null;column:user1;uniqueIndex:users_idx"`
	User2     uint      `gorm:"not null;column:user2;uniqueIndex:users_idx"`
	LastMsg   string    `gorm:"not null;type:text;column:last_msg"`
	Type      string    `gorm:"not null;type:text"`
	DeletedBy *uint     `gorm:"column:deleted_by"`
	TimeStamp time.Time `gorm:"autoCreateTime;column:time_stamp"`
}

func (Chat) TableName() string {
	return "chat_list"
}

// HasParticipant reports whether userID is one of the two chat members.
func (c Chat) HasParticipant(userID uint) bool {
	return c.User1 == userID || c.User2 == userID
}
