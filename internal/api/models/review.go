package models

import "time"

type Review struct {
	ID          uint      `gorm:"primaryKey"`
	WorkerID    uint      `gorm:"not null;index;column:worker_id;uniqueIndex:worker_user_idx"`
	UserID      uint      `gorm:"not null;index;column:user_id;uniqueIndex:worker_user_idx"`
	Rating      int       `gorm:"not null"`
	Description string    `gorm:"not null;size:255"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
