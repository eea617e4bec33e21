package models

import "time"

type Service struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"not null;size:500"`
	Description string         `gorm:"not null;type:text"`
	Charges     int            `gorm:"not null;default:0"`
	CategoryID  uint           `gorm:"not null;index;column:category_id"`
	UserID      uint           `gorm:"not null;index;column:user_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;column:created_at"`
	Images      []ServiceImage `gorm:"foreignKey:ServiceID"`
}

func (Service) TableName() string {
	return "services"
}

type ServiceImage struct {
	ID        uint      `gorm:"primaryKey"`
	ServiceID uint      `gorm:"not null;index;column:service_id"`
	ImageName string    `gorm:"not null;size:255;column:image_name"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (ServiceImage) TableName() string {
	return "service_images"
}
