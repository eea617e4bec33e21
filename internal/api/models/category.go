package models

import "time"

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;size:500"`
}

func (Category) TableName() string {
	return "category"
}

type SubCategory struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"not null;size:500"`
	CategoryID uint      `gorm:"not null;index;column:category_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (SubCategory) TableName() string {
	return "sub_category"
}
