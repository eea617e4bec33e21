package models

import (
	"time"
)

// User type IDs seeded at migration time.
const (
	UserTypeRequester = 1
	UserTypeUstadgee  = 2
	UserTypeKarigar   = 3
)

type UserType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null;size:500"`
}

func (UserType) TableName() string {
	return "user_type"
}

type User struct {
	ID                     uint      `gorm:"primaryKey"`
	PhoneNumber            string    `gorm:"uniqueIndex;not null;size:500;column:phone_number"`
	FullName               string    `gorm:"not null;size:500;column:full_name"`
	ProfileImage           string    `gorm:"size:500;column:profile_image"`
	Password               string    `gorm:"not null;size:500;column:password"`
	Active                 int       `gorm:"default:1;column:active"`
	Token                  string    `gorm:"type:text;column:token"`
	UserTypeID             int       `gorm:"not null;index;column:user_type"`
	ReferralCode           string    `gorm:"size:20;column:referral_code"`
	ReferredBy             *uint     `gorm:"index;column:referred_by"`
	Latitude               string    `gorm:"size:500;column:latitude"`
	Longitude              string    `gorm:"size:500;column:longitude"`
	CnicNum                string    `gorm:"size:500;column:cnic_num"`
	NotificationPermission string    `gorm:"size:20;default:default;column:notification_permission"`
	DeviceToken            string    `gorm:"size:500;column:device_token"`
	CreatedAt              time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsServiceProvider reports whether the user can publish services.
func (u User) IsServiceProvider() bool {
	return u.UserTypeID == UserTypeUstadgee || u.UserTypeID == UserTypeKarigar
}
