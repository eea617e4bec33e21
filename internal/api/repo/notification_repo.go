package repo

import (
	"ustadgee"
	"ustadgee/internal/api/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	Db *gorm.DB
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{Db: ustadgee.DB}
}

func (slf *NotificationRepository) Insert(notification *models.Notification) error {
	return slf.Db.Create(notification).Error
}

func (slf *NotificationRepository) FindForUser(userID uint, limit, offset int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := slf.Db.Where("user_id = ?", userID).
		Order("time_stamp DESC").Limit(limit).Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

func (slf *NotificationRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := slf.Db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (slf *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := slf.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = 0", userID).Count(&count).Error
	return count, err
}

func (slf *NotificationRepository) FindByIDForUser(id, userID uint) (models.Notification, error) {
	var notification models.Notification
	err := slf.Db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	return notification, err
}

func (slf *NotificationRepository) MarkRead(id uint) error {
	return slf.Db.Model(&models.Notification{}).Where("id = ?", id).
		Update("is_read", 1).Error
}

func (slf *NotificationRepository) MarkAllRead(userID uint) error {
	return slf.Db.Model(&models.Notification{}).Where("user_id = ?", userID).
		Update("is_read", 1).Error
}
