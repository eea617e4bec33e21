package service

import (
	"errors"
	"fmt"
	"time"
	"ustadgee"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"
	"ustadgee/pkg"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

const unreadCountTTL = 60 * time.Second

// NotificationService is the pull-based catch-up surface: listing,
// read-marking and the cached unread counter. Writes go through the
// realtime Notifier, not here.
type NotificationService struct {
	notificationRepo *repo.NotificationRepository
	logger           zerolog.Logger
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		notificationRepo: repo.NewNotificationRepository(),
		logger:           ustadgee.Logger,
	}
}

func (slf *NotificationService) List(userID uint, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	notifications, err := slf.notificationRepo.FindForUser(userID, limit, (page-1)*limit)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error fetching notifications")
		return nil, 0, err
	}
	total, err := slf.notificationRepo.CountForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (slf *NotificationService) MarkRead(notificationID, userID uint) error {
	_, err := slf.notificationRepo.FindByIDForUser(notificationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if err = slf.notificationRepo.MarkRead(notificationID); err != nil {
		return err
	}
	slf.invalidateUnreadCount(userID)
	return nil
}

func (slf *NotificationService) MarkAllRead(userID uint) error {
	if err := slf.notificationRepo.MarkAllRead(userID); err != nil {
		return err
	}
	slf.invalidateUnreadCount(userID)
	return nil
}

// UnreadCount serves the badge counter, cached briefly in Redis since
// clients poll it aggressively.
func (slf *NotificationService) UnreadCount(userID uint) (int64, error) {
	key := unreadCountKey(userID)

	var cached int64
	if err := pkg.RedisGet(key, &cached); err == nil {
		return cached, nil
	} else if !pkg.IsRedisNil(err) {
		slf.logger.Warn().Err(err).Uint("userId", userID).Msg("Unread count cache read failed")
	}

	count, err := slf.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, err
	}
	if err := pkg.RedisSet(key, count, unreadCountTTL); err != nil {
		slf.logger.Warn().Err(err).Uint("userId", userID).Msg("Unread count cache write failed")
	}
	return count, nil
}

func (slf *NotificationService) invalidateUnreadCount(userID uint) {
	if err := pkg.RedisDelete(unreadCountKey(userID)); err != nil {
		slf.logger.Warn().Err(err).Uint("userId", userID).Msg("Unread count cache invalidation failed")
	}
}

func unreadCountKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}
