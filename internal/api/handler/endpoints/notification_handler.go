package endpoints

import (
	"errors"
	"net/http"
	"ustadgee"
	"ustadgee/internal/api/handler/mapper"
	"ustadgee/internal/api/handler/middleware"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/service"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type notificationHandler struct {
	notificationService *service.NotificationService
	notificationMapper  mapper.NotificationMapper
	logger              zerolog.Logger
	config              ustadgee.AppConfig
}

func newNotificationHandler() *notificationHandler {
	return &notificationHandler{
		notificationService: service.NewNotificationService(),
		logger:              ustadgee.Logger,
		config:              ustadgee.GetConfig(),
	}
}

func NotificationHandler(router *graceful.Graceful) {
	h := newNotificationHandler()

	notifications := router.Group("/api/v1/notifications")
	notifications.Use(middleware.AuthMiddleware(h.config))
	{
		notifications.GET("", h.list)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.PUT("/:id/read", h.markRead)
		notifications.PUT("/read-all", h.markAllRead)
	}
}

func (slf *notificationHandler) list(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	notifications, total, err := slf.notificationService.List(userID, page, limit)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching notifications")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, response.NewPage(
		slf.notificationMapper.EntitiesToNotificationResponses(notifications),
		total, page, limit,
	))
}

func (slf *notificationHandler) unreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := slf.notificationService.UnreadCount(userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching unread count")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch unread count"})
		return
	}

	c.JSON(http.StatusOK, response.UnreadCountDTO{Count: count})
}

func (slf *notificationHandler) markRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notificationID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := slf.notificationService.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
			return
		}
		slf.logger.Error().Err(err).Msg("Error marking notification read")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (slf *notificationHandler) markAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := slf.notificationService.MarkAllRead(userID); err != nil {
		slf.logger.Error().Err(err).Msg("Error marking notifications read")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to mark notifications read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
