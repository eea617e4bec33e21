package mapper

import (
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/models"
)

type NotificationMapper struct{}

func (NotificationMapper) EntityToNotificationResponse(n models.Notification) response.NotificationResponseDTO {
	return response.NotificationResponseDTO{
		ID:         n.ID,
		Title:      n.Title,
		Type:       n.Type,
		NotifierID: n.NotifierID,
		PostID:     n.PostID,
		IsRead:     n.IsRead,
		TimeStamp:  n.TimeStamp,
	}
}

func (m NotificationMapper) EntitiesToNotificationResponses(notifications []models.Notification) []response.NotificationResponseDTO {
	result := make([]response.NotificationResponseDTO, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, m.EntityToNotificationResponse(n))
	}
	return result
}
