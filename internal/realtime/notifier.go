package realtime

import (
	"time"
	"ustadgee/internal/api/models"

	"github.com/rs/zerolog"
)

// NotificationStore persists notification records. Satisfied by
// repo.NotificationRepository.
type NotificationStore interface {
	Insert(notification *models.Notification) error
}

// Notifier turns an application event into a delivery attempt: a durable
// notification record plus a live push to every open connection of the
// recipient. The two steps are independent; neither blocks or rolls back
// the other.
type Notifier struct {
	registry *Registry
	store    NotificationStore
	logger   zerolog.Logger
}

func NewNotifier(registry *Registry, store NotificationStore, logger zerolog.Logger) *Notifier {
	return &Notifier{
		registry: registry,
		store:    store,
		logger:   logger,
	}
}

// Deliver records the notification for recipientID and pushes it live
// where possible. A store failure is reported to the caller but does not
// suppress the live push; an offline recipient sees the record on the
// next notification list fetch.
func (n *Notifier) Deliver(recipientID uint, notification models.Notification) error {
	notification.UserID = recipientID
	notification.IsRead = 0
	notification.TimeStamp = time.Now()

	storeErr := n.store.Insert(&notification)
	if storeErr != nil {
		n.logger.Error().Err(storeErr).
			Uint("userId", recipientID).
			Msg("Failed to persist notification")
	}

	frame := NewNotificationFrame(notification.Title, notification.Type, notification.PostID)
	clients := n.registry.ConnectionsFor(recipientID)
	for _, client := range clients {
		client.Enqueue(frame)
	}

	n.logger.Debug().
		Uint("userId", recipientID).
		Int("liveConnections", len(clients)).
		Str("title", notification.Title).
		Msg("Notification delivered")

	return storeErr
}
