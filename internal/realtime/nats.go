package realtime

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"ustadgee/internal/api/models"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NATSBridge lets out-of-process producers push notifications through
// the same durable+live delivery path as in-process callers. Producers
// publish to ustadgee.user.<userID>.notify with a notificationEvent
// payload.
type NATSBridge struct {
	conn     *nats.Conn
	notifier *Notifier
	logger   zerolog.Logger
}

type notificationEvent struct {
	Title      string `json:"title"`
	Type       int    `json:"type"`
	PostID     uint   `json:"postId"`
	NotifierID uint   `json:"notifierId"`
}

func NewNATSBridge(natsURL string, notifier *Notifier, logger zerolog.Logger) (*NATSBridge, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSBridge{conn: nc, notifier: notifier, logger: logger}, nil
}

// Subscribe listens for notification events on ustadgee.user.*.notify
func (b *NATSBridge) Subscribe() error {
	subject := "ustadgee.user.*.notify"
	_, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		userID, err := parseUserIDFromSubject(msg.Subject)
		if err != nil {
			b.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Bad NATS subject")
			return
		}

		var event notificationEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			b.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Bad NATS payload")
			return
		}

		if err := b.notifier.Deliver(userID, models.Notification{
			Title:      event.Title,
			Type:       event.Type,
			PostID:     event.PostID,
			NotifierID: event.NotifierID,
		}); err != nil {
			b.logger.Error().Err(err).Uint("userId", userID).Msg("NATS notification delivery failed")
		}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe %q: %w", subject, err)
	}

	b.logger.Info().Str("subject", subject).Msg("NATS bridge subscribed")
	return nil
}

// Close drains the NATS connection.
func (b *NATSBridge) Close() {
	if err := b.conn.Drain(); err != nil {
		b.logger.Error().Err(err).Msg("NATS drain failed")
	}
}

// parseUserIDFromSubject extracts the user ID from "ustadgee.user.<id>.notify"
func parseUserIDFromSubject(subject string) (uint, error) {
	parts := strings.Split(subject, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("expected 4 parts, got %d", len(parts))
	}
	id, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid user id %q", parts[2])
	}
	return uint(id), nil
}
