package realtime

import (
	"errors"
	"testing"
	"ustadgee/internal/api/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationStore struct {
	inserted []models.Notification
	err      error
}

func (f *fakeNotificationStore) Insert(n *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	n.ID = uint(len(f.inserted) + 1)
	f.inserted = append(f.inserted, *n)
	return nil
}

func TestNotifierDeliverStoresAndPushes(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	store := &fakeNotificationStore{}
	notifier := NewNotifier(registry, store, zerolog.Nop())

	phone := NewClient(nil, zerolog.Nop())
	tablet := NewClient(nil, zerolog.Nop())
	registry.Register(9, phone)
	registry.Register(9, tablet)

	err := notifier.Deliver(9, models.Notification{
		Title:      "New Task Request",
		Type:       models.NotificationTypeTaskRequest,
		NotifierID: 7,
		PostID:     3,
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, uint(9), store.inserted[0].UserID)
	assert.Equal(t, 0, store.inserted[0].IsRead)
	assert.False(t, store.inserted[0].TimeStamp.IsZero())

	for _, c := range []*Client{phone, tablet} {
		frame := receiveFrame(t, c)
		assert.Equal(t, FrameNotification, frame.Type)
		assert.Equal(t, "New Task Request", frame.Title)
		assert.Equal(t, models.NotificationTypeTaskRequest, frame.NotificationType)
		assert.Equal(t, uint(3), frame.LinkID)
	}
}

func TestNotifierDeliverOfflineRecipientStillStores(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	store := &fakeNotificationStore{}
	notifier := NewNotifier(registry, store, zerolog.Nop())

	err := notifier.Deliver(9, models.Notification{Title: "hello", Type: models.NotificationTypeReview})
	require.NoError(t, err)
	assert.Len(t, store.inserted, 1)
}

func TestNotifierDeliverStoreFailureStillPushes(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	store := &fakeNotificationStore{err: errors.New("db down")}
	notifier := NewNotifier(registry, store, zerolog.Nop())

	c := NewClient(nil, zerolog.Nop())
	registry.Register(9, c)

	err := notifier.Deliver(9, models.Notification{Title: "hello", Type: models.NotificationTypeTaskStatus})
	require.Error(t, err)

	frame := receiveFrame(t, c)
	assert.Equal(t, FrameNotification, frame.Type)
}

func TestNotifierDoesNotLeakToOtherUsers(t *testing.T) {
	registry := NewRegistry(zerolog.Nop())
	store := &fakeNotificationStore{}
	notifier := NewNotifier(registry, store, zerolog.Nop())

	bystander := NewClient(nil, zerolog.Nop())
	registry.Register(12, bystander)

	require.NoError(t, notifier.Deliver(9, models.Notification{Title: "hello", Type: models.NotificationTypeReview}))
	assertNoFrame(t, bystander)
}
