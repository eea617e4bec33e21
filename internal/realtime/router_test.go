package realtime

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissionStore struct {
	calls  []string
	userID uint
	err    error
}

func (f *fakePermissionStore) SetNotificationPermission(userID uint, status string) error {
	f.userID = userID
	f.calls = append(f.calls, status)
	return f.err
}

func newTestRouter() (*Router, *Registry, *fakePermissionStore) {
	registry := NewRegistry(zerolog.Nop())
	perms := &fakePermissionStore{}
	return NewRouter(registry, perms, zerolog.Nop()), registry, perms
}

// receiveFrame pops a queued frame without blocking the test.
func receiveFrame(t *testing.T, c *Client) Frame {
	t.Helper()
	select {
	case frame := <-c.Send:
		return frame
	default:
		t.Fatal("expected a queued frame")
		return Frame{}
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case frame := <-c.Send:
		t.Fatalf("unexpected queued frame of type %s", frame.Type)
	default:
	}
}

func TestRouterAuthBindsAndAcks(t *testing.T) {
	router, registry, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"7"}`))

	require.True(t, c.Bound())
	assert.Equal(t, uint(7), c.UserID())
	assert.Len(t, registry.ConnectionsFor(7), 1)

	frame := receiveFrame(t, c)
	assert.Equal(t, FrameAuthSuccess, frame.Type)
}

func TestRouterAuthMalformedUserID(t *testing.T) {
	router, registry, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"abc"}`))
	router.HandleFrame(c, []byte(`{"type":"auth","userId":"0"}`))

	assert.False(t, c.Bound())
	assert.Equal(t, 0, registry.UserCount())
	assertNoFrame(t, c)
}

func TestRouterRebindReleasesOldEntry(t *testing.T) {
	router, registry, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"7"}`))
	router.HandleFrame(c, []byte(`{"type":"auth","userId":"9"}`))

	assert.Equal(t, uint(9), c.UserID())
	assert.Empty(t, registry.ConnectionsFor(7))
	assert.Len(t, registry.ConnectionsFor(9), 1)
}

func TestRouterMalformedJSONIsDropped(t *testing.T) {
	router, _, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{not json`))

	assert.False(t, c.Bound())
	assertNoFrame(t, c)
}

func TestRouterUnknownFrameTypeIsDropped(t *testing.T) {
	router, _, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"7"}`))
	receiveFrame(t, c)

	router.HandleFrame(c, []byte(`{"type":"teleport","userId":"7"}`))
	assertNoFrame(t, c)
}

func TestRouterChatRelaysToAllRecipientConnections(t *testing.T) {
	router, _, _ := newTestRouter()

	sender := NewClient(nil, zerolog.Nop())
	phone := NewClient(nil, zerolog.Nop())
	tablet := NewClient(nil, zerolog.Nop())

	router.HandleFrame(sender, []byte(`{"type":"auth","userId":"7"}`))
	router.HandleFrame(phone, []byte(`{"type":"auth","userId":"9"}`))
	router.HandleFrame(tablet, []byte(`{"type":"auth","userId":"9"}`))
	receiveFrame(t, sender)
	receiveFrame(t, phone)
	receiveFrame(t, tablet)

	router.HandleFrame(sender, []byte(`{"type":"chat","senderId":"7","recipientId":"9","message":"salam"}`))

	for _, recipient := range []*Client{phone, tablet} {
		frame := receiveFrame(t, recipient)
		assert.Equal(t, FrameChat, frame.Type)
		assert.Equal(t, "7", frame.SenderID)
		assert.Equal(t, "salam", frame.Message)
	}
	assertNoFrame(t, sender)
}

func TestRouterChatToOfflineRecipientIsDropped(t *testing.T) {
	router, _, _ := newTestRouter()
	sender := NewClient(nil, zerolog.Nop())

	router.HandleFrame(sender, []byte(`{"type":"auth","userId":"7"}`))
	receiveFrame(t, sender)

	router.HandleFrame(sender, []byte(`{"type":"chat","senderId":"7","recipientId":"9","message":"salam"}`))
	assertNoFrame(t, sender)
}

func TestRouterChatFromUnboundConnectionIsDropped(t *testing.T) {
	router, registry, _ := newTestRouter()

	recipient := NewClient(nil, zerolog.Nop())
	router.HandleFrame(recipient, []byte(`{"type":"auth","userId":"9"}`))
	receiveFrame(t, recipient)
	_ = registry

	stranger := NewClient(nil, zerolog.Nop())
	router.HandleFrame(stranger, []byte(`{"type":"chat","senderId":"7","recipientId":"9","message":"salam"}`))

	assertNoFrame(t, recipient)
}

func TestRouterPermissionPersistsAndAcks(t *testing.T) {
	router, _, perms := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"7"}`))
	receiveFrame(t, c)

	router.HandleFrame(c, []byte(`{"type":"notification_permission","status":"granted"}`))

	assert.Equal(t, []string{"granted"}, perms.calls)
	assert.Equal(t, uint(7), perms.userID)

	frame := receiveFrame(t, c)
	assert.Equal(t, FrameNotificationPermissionUpdate, frame.Type)
	assert.Equal(t, "success", frame.Status)
}

func TestRouterPermissionStoreFailureSkipsAck(t *testing.T) {
	router, _, perms := newTestRouter()
	perms.err = errors.New("db down")
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"7"}`))
	receiveFrame(t, c)

	router.HandleFrame(c, []byte(`{"type":"notification_permission","status":"granted"}`))
	assertNoFrame(t, c)
}

func TestRouterPermissionFromUnboundConnectionIsDropped(t *testing.T) {
	router, _, perms := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"notification_permission","status":"granted"}`))

	assert.Empty(t, perms.calls)
	assertNoFrame(t, c)
}

func TestRouterHandleCloseUnregisters(t *testing.T) {
	router, registry, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleFrame(c, []byte(`{"type":"auth","userId":"7"}`))
	require.Len(t, registry.ConnectionsFor(7), 1)

	router.HandleClose(c)

	assert.Empty(t, registry.ConnectionsFor(7))
	assert.False(t, c.Enqueue(NewAuthSuccessFrame()))
}

func TestRouterHandleCloseUnboundConnection(t *testing.T) {
	router, registry, _ := newTestRouter()
	c := NewClient(nil, zerolog.Nop())

	router.HandleClose(c)

	assert.Equal(t, 0, registry.UserCount())
}
