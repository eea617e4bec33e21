package realtime

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"
)

// PermissionStore persists a user's declared browser notification
// permission. Satisfied by repo.UserRepository.
type PermissionStore interface {
	SetNotificationPermission(userID uint, status string) error
}

// Router is the single entry point for inbound frames. It owns the auth
// handshake and the live chat relay. Malformed or unexpected input is
// logged and dropped; it never terminates the connection.
type Router struct {
	registry *Registry
	perms    PermissionStore
	logger   zerolog.Logger
}

func NewRouter(registry *Registry, perms PermissionStore, logger zerolog.Logger) *Router {
	return &Router{
		registry: registry,
		perms:    perms,
		logger:   logger,
	}
}

func (rt *Router) HandleFrame(c *Client, raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		rt.logger.Error().Err(err).Str("clientId", c.ID).Msg("Failed to unmarshal frame")
		return
	}

	switch frame.Type {
	case FrameAuth:
		rt.handleAuth(c, frame)
	case FrameChat:
		rt.handleChat(c, frame)
	case FrameNotificationPermission:
		rt.handlePermission(c, frame)
	default:
		// Unknown frame kinds must not break the router.
		rt.logger.Debug().
			Str("clientId", c.ID).
			Str("type", string(frame.Type)).
			Msg("Dropping frame of unknown type")
	}
}

// handleAuth binds the connection to the claimed user ID. The claim is
// only checked syntactically; callers that present a token are already
// vetted at the HTTP upgrade. Re-authenticating an already bound
// connection rebinds it without orphaning the old entry.
func (rt *Router) handleAuth(c *Client, frame Frame) {
	userID, err := strconv.ParseUint(frame.UserID, 10, 32)
	if err != nil || userID == 0 {
		rt.logger.Warn().
			Str("clientId", c.ID).
			Str("userId", frame.UserID).
			Msg("Auth frame with malformed user id")
		return
	}

	if c.Bound() && c.UserID() != uint(userID) {
		rt.registry.Unregister(c.UserID(), c)
	}
	rt.registry.Register(uint(userID), c)
	c.bind(uint(userID))

	c.Enqueue(NewAuthSuccessFrame())

	rt.logger.Info().
		Str("clientId", c.ID).
		Uint("userId", c.UserID()).
		Msg("Connection authenticated")
}

// handleChat relays a chat message to every open connection of the
// recipient. Nothing is queued for offline recipients; durability is
// the HTTP chat path's job, the live relay is a latency optimization.
func (rt *Router) handleChat(c *Client, frame Frame) {
	if !c.Bound() {
		return
	}

	recipientID, err := strconv.ParseUint(frame.RecipientID, 10, 32)
	if err != nil || recipientID == 0 {
		rt.logger.Warn().
			Str("clientId", c.ID).
			Str("recipientId", frame.RecipientID).
			Msg("Chat frame with malformed recipient id")
		return
	}

	out := NewChatFrame(frame.SenderID, frame.Message)
	for _, recipient := range rt.registry.ConnectionsFor(uint(recipientID)) {
		recipient.Enqueue(out)
	}
}

func (rt *Router) handlePermission(c *Client, frame Frame) {
	if !c.Bound() {
		return
	}

	if err := rt.perms.SetNotificationPermission(c.UserID(), frame.Status); err != nil {
		rt.logger.Error().Err(err).
			Uint("userId", c.UserID()).
			Msg("Failed to store notification permission")
		return
	}
	c.Enqueue(NewPermissionUpdateFrame())
}

// HandleClose releases a connection regardless of bind state.
func (rt *Router) HandleClose(c *Client) {
	if c.Bound() {
		rt.registry.Unregister(c.UserID(), c)
	}
	c.close()
}
