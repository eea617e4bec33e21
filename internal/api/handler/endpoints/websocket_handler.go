package endpoints

import (
	"net/http"
	"ustadgee"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/realtime"
	"ustadgee/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Mobile clients connect from app webviews with no stable origin.
		return true
	},
}

type websocketHandler struct {
	router *realtime.Router
	logger zerolog.Logger
	config ustadgee.AppConfig
}

func newWebSocketHandler(router *realtime.Router) *websocketHandler {
	return &websocketHandler{
		router: router,
		logger: ustadgee.Logger,
		config: ustadgee.GetConfig(),
	}
}

func WebSocketHandler(router *graceful.Graceful, wsRouter *realtime.Router) {
	h := newWebSocketHandler(wsRouter)

	router.GET("/ws", h.handleWebSocket)
}

// handleWebSocket upgrades the connection and starts the client pumps.
// Identity is established by the auth frame the client sends first; a
// token passed as ?token= is checked here as an extra gate but does not
// bind the connection by itself.
func (slf *websocketHandler) handleWebSocket(c *gin.Context) {
	if token := c.Query("token"); token != "" {
		if _, err := pkg.ValidateToken(token, slf.config.JWTConfig.Secret); err != nil {
			c.JSON(http.StatusUnauthorized, response.APIError{Message: "Invalid or expired token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to upgrade to WebSocket")
		return
	}

	client := realtime.NewClient(conn, slf.logger)

	slf.logger.Info().
		Str("clientId", client.ID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")

	go client.WritePump()
	go client.ReadPump(slf.router)
}
