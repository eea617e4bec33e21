package endpoints

import (
	"errors"
	"net/http"
	"ustadgee"
	"ustadgee/internal/api/handler/middleware"
	"ustadgee/internal/api/handler/request"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/service"
	"ustadgee/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type chatHandler struct {
	chatService *service.ChatService
	logger      zerolog.Logger
	config      ustadgee.AppConfig
}

func newChatHandler() *chatHandler {
	return &chatHandler{
		chatService: service.NewChatService(),
		logger:      ustadgee.Logger,
		config:      ustadgee.GetConfig(),
	}
}

func ChatHandler(router *graceful.Graceful) {
	h := newChatHandler()

	chats := router.Group("/api/v1/chats")
	chats.Use(middleware.AuthMiddleware(h.config))
	{
		chats.GET("", h.list)
		chats.POST("", h.start)
		chats.PUT("/:id", h.updateMessage)
		chats.DELETE("/:id", h.delete)
	}
}

func (slf *chatHandler) list(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	chats, err := slf.chatService.GetChatList(userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching chat list")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch chats"})
		return
	}

	c.JSON(http.StatusOK, chats)
}

func (slf *chatHandler) start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var startDTO request.StartChatDTO
	if err := pkg.ParseAndValidate(c, &startDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	chatID, err := slf.chatService.StartChat(userID, startDTO.RecipientID, startDTO.Message)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error starting chat")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to start chat"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chatId": chatID})
}

func (slf *chatHandler) updateMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	chatID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var updateDTO request.UpdateChatDTO
	if err := pkg.ParseAndValidate(c, &updateDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.chatService.UpdateChatMessage(chatID, userID, updateDTO.Message, updateDTO.Type); err != nil {
		slf.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat updated"})
}

func (slf *chatHandler) delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	chatID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := slf.chatService.DeleteChat(chatID, userID); err != nil {
		slf.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat deleted"})
}

func (slf *chatHandler) writeChatError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrChatNotFound) {
		c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
		return
	}
	slf.logger.Error().Err(err).Msg("Chat operation failed")
	c.JSON(http.StatusInternalServerError, response.APIError{Message: "Internal error"})
}
